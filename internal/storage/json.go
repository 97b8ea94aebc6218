package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"uitv/internal/domain"
)

// ErrNoOutputPath is returned when no report path was configured
var ErrNoOutputPath = errors.New("no report path configured")

// BuildOutput converts a report into its serialized form.
func BuildOutput(report *domain.Report) *domain.ReportOutput {
	valid := 0
	for _, f := range report.Files {
		if f.Valid() {
			valid++
		}
	}

	return &domain.ReportOutput{
		Meta: domain.ReportMeta{
			Directory:       report.Directory,
			TotalFiles:      len(report.Files),
			ValidFiles:      valid,
			InvalidFiles:    len(report.Files) - valid,
			Errors:          len(report.Errors()),
			Warnings:        len(report.Warnings()),
			Success:         report.Success(),
			Duration:        report.Duration.String(),
			DurationSeconds: report.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Files:   report.Files,
		Details: report.Findings,
	}
}

// Save writes the report to the configured JSON output file.
func (s *JSONStorage) Save(report *domain.Report) error {
	return s.SaveOutput(BuildOutput(report))
}

// Load reads a report from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.ReportOutput, error) {
	path := s.cfg.GetOutputPath()
	if path == "" {
		return nil, ErrNoOutputPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var output domain.ReportOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.ReportOutput) error {
	path := s.cfg.GetOutputPath()
	if path == "" {
		return ErrNoOutputPath
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
