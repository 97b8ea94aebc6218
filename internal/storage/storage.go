package storage

import (
	"uitv/internal/config"
	"uitv/internal/domain"
)

// Storage persists and loads validation reports (e.g. for the findings viewer).
type Storage interface {
	Save(report *domain.Report) error
	Load() (*domain.ReportOutput, error)
	// SaveOutput writes the full output (e.g. after toggling resolved findings).
	SaveOutput(output *domain.ReportOutput) error
}

// JSONStorage stores reports in the JSON file named by the config's output flag.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
