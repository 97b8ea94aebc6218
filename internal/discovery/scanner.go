package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"uitv/internal/domain"
)

var (
	// ErrDirNotFound is returned when the test directory does not exist
	ErrDirNotFound = errors.New("test directory not found")
	// ErrNotDirectory is returned when the test path is a regular file
	ErrNotDirectory = errors.New("test path is not a directory")
)

// Scanner lists UI test files directly inside a directory
type Scanner struct {
	extension string
	excluded  map[string]bool
	logger    *zap.Logger
}

// NewScanner creates a new Scanner for files with the given extension,
// skipping the excluded file names
func NewScanner(extension string, excluded []string, logger *zap.Logger) *Scanner {
	excludedMap := make(map[string]bool)
	for _, name := range excluded {
		excludedMap[name] = true
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{extension: extension, excluded: excludedMap, logger: logger}
}

// Scan returns the matching files in root sorted by name. Subdirectories are not descended into.
func (s *Scanner) Scan(root string) ([]domain.TestFile, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, root)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", root, err)
	}

	var files []domain.TestFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, s.extension) {
			continue
		}
		if s.excluded[name] {
			s.logger.Debug("skipping excluded file", zap.String("file", name))
			continue
		}
		files = append(files, domain.TestFile{
			Path: filepath.Join(root, name),
			Name: name,
		})
	}

	// ReadDir already sorts, but keep the guarantee explicit
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	s.logger.Debug("scanned test directory",
		zap.String("root", root),
		zap.Int("files", len(files)),
	)
	return files, nil
}
