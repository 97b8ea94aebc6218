package validation

import "uitv/internal/domain"

// Observer receives progress events while a run is in flight
type Observer interface {
	Discovered(files []domain.TestFile)
	FileStarted(file domain.TestFile)
	SyntaxChecked(file domain.TestFile, status domain.SyntaxStatus)
	StructureValid(file domain.TestFile)
	PatternsChecked(file domain.TestFile)
	FileFinished(outcome domain.FileOutcome)
}

type nopObserver struct{}

func (nopObserver) Discovered([]domain.TestFile) {}
func (nopObserver) FileStarted(domain.TestFile) {}
func (nopObserver) SyntaxChecked(domain.TestFile, domain.SyntaxStatus) {}
func (nopObserver) StructureValid(domain.TestFile) {}
func (nopObserver) PatternsChecked(domain.TestFile) {}
func (nopObserver) FileFinished(domain.FileOutcome) {}
