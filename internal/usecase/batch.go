package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nlpkit/internal/domain"
	"nlpkit/internal/port"
)

// ProgressFunc is called after each file with the running count.
type ProgressFunc func(done, total int, path string)

// BatchUseCase preprocesses every file selected by a walker.
type BatchUseCase struct {
	walker  port.FileWalker
	cleaner port.TextCleaner
}

// NewBatchUseCase creates a new batch use case.
func NewBatchUseCase(walker port.FileWalker, cleaner port.TextCleaner) *BatchUseCase {
	return &BatchUseCase{
		walker:  walker,
		cleaner: cleaner,
	}
}

// Run preprocesses the files under root. A file that cannot be read is
// recorded in the report and the run continues.
func (u *BatchUseCase) Run(root string, progress ProgressFunc) (*domain.BatchReport, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	report := &domain.BatchReport{
		Root:      root,
		Documents: make([]domain.CleanedDocument, 0, len(files)),
	}

	for i, file := range files {
		doc, err := u.cleanFile(file)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("failed to clean %s: %v", file.Path, err))
		} else {
			if rel, relErr := filepath.Rel(root, file.Path); relErr == nil {
				doc.Path = filepath.ToSlash(rel)
			}
			report.Documents = append(report.Documents, doc)
		}

		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	return report, nil
}

func (u *BatchUseCase) cleanFile(file port.FileInfo) (domain.CleanedDocument, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return domain.CleanedDocument{}, err
	}
	defer f.Close()

	cleaned, err := u.cleaner.PreprocessReader(f)
	if err != nil {
		return domain.CleanedDocument{}, err
	}

	return domain.CleanedDocument{
		Path:     file.Path,
		Original: int(file.Size),
		Cleaned:  cleaned,
		Tokens:   strings.Fields(cleaned),
	}, nil
}
