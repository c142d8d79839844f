// Package history persists validation outcomes per template, so
// authors can watch the score trend while they iterate.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foliokit/templint/internal/domain"
)

const historyFile = ".templint/history.json"

// FileHistory implements domain.HistoryStore using JSON file storage
// inside the template checkout.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(templatePath string, entry domain.HistoryEntry) error {
	entries, err := h.Load(templatePath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(templatePath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(templatePath string) ([]domain.HistoryEntry, error) {
	fp := filepath.Join(templatePath, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fp, err)
	}

	return entries, nil
}
