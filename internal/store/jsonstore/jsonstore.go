package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/showcase/internal/api"
	"github.com/idilsaglam/showcase/internal/model"
)

// JSON-backed project source. Single file, same shape as the API answer,
// with an optional category per record. Read-only; the file is read on
// every fetch so edits show up on retry.

type record struct {
	model.Record
	Category string `json:"category,omitempty"`
}

type document struct {
	Projects []record `json:"projects"`
}

// Store serves projects from a fixture file.
type Store struct {
	path string
}

// New returns a store for path, resolved against the working directory.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("fixture path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs: %w", err)
	}
	return &Store{path: abs}, nil
}

func (s *Store) Path() string { return s.path }

// Projects returns the records of category, or all of them for ALL.
func (s *Store) Projects(ctx context.Context, category model.Category) ([]model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrFetchFailed, err)
	}
	doc, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrFetchFailed, err)
	}
	var out []model.Record
	for _, r := range doc.Projects {
		if category == model.CategoryAll || matches(r.Category, category) {
			out = append(out, r.Record)
		}
	}
	return model.FromRecords(out), nil
}

func (s *Store) load() (document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return document{}, fmt.Errorf("read file: %w", err)
	}
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return document{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if doc.Projects == nil {
		return document{}, fmt.Errorf("%s: no projects", filepath.Base(s.path))
	}
	return doc, nil
}

func matches(raw string, category model.Category) bool {
	c, err := model.ParseCategory(raw)
	return err == nil && c == category
}
