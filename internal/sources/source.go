// Package sources holds the statement-source adapters. Each adapter turns
// one bank export format into the normalized record batch the import pipeline
// consumes; the pipeline itself never sees format details.
package sources

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/SscSPs/personal_ledger_app/internal/dto"
)

// Source is one statement format adapter.
type Source interface {
	// Name is the identifier users select the source by.
	Name() string

	// Parse reads one statement export and returns the normalized records.
	// A malformed export fails as a whole; Parse never returns partial batches.
	Parse(ctx context.Context, r io.Reader) ([]dto.StatementRecord, error)
}

// Registry holds all registered sources, keyed by name.
type Registry struct {
	sources map[string]Source
}

// NewRegistry creates a registry with the given sources.
func NewRegistry(sources ...Source) *Registry {
	reg := &Registry{sources: make(map[string]Source, len(sources))}
	for _, s := range sources {
		reg.Register(s)
	}
	return reg
}

// Register adds a source (for extensibility). A name can be bound only once.
func (r *Registry) Register(s Source) {
	if _, dup := r.sources[s.Name()]; dup {
		panic(fmt.Sprintf("source %q registered twice", s.Name()))
	}
	r.sources[s.Name()] = s
}

// Lookup returns the source registered under name.
func (r *Registry) Lookup(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source %q (available: %v)", name, r.Names())
	}
	return s, nil
}

// Names returns all registered source names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
