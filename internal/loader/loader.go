package loader

import (
	"context"
	"fmt"

	"MediaMap/internal/domain"
)

// Request carries everything a loader needs to read one dataset.
type Request struct {
	Name    string
	Path    string
	Options map[string]string
}

// Loader reads a dataset in one concrete format (json, yaml, sql).
type Loader interface {
	Name() string
	Load(ctx context.Context, req Request) ([]domain.Record, error)
}

// Registry keeps a mapping from format names to loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{loaders: map[string]Loader{}}
}

// Register adds or replaces a loader implementation.
func (r *Registry) Register(l Loader) {
	if r.loaders == nil {
		r.loaders = map[string]Loader{}
	}
	r.loaders[l.Name()] = l
}

// Resolve returns a loader by format name or an error if it is absent.
func (r *Registry) Resolve(name string) (Loader, error) {
	if l, ok := r.loaders[name]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("loader %s is not registered", name)
}
