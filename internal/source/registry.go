package source

import (
	"errors"
	"fmt"

	"newsdigest/internal/domain"
)

// ErrUnknownSource is returned when no adapter is registered for a
// source name.
var ErrUnknownSource = errors.New("unknown source")

// Factory builds a parser for one source row. The row's data_url, when
// set, overrides the adapter's default feed URL.
type Factory func(src domain.Source, opts Options) (Parser, error)

// Registry maps source names to adapter factories. Populated explicitly
// at startup; lookup of an unregistered name is an error, not a
// reflection miss.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

func (r *Registry) Create(src domain.Source, opts Options) (Parser, error) {
	factory, ok := r.factories[src.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src.Name)
	}
	return factory(src, opts)
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
