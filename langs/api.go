// Package langs is the built-in lexer-grammar database: one grammar.Graph per
// language, keyed by display name.
package langs

import (
	"sort"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// Database is a read-only lexer-grammar database.
type Database interface {
	// Names returns all display names, sorted.
	Names() []string

	// Get returns the grammar registered under a display name.
	Get(name string) (*grammar.Graph, error)
}

// Registry is a mutable Database.
type Registry struct {
	graphs map[string]*grammar.Graph
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{graphs: map[string]*grammar.Graph{}}
}

// Register validates g and adds it to the registry, replacing any previous
// grammar with the same display name. Panics on an invalid graph.
func (r *Registry) Register(g *grammar.Graph) *grammar.Graph {
	grammar.MustValid(g)
	r.graphs[g.Config.Name] = g
	return g
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.graphs))
	for name := range r.graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Get(name string) (*grammar.Graph, error) {
	g, ok := r.graphs[name]
	if !ok {
		return nil, unknownLanguageError(name)
	}
	return g, nil
}

// Default is the registry holding the built-in grammars.
var Default = NewRegistry()

func register(g *grammar.Graph) *grammar.Graph {
	return Default.Register(g)
}
