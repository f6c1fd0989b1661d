// Package namespace defines the fixed set of namespaces that partition the
// request catalog.
package namespace

import (
	"github.com/agnivade/levenshtein"
)

// Default is the namespace selected when a session starts.
const Default = "default"

// maxSuggestDistance bounds how far a typo may be from a registered id
// before no suggestion is offered.
const maxSuggestDistance = 3

// Namespace is a named scope for requests.
type Namespace struct {
	ID   string
	Name string
}

// Registry is an ordered, immutable set of namespaces.
type Registry struct {
	namespaces []Namespace
	index      map[string]int
}

// builtin lists the namespaces in display order.
var builtin = []Namespace{
	{ID: "default", Name: "Default"},
	{ID: "production", Name: "Production"},
	{ID: "staging", Name: "Staging"},
	{ID: "development", Name: "Development"},
}

// NewRegistry returns the built-in registry.
func NewRegistry() *Registry {
	index := make(map[string]int, len(builtin))
	for i, ns := range builtin {
		index[ns.ID] = i
	}
	return &Registry{namespaces: builtin, index: index}
}

// List returns the namespaces in display order. The slice is a copy.
func (r *Registry) List() []Namespace {
	out := make([]Namespace, len(r.namespaces))
	copy(out, r.namespaces)
	return out
}

// IsValid reports whether id is registered.
func (r *Registry) IsValid(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Lookup returns the namespace with the given id.
func (r *Registry) Lookup(id string) (Namespace, bool) {
	i, ok := r.index[id]
	if !ok {
		return Namespace{}, false
	}
	return r.namespaces[i], true
}

// Next returns the namespace after id in display order, wrapping around.
// Unknown ids map to the first namespace.
func (r *Registry) Next(id string) Namespace {
	i, ok := r.index[id]
	if !ok {
		return r.namespaces[0]
	}
	return r.namespaces[(i+1)%len(r.namespaces)]
}

// Prev returns the namespace before id in display order, wrapping around.
// Unknown ids map to the last namespace.
func (r *Registry) Prev(id string) Namespace {
	i, ok := r.index[id]
	if !ok {
		return r.namespaces[len(r.namespaces)-1]
	}
	return r.namespaces[(i-1+len(r.namespaces))%len(r.namespaces)]
}

// Suggest returns the registered id closest to id, if it is close enough to
// be a plausible typo.
func (r *Registry) Suggest(id string) (string, bool) {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, ns := range r.namespaces {
		d := levenshtein.ComputeDistance(id, ns.ID)
		if d < bestDist {
			best, bestDist = ns.ID, d
		}
	}
	if best == "" || best == id {
		return "", false
	}
	return best, true
}
