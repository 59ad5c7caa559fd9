// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widget

import (
	"sort"
	"sync"
)

// Factory creates a widget from shared collaborators.
type Factory func(d Deps) (Widget, error)

// Entry is a registered widget factory.
type Entry struct {
	// Name is the unique identifier hosts use in configuration.
	Name string

	// Kind is the built-in kind behind the factory, or nil for custom
	// factories.
	Kind Kind

	Factory Factory
}

// defaultRegistry holds every built-in kind under its Name.
var defaultRegistry = NewRegistry()

// Registry maps names to widget factories.
//
// Example registration of a custom widget:
//
//	widget.Register("rpm", func(d widget.Deps) (widget.Widget, error) {
//	    return widget.New(widget.NumericKind{Caption: "RPM"}, d)
//	})
//
// Example usage:
//
//	w, err := widget.NewByName("speed_sog", deps)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates an empty registry.
// Most code should use the package-level functions.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds a factory to the default registry, replacing any entry
// with the same name.
func Register(name string, f Factory) {
	defaultRegistry.Register(name, f)
}

// RegisterKind adds a built-in kind to the default registry under its Name.
func RegisterKind(k Kind) {
	defaultRegistry.RegisterKind(k)
}

// Unregister removes a factory from the default registry.
func Unregister(name string) {
	defaultRegistry.Unregister(name)
}

// List returns the names in the default registry, sorted.
func List() []string {
	return defaultRegistry.List()
}

// Get returns an entry of the default registry.
func Get(name string) (*Entry, bool) {
	return defaultRegistry.Get(name)
}

// NewByName creates a widget from the default registry.
func NewByName(name string, d Deps) (Widget, error) {
	return defaultRegistry.New(name, d)
}

// Register adds a factory to this registry.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &Entry{Name: name, Factory: f}
}

// RegisterKind adds a built-in kind under its Name.
func (r *Registry) RegisterKind(k Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[k.Name()] = &Entry{
		Name:    k.Name(),
		Kind:    k,
		Factory: func(d Deps) (Widget, error) { return New(k, d) },
	}
}

// Unregister removes a factory.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// List returns all registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a copy of the entry for name.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	c := *e
	return &c, true
}

// New creates a widget with the factory registered as name.
func (r *Registry) New(name string, d Deps) (Widget, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return e.Factory(d)
}

// NotFoundError indicates a name that is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "widget: not registered: " + e.Name
}

// init registers the built-in kinds.
func init() {
	for _, k := range Kinds() {
		RegisterKind(k)
	}
}
