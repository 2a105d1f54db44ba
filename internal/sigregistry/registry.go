// Package sigregistry is a process-wide cache of named Signatures, keyed by
// a generated uuid.UUID handle — grounded on the teacher's plain
// path-to-object moduleCache, generalized with a concurrency-safe map and a
// generated handle instead of a raw directory string key (this registry has
// no filesystem path to key off of; a Signature can be built from a live
// func value with no backing source file at all).
package sigregistry

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/funvibe/pycall/internal/signature"
)

// Registry maps generated handles to registered Signatures.
type Registry struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entry
	byName  map[string]uuid.UUID
}

type entry struct {
	name string
	sig  *signature.Signature
}

// New builds an empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[uuid.UUID]entry),
		byName:  make(map[string]uuid.UUID),
	}
}

// Register assigns a fresh handle to sig under name and returns it. name
// need not be unique across calls — each Register call mints a new handle
// — but Lookup by name always resolves to the most recently registered
// Signature under that name.
func (r *Registry) Register(name string, sig *signature.Signature) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.entries[id] = entry{name: name, sig: sig}
	r.byName[name] = id
	return id
}

// Get resolves a handle to its Signature.
func (r *Registry) Get(id uuid.UUID) (*signature.Signature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e.sig, ok
}

// Lookup resolves a name to the most recently Register-ed Signature under
// it.
func (r *Registry) Lookup(name string) (*signature.Signature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.entries[id].sig, true
}

// Forget removes a handle from the registry.
func (r *Registry) Forget(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return
	}
	delete(r.entries, id)
	if r.byName[e.name] == id {
		delete(r.byName, e.name)
	}
}

// Default is the shared process-wide registry most callers use.
var Default = New()

// MustLookup resolves name in Default or panics — for call sites (e.g. CLI
// subcommand dispatch) that have already validated the name exists.
func MustLookup(name string) *signature.Signature {
	sig, ok := Default.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("sigregistry: no signature registered under %q", name))
	}
	return sig
}
