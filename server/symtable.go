package server

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jeremiah-corrado/arkouda/array"
)

// MemSymbolTable is a simple in-memory stand-in for the symbol table
// spec.md §1/§5 treats as an external collaborator: a named, typed object
// store, accessed only at an operation's entry (lookup) and exit (insert).
// A production server backs this with a distributed, concurrent store;
// this implementation only needs to serialize Get/Put/Delete against a
// single map, since it never shards the element buffers it holds.
type MemSymbolTable struct {
	mu      sync.RWMutex
	entries map[string]*array.Array
	seq     atomic.Uint64
	prefix  string
}

// NewMemSymbolTable returns an empty table. Generated names are prefixed
// with prefix (or "id" if empty), followed by a monotonically increasing
// counter, mirroring how the symbol table's own "created by addEntry"
// contract (spec.md §3) assigns a fresh name per result array.
func NewMemSymbolTable(prefix string) *MemSymbolTable {
	if prefix == "" {
		prefix = "id"
	}
	return &MemSymbolTable{
		entries: make(map[string]*array.Array),
		prefix:  prefix,
	}
}

// Get looks up a by name.
func (t *MemSymbolTable) Get(name string) (*array.Array, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	a, ok := t.entries[name]
	return a, ok
}

// Put inserts a under a freshly generated name and returns it. DType and
// shape become immutable once inserted (spec.md §3); only compound-assign
// kernels may later mutate the element buffer in place.
func (t *MemSymbolTable) Put(a *array.Array) string {
	name := fmt.Sprintf("%s_%d", t.prefix, t.seq.Add(1))
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[name] = a
	return name
}

// PutNamed inserts a under an explicit name, for callers (tests, the
// addEntry command) that need a predictable handle rather than a
// generated one. It overwrites any existing entry of the same name.
func (t *MemSymbolTable) PutNamed(name string, a *array.Array) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[name] = a
}

// Delete removes name, if present.
func (t *MemSymbolTable) Delete(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, name)
}
