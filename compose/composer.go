/**
 * Copyright (c) 2026, The GraphQL Compose Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package compose

import (
	"sort"

	"github.com/NikolasMelui/graphql-compose/graphql"
)

// A TypeRef is anything that can stand in for a type in a composer's field, argument or member
// slot: a bare or wrapped type-name string ("Color", "Color!", "[Color!]!"), another Composer, a
// materialized graphql.Type, a graphql.TypeDefinition, or a *Thunk producing any of the above.
// TypeRefs are resolved by the registry's normalizer during materialization, never at the time
// they are written into a composer.
type TypeRef interface{}

// Composer is the common contract of the mutable type builders. A composer owns a canonical
// mutable description of one named type; materialized types handed out from Type() are read-only
// snapshots of that description, produced through the registry's materialization engine.
type Composer interface {
	// TypeName returns the name under which the composer is registered.
	TypeName() string

	// Description returns the description of the composed type.
	Description() string

	// Type materializes the composed type. The first read upgrades the registry slot; later reads
	// are cache hits until the composer is mutated again.
	Type() (graphql.Type, error)

	// version returns the mutation counter. Every mutation bumps it; derived views and cached
	// snapshots are invalidated by comparing against it.
	version() uint64

	// typeDefinition builds a fresh TypeDefinition describing the current state of the composer.
	// Only the materialization engine calls this.
	typeDefinition() (graphql.TypeDefinition, error)
}

// Thunk is a zero-argument deferred TypeRef used to break reference cycles between
// mutually-dependent declarations. The wrapped function is invoked at most once, at the point
// materialization actually needs the value; the result is cached and re-used on every later read.
type Thunk struct {
	fn      func() (TypeRef, error)
	invoked bool
	value   TypeRef
	err     error
}

// NewThunk wraps fn in a Thunk.
func NewThunk(fn func() (TypeRef, error)) *Thunk {
	return &Thunk{fn: fn}
}

// Value invokes the thunk, caching its result.
func (t *Thunk) Value() (TypeRef, error) {
	if !t.invoked {
		t.invoked = true
		t.value, t.err = t.fn()
		t.fn = nil
	}
	return t.value, t.err
}

//===----------------------------------------------------------------------------------------====//
// orderedMap
//===----------------------------------------------------------------------------------------====//

// orderedMap is the canonical field/value storage of a composer: a name→config map with a
// deterministic iteration order. Full replacement orders keys by name; merging keeps the slot of
// existing keys and appends new ones in sorted order; reorder moves named keys to the front.
type orderedMap[V any] struct {
	names  []string
	values map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: map[string]V{}}
}

func (m *orderedMap[V]) len() int {
	return len(m.names)
}

func (m *orderedMap[V]) has(name string) bool {
	_, ok := m.values[name]
	return ok
}

func (m *orderedMap[V]) get(name string) (V, bool) {
	v, ok := m.values[name]
	return v, ok
}

// set inserts or updates a single entry. A new name is appended to the order.
func (m *orderedMap[V]) set(name string, value V) {
	if !m.has(name) {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// delete removes an entry; deleting an absent name is a no-op.
func (m *orderedMap[V]) delete(name string) {
	if !m.has(name) {
		return
	}
	delete(m.values, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
}

// keys returns a copy of the names in iteration order.
func (m *orderedMap[V]) keys() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// replaceAll replaces the whole map. Go maps carry no order, so the new keys are ordered by name.
func (m *orderedMap[V]) replaceAll(values map[string]V) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	m.names = names
	m.values = make(map[string]V, len(values))
	for name, value := range values {
		m.values[name] = value
	}
}

// merge applies a right-biased set union: colliding keys take the new config but keep their slot,
// new keys are appended in sorted order.
func (m *orderedMap[V]) merge(values map[string]V) {
	added := make([]string, 0, len(values))
	for name := range values {
		if !m.has(name) {
			added = append(added, name)
		}
	}
	sort.Strings(added)

	m.names = append(m.names, added...)
	for name, value := range values {
		m.values[name] = value
	}
}

// reorder performs a stable reorder: the given names move to the front in the given order
// (skipping names not present), followed by all remaining keys in their prior relative order.
func (m *orderedMap[V]) reorder(names []string) {
	front := make([]string, 0, len(m.names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if m.has(name) && !seen[name] {
			front = append(front, name)
			seen[name] = true
		}
	}
	for _, name := range m.names {
		if !seen[name] {
			front = append(front, name)
		}
	}
	m.names = front
}

// clone produces an independent copy; copyValue deep-copies each config so the clone shares no
// mutable state with the original.
func (m *orderedMap[V]) clone(copyValue func(V) V) *orderedMap[V] {
	out := &orderedMap[V]{
		names:  make([]string, len(m.names)),
		values: make(map[string]V, len(m.values)),
	}
	copy(out.names, m.names)
	for name, value := range m.values {
		out.values[name] = copyValue(value)
	}
	return out
}
