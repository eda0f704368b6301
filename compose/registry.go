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
	"fmt"
	"sort"

	"github.com/NikolasMelui/graphql-compose/graphql"
)

// entryState tracks where a registry slot is in its lifecycle.
type entryState uint8

const (
	// entryUnresolved: the slot holds a composer that has never been materialized (or whose last
	// materialization attempt failed).
	entryUnresolved entryState = iota

	// entryPending: a materialization walk is building this slot right now. A re-entrant lookup
	// during this window is a cycle and receives the in-progress instance.
	entryPending

	// entryDone: the slot holds a materialized type valid for the recorded composer version.
	entryDone
)

// entry is one named slot in a Registry.
type entry struct {
	name     string
	composer Composer
	t        graphql.Type
	state    entryState

	// builtVersion is the composer version t was built from; a newer composer version makes t a
	// stale snapshot.
	builtVersion uint64

	// pendingDef is the TypeDefinition of the walk currently building this entry. Cycles must
	// resolve against the same definition identity to land on the same in-progress instance.
	pendingDef graphql.TypeDefinition

	// builtDef is the TypeDefinition t was built from. It is discarded from the creator's
	// memoization when the snapshot is superseded or demoted.
	builtDef graphql.TypeDefinition
}

// Registry is the central authority mapping type names to either a materialized named type or a
// still-mutable composer. All composers created through a Registry resolve their name references
// against it. A Registry and its composers form one single-threaded unit of work; wrap them in
// external synchronization if they must cross goroutines.
type Registry struct {
	entries map[string]*entry

	// Materialization-walk bookkeeping: the nesting depth of materializeEntry calls and the
	// entries completed inside the walk in progress. When the walk fails, those entries may hold
	// references to semi-initialized instances the failure discarded and must be demoted.
	walkDepth int
	walkDone  []*entry
}

// NewRegistry creates an empty Registry. The built-in scalars (Int, Float, String, Boolean, ID)
// are implicitly present in every registry and cannot be shadowed.
func NewRegistry() *Registry {
	return &Registry{
		entries: map[string]*entry{},
	}
}

// Has returns true when name is a built-in scalar or a registered slot.
func (r *Registry) Has(name string) bool {
	if graphql.IsBuiltInScalarName(name) {
		return true
	}
	_, ok := r.entries[name]
	return ok
}

// Get returns the materialized type registered under name, if any. Slots still holding an
// unmaterialized composer yield nothing; use Resolve to force materialization.
func (r *Registry) Get(name string) (graphql.Type, bool) {
	if scalar, ok := graphql.BuiltInScalar(name); ok {
		return scalar, true
	}
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	if e.composer == nil {
		return e.t, e.t != nil
	}
	if e.state == entryDone && e.builtVersion == e.composer.version() {
		return e.t, true
	}
	return nil, false
}

// GetComposer returns the composer registered under name, if the slot holds one.
func (r *Registry) GetComposer(name string) (Composer, bool) {
	e, ok := r.entries[name]
	if !ok || e.composer == nil {
		return nil, false
	}
	return e.composer, true
}

// SetType binds name directly to a materialized type, overwriting any previous binding under that
// name. Built-in scalar names cannot be rebound.
func (r *Registry) SetType(name string, t graphql.Type) error {
	const op = graphql.Op("compose.Registry.SetType")
	if err := graphql.ValidateName(name); err != nil {
		return graphql.NewError(fmt.Sprintf("Cannot register type under name %q.", name), op, err)
	}
	if graphql.IsBuiltInScalarName(name) {
		return graphql.NewError(
			fmt.Sprintf("Cannot replace built-in scalar type %q.", name),
			op, graphql.ErrKindNameConflict)
	}
	if t == nil {
		return graphql.NewError(
			fmt.Sprintf("Cannot register a nil type under name %q.", name),
			op, graphql.ErrKindInvalidArgument)
	}
	r.entries[name] = &entry{
		name:  name,
		t:     t,
		state: entryDone,
	}
	return nil
}

// Remove deletes the slot registered under name. Removing an absent name is a no-op; built-in
// scalars are not removable and are silently ignored.
func (r *Registry) Remove(name string) {
	delete(r.entries, name)
}

// TypeNames returns the names of all registered slots in sorted order. Built-in scalars are not
// listed; they are ambient, not registrations.
func (r *Registry) TypeNames() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// register claims a slot for a newly created composer. Unlike SetType it never overwrites: a
// conflicting registration is an error.
func (r *Registry) register(c Composer) error {
	name := c.TypeName()
	if err := graphql.ValidateName(name); err != nil {
		return graphql.NewError(fmt.Sprintf("Cannot register type under name %q.", name), err)
	}
	if graphql.IsBuiltInScalarName(name) {
		return graphql.NewError(
			fmt.Sprintf("Type name %q collides with a built-in scalar type.", name),
			graphql.ErrKindNameConflict)
	}
	if _, exists := r.entries[name]; exists {
		return graphql.NewError(
			fmt.Sprintf("Type with name %q is already registered.", name),
			graphql.ErrKindNameConflict)
	}
	r.entries[name] = &entry{
		name:     name,
		composer: c,
	}
	return nil
}

// rename moves a composer's slot to a new name. The new name must be free.
func (r *Registry) rename(oldName string, newName string, c Composer) error {
	if err := graphql.ValidateName(newName); err != nil {
		return graphql.NewError(fmt.Sprintf("Cannot rename type to %q.", newName), err)
	}
	if graphql.IsBuiltInScalarName(newName) {
		return graphql.NewError(
			fmt.Sprintf("Type name %q collides with a built-in scalar type.", newName),
			graphql.ErrKindNameConflict)
	}
	if _, exists := r.entries[newName]; exists {
		return graphql.NewError(
			fmt.Sprintf("Type with name %q is already registered.", newName),
			graphql.ErrKindNameConflict)
	}

	e, ok := r.entries[oldName]
	if !ok || e.composer != c {
		// The composer was unregistered (or its slot overwritten) behind its back; claim the new
		// name with a fresh slot.
		e = &entry{composer: c}
	} else {
		delete(r.entries, oldName)
	}
	e.name = newName
	e.state = entryUnresolved
	e.t = nil
	r.entries[newName] = e
	return nil
}
