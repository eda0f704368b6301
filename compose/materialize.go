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

	"github.com/NikolasMelui/graphql-compose/graphql"
)

//===----------------------------------------------------------------------------------------====//
// Materialization engine
//===----------------------------------------------------------------------------------------====//
//
// Materialization walks a composer's description depth-first and produces immutable graphql types.
// Three mechanisms keep the walk terminating and consistent on cyclic type graphs:
//
//  1. Memoization: a slot whose snapshot is still valid for the composer's current version is a
//     cache hit and returns the previously built type.
//
//  2. Cycle breaking: a slot in the pending state is being built higher up the same walk. The
//     re-entrant lookup resolves the walk's own pending definition, which lands on the
//     semi-initialized instance already published for it, so both sides of the cycle end up
//     holding the same pointer.
//
//  3. Failure unwinding: a failed build resets the slot to unresolved and reports the failure; no
//     half-built type stays observable through the registry.

// Resolve materializes the type registered under name, building it (and everything it references)
// on first read and returning the cached snapshot afterwards. Mutating a composer invalidates its
// snapshot; the next Resolve builds a fresh type.
func (r *Registry) Resolve(name string) (graphql.Type, error) {
	const op = graphql.Op("compose.Registry.Resolve")

	if scalar, ok := graphql.BuiltInScalar(name); ok {
		return scalar, nil
	}
	e, ok := r.entries[name]
	if !ok {
		return nil, graphql.NewError(
			fmt.Sprintf("Type with name %q does not exist.", name),
			op, graphql.ErrKindUnknownType)
	}
	return r.materializeEntry(e)
}

// materializeEntry drives one slot through the unresolved→pending→done lifecycle.
func (r *Registry) materializeEntry(e *entry) (graphql.Type, error) {
	if e.composer == nil {
		// Directly bound materialized type.
		if e.t == nil {
			return nil, graphql.NewError(
				fmt.Sprintf("Type with name %q does not exist.", e.name),
				graphql.ErrKindUnknownType)
		}
		return e.t, nil
	}

	switch e.state {
	case entryDone:
		if e.builtVersion == e.composer.version() {
			return e.t, nil
		}
		// Stale snapshot; rebuild below.

	case entryPending:
		// Cycle: hand back the semi-initialized instance of the walk in progress.
		return graphql.NewType(e.pendingDef)
	}

	typeDef, err := e.composer.typeDefinition()
	if err != nil {
		return nil, graphql.NewError(
			fmt.Sprintf("Failed to materialize type %q.", e.name),
			graphql.ErrKindMaterialization, err)
	}

	// The superseded snapshot's definition will never be resolved again.
	e.discardBuilt()

	r.walkDepth++
	e.state = entryPending
	e.pendingDef = typeDef
	t, err := graphql.NewType(typeDef)
	e.pendingDef = nil
	r.walkDepth--
	if err != nil {
		e.state = entryUnresolved
		e.t = nil
		if r.walkDepth == 0 {
			r.demoteWalkDone()
		}
		return nil, graphql.WrapErrorf(err, "Failed to materialize type %q", e.name)
	}

	e.t = t
	e.state = entryDone
	e.builtVersion = e.composer.version()
	e.builtDef = typeDef
	if r.walkDepth > 0 {
		// Completed inside an enclosing walk; stays provisional until that walk succeeds.
		r.walkDone = append(r.walkDone, e)
	} else {
		r.walkDone = r.walkDone[:0]
	}
	return t, nil
}

// demoteWalkDone rolls back every entry completed during the walk that just failed. Their types
// may reference semi-initialized instances the failure discarded, so none of them may stay
// observable through the registry.
func (r *Registry) demoteWalkDone() {
	for _, e := range r.walkDone {
		e.state = entryUnresolved
		e.t = nil
		e.discardBuilt()
	}
	r.walkDone = r.walkDone[:0]
}

// discardBuilt releases the definition of a snapshot that is no longer current.
func (e *entry) discardBuilt() {
	if e.builtDef != nil {
		graphql.DiscardType(e.builtDef)
		e.builtDef = nil
	}
}

// materializeComposer materializes c through its registry slot when c is registered here, so the
// result participates in this registry's memoization and cycle breaking. A foreign composer
// materializes through its own registry.
func (r *Registry) materializeComposer(c Composer) (graphql.Type, error) {
	if e, ok := r.entries[c.TypeName()]; ok && e.composer == c {
		return r.materializeEntry(e)
	}
	return c.Type()
}
