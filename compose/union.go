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

// UnionComposer is the mutable builder for a Union type: an ordered list of member type
// references plus an optional resolver that picks the concrete object type for a value.
type UnionComposer struct {
	registry     *Registry
	name         string
	description  string
	members      []TypeRef
	typeResolver graphql.TypeResolver
	ver          uint64
}

var _ Composer = (*UnionComposer)(nil)

// NewUnion creates an empty union composer and registers it under name. The name must be free.
func (r *Registry) NewUnion(name string) (*UnionComposer, error) {
	uc := &UnionComposer{
		registry: r,
		name:     name,
	}
	if err := r.register(uc); err != nil {
		return nil, err
	}
	return uc, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func (r *Registry) MustNewUnion(name string) *UnionComposer {
	uc, err := r.NewUnion(name)
	if err != nil {
		panic(err)
	}
	return uc
}

func (uc *UnionComposer) bump() {
	uc.ver++
}

// version implements Composer.
func (uc *UnionComposer) version() uint64 {
	return uc.ver
}

// TypeName implements Composer.
func (uc *UnionComposer) TypeName() string {
	return uc.name
}

// SetTypeName renames the composed type, moving its registry slot to the new name.
func (uc *UnionComposer) SetTypeName(newName string) error {
	if newName == uc.name {
		return nil
	}
	if err := uc.registry.rename(uc.name, newName, uc); err != nil {
		return err
	}
	uc.name = newName
	uc.bump()
	return nil
}

// Description implements Composer.
func (uc *UnionComposer) Description() string {
	return uc.description
}

// SetDescription updates the type description.
func (uc *UnionComposer) SetDescription(description string) *UnionComposer {
	uc.description = description
	uc.bump()
	return uc
}

// SetTypeResolver attaches the resolver that determines the concrete object type for a value.
func (uc *UnionComposer) SetTypeResolver(resolver graphql.TypeResolver) *UnionComposer {
	uc.typeResolver = resolver
	uc.bump()
	return uc
}

// TypeResolver returns the attached type resolver, if any.
func (uc *UnionComposer) TypeResolver() graphql.TypeResolver {
	return uc.typeResolver
}

//===----------------------------------------------------------------------------------------====//
// Member types
//===----------------------------------------------------------------------------------------====//

// SetTypes replaces the member list. Every reference must resolve to an Object type at
// materialization.
func (uc *UnionComposer) SetTypes(refs ...TypeRef) *UnionComposer {
	uc.members = append([]TypeRef(nil), refs...)
	uc.bump()
	return uc
}

// AddType appends one member reference, skipping references already present under the same name.
func (uc *UnionComposer) AddType(ref TypeRef) *UnionComposer {
	if name, ok := memberName(ref); ok {
		for _, member := range uc.members {
			if existing, ok := memberName(member); ok && existing == name {
				return uc
			}
		}
	}
	uc.members = append(uc.members, ref)
	uc.bump()
	return uc
}

// RemoveType deletes members carrying the given name; absent names are ignored.
func (uc *UnionComposer) RemoveType(name string) *UnionComposer {
	kept := uc.members[:0]
	for _, member := range uc.members {
		if memberOf, ok := memberName(member); ok && memberOf == name {
			continue
		}
		kept = append(kept, member)
	}
	uc.members = kept
	uc.bump()
	return uc
}

// GetTypes returns a copy of the member references.
func (uc *UnionComposer) GetTypes() []TypeRef {
	return append([]TypeRef(nil), uc.members...)
}

// GetTypeNames returns the names of members whose reference carries a name, in member order.
func (uc *UnionComposer) GetTypeNames() []string {
	names := make([]string, 0, len(uc.members))
	for _, member := range uc.members {
		if name, ok := memberName(member); ok {
			names = append(names, name)
		}
	}
	return names
}

// HasType returns true when a member carries the given name.
func (uc *UnionComposer) HasType(name string) bool {
	for _, member := range uc.members {
		if memberOf, ok := memberName(member); ok && memberOf == name {
			return true
		}
	}
	return false
}

// memberName extracts the type name carried by a member reference, when it has one. Thunks stay
// anonymous until materialization.
func memberName(ref TypeRef) (string, bool) {
	switch ref := ref.(type) {
	case string:
		return ref, ref != ""
	case Composer:
		return ref.TypeName(), true
	case graphql.TypeWithName:
		return ref.Name(), true
	}
	return "", false
}

//===----------------------------------------------------------------------------------------====//
// Cloning and materialization
//===----------------------------------------------------------------------------------------====//

// Clone registers an independent copy of the composer under newName.
func (uc *UnionComposer) Clone(newName string) (*UnionComposer, error) {
	cloned, err := uc.registry.NewUnion(newName)
	if err != nil {
		return nil, err
	}
	cloned.description = uc.description
	cloned.members = append([]TypeRef(nil), uc.members...)
	cloned.typeResolver = uc.typeResolver
	return cloned, nil
}

// typeDefinition implements Composer.
func (uc *UnionComposer) typeDefinition() (graphql.TypeDefinition, error) {
	var possibleTypes []graphql.TypeDefinition
	for i, member := range uc.members {
		possibleTypes = append(possibleTypes, uc.registry.deferredRef(member,
			fmt.Sprintf("member #%d of union type %q", i, uc.name)))
	}
	return &graphql.UnionConfig{
		Name:          uc.name,
		Description:   uc.description,
		PossibleTypes: possibleTypes,
		TypeResolver:  uc.typeResolver,
	}, nil
}

// Type implements Composer. The result is cached until the next mutation.
func (uc *UnionComposer) Type() (graphql.Type, error) {
	return uc.registry.materializeComposer(uc)
}

// MustType is a convenience function equivalent to Type but panics on failure.
func (uc *UnionComposer) MustType() graphql.Type {
	t, err := uc.Type()
	if err != nil {
		panic(err)
	}
	return t
}

// ListType materializes the composed type wrapped in a List.
func (uc *UnionComposer) ListType() (graphql.Type, error) {
	t, err := uc.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewListOfType(t)
}

// NonNullType materializes the composed type wrapped in a NonNull.
func (uc *UnionComposer) NonNullType() (graphql.Type, error) {
	t, err := uc.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewNonNullOfType(t)
}
