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

package graphql

import (
	"fmt"
)

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a function to determine which type is actually used
// when the field is resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union struct {
	name          string
	description   string
	possibleTypes []*Object
	typeResolver  TypeResolver
}

var (
	_ Type                = (*Union)(nil)
	_ AbstractType        = (*Union)(nil)
	_ TypeWithName        = (*Union)(nil)
	_ TypeWithDescription = (*Union)(nil)
)

// unionTypeCreator is given to newTypeImpl for creating a Union.
type unionTypeCreator struct {
	typeDef *UnionConfig
}

var _ typeCreator = (*unionTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *unionTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *unionTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.typeDef

	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.", ErrKindInvalidArgument)
	}
	if err := ValidateName(config.Name); err != nil {
		return nil, err
	}

	return &Union{
		name:         config.Name,
		description:  config.Description,
		typeResolver: config.TypeResolver,
	}, nil
}

// Finalize implements typeCreator.
func (creator *unionTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	union := t.(*Union)
	config := creator.typeDef

	if numTypes := len(config.PossibleTypes); numTypes > 0 {
		possibleTypes := make([]*Object, numTypes)
		for i, typeDef := range config.PossibleTypes {
			memberType, err := typeDefResolver(typeDef)
			if err != nil {
				return err
			}
			object, ok := memberType.(*Object)
			if !ok {
				return NewError(
					fmt.Sprintf("%s in possible types of Union %q is not an Object type.",
						Inspect(memberType), union.name),
					ErrKindMaterialization)
			}
			possibleTypes[i] = object
		}
		union.possibleTypes = possibleTypes
	}

	return nil
}

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config *UnionConfig) (*Union, error) {
	t, err := newTypeImpl(&unionTypeCreator{typeDef: config})
	if err != nil {
		return nil, err
	}
	return t.(*Union), nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config *UnionConfig) *Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.description
}

// String implements Type.
func (u *Union) String() string {
	return u.Name()
}

// PossibleTypes returns the members of the union type.
func (u *Union) PossibleTypes() []*Object {
	return u.possibleTypes
}

// TypeResolver implements AbstractType.
func (u *Union) TypeResolver() TypeResolver {
	return u.typeResolver
}
