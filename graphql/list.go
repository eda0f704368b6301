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

// List Type Modifier
//
// A list is a wrapping type which points to another type. Lists are often created within the
// context of defining the fields of an object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.List
type List struct {
	elementType Type
}

var (
	_ Type         = (*List)(nil)
	_ WrappingType = (*List)(nil)
)

// listTypeCreator is given to newTypeImpl for creating a List.
type listTypeCreator struct {
	typeDef listTypeDefinition
}

var _ typeCreator = (*listTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *listTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *listTypeCreator) LoadDataAndNew() (Type, error) {
	return &List{}, nil
}

// Finalize implements typeCreator.
func (creator *listTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	elementType, err := typeDefResolver(creator.typeDef.elementTypeDef)
	if err != nil {
		return err
	} else if elementType == nil {
		return NewError("Must provide a non-nil element type for List.", ErrKindInvalidArgument)
	}

	list := t.(*List)
	list.elementType = elementType
	return nil
}

// NewListOfType defines a List type wrapping the given materialized element type.
func NewListOfType(elementType Type) (*List, error) {
	return NewList(ListOfType(elementType))
}

// MustNewListOfType is a panic-on-fail version of NewListOfType.
func MustNewListOfType(elementType Type) *List {
	return MustNewList(ListOfType(elementType))
}

// NewList defines a List type from a TypeDefinition created with ListOf or ListOfType.
func NewList(typeDef TypeDefinition) (*List, error) {
	listTypeDef, ok := typeDef.(listTypeDefinition)
	if !ok {
		return nil, NewError("NewList expects a TypeDefinition created with ListOf or ListOfType.",
			ErrKindInvalidArgument)
	}
	t, err := newTypeImpl(&listTypeCreator{typeDef: listTypeDef})
	if err != nil {
		return nil, err
	}
	return t.(*List), nil
}

// MustNewList is a convenience function equivalent to NewList but panics on failure instead of
// returning an error.
func MustNewList(typeDef TypeDefinition) *List {
	l, err := NewList(typeDef)
	if err != nil {
		panic(err)
	}
	return l
}

// graphqlType implements Type.
func (*List) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*List) graphqlWrappingType() {}

// String implements Type.
func (l *List) String() string {
	return "[" + l.elementType.String() + "]"
}

// UnwrappedType implements WrappingType.
func (l *List) UnwrappedType() Type {
	return l.ElementType()
}

// ElementType indicates the type of the elements in the list.
func (l *List) ElementType() Type {
	return l.elementType
}
