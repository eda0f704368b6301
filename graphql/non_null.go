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

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types enforce that their
// values are never null and can ensure an error is raised if this ever occurs during a request.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	innerType Type
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// nonNullTypeCreator is given to newTypeImpl for creating a NonNull.
type nonNullTypeCreator struct {
	typeDef nonNullTypeDefinition
}

var _ typeCreator = (*nonNullTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *nonNullTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *nonNullTypeCreator) LoadDataAndNew() (Type, error) {
	return &NonNull{}, nil
}

// Finalize implements typeCreator.
func (creator *nonNullTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	innerType, err := typeDefResolver(creator.typeDef.innerTypeDef)
	if err != nil {
		return err
	} else if innerType == nil {
		return NewError("Must provide a non-nil inner type for NonNull.", ErrKindInvalidArgument)
	} else if IsNonNullType(innerType) {
		return NewError("Cannot wrap a Non-Null type in another Non-Null type.", ErrKindInvalidArgument)
	}

	nonNull := t.(*NonNull)
	nonNull.innerType = innerType
	return nil
}

// NewNonNullOfType defines a NonNull type wrapping the given materialized inner type.
func NewNonNullOfType(innerType Type) (*NonNull, error) {
	return NewNonNull(NonNullOfType(innerType))
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(innerType Type) *NonNull {
	return MustNewNonNull(NonNullOfType(innerType))
}

// NewNonNull defines a NonNull type from a TypeDefinition created with NonNullOf or NonNullOfType.
func NewNonNull(typeDef TypeDefinition) (*NonNull, error) {
	nonNullTypeDef, ok := typeDef.(nonNullTypeDefinition)
	if !ok {
		return nil, NewError(
			"NewNonNull expects a TypeDefinition created with NonNullOf or NonNullOfType.",
			ErrKindInvalidArgument)
	}
	t, err := newTypeImpl(&nonNullTypeCreator{typeDef: nonNullTypeDef})
	if err != nil {
		return nil, err
	}
	return t.(*NonNull), nil
}

// MustNewNonNull is a convenience function equivalent to NewNonNull but panics on failure instead
// of returning an error.
func MustNewNonNull(typeDef TypeDefinition) *NonNull {
	n, err := NewNonNull(typeDef)
	if err != nil {
		panic(err)
	}
	return n
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// String implements Type.
func (n *NonNull) String() string {
	return n.innerType.String() + "!"
}

// UnwrappedType implements WrappingType.
func (n *NonNull) UnwrappedType() Type {
	return n.InnerType()
}

// InnerType indicates the type of the element wrapped in this non-null type.
func (n *NonNull) InnerType() Type {
	return n.innerType
}
