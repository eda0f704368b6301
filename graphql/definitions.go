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

// TypeDefinition describes a type to be materialized. Concrete variants are the *Config structs
// (one per named kind), the wrappers returned from ListOf and NonNullOf, the pseudo-definition
// returned from T, and the thunk returned from Deferred.
type TypeDefinition interface {
	// ThisIsGraphQLTypeDefinition puts a special mark for TypeDefinition objects.
	ThisIsGraphQLTypeDefinition()
}

// ThisIsTypeDefinition is a marker struct intended to be embedded in every TypeDefinition
// implementation.
type ThisIsTypeDefinition struct{}

// ThisIsGraphQLTypeDefinition implements TypeDefinition.
func (ThisIsTypeDefinition) ThisIsGraphQLTypeDefinition() {}

// NewType materializes a Type instance from the given TypeDefinition. When the kind is known,
// calling the more specific version is better. For example, if you know you are creating an Enum,
// call NewEnum with an *EnumConfig.
func NewType(typeDef TypeDefinition) (Type, error) {
	if typeDef, ok := typeDef.(typeWrapperTypeDefinition); ok {
		return typeDef.Type(), nil
	}
	return newTypeImpl(newCreatorFor(typeDef))
}

// MustNewType is a convenience function equivalent to NewType but panics on failure instead of
// returning an error.
func MustNewType(typeDef TypeDefinition) Type {
	t, err := NewType(typeDef)
	if err != nil {
		panic(err)
	}
	return t
}

//===-----------------------------------------------------------------------------------------====//
// T Function
//===-----------------------------------------------------------------------------------------====//

// typeWrapperTypeDefinition is a wrapper for Type which implements TypeDefinition. This makes a
// materialized Type able to act as a TypeDefinition.
type typeWrapperTypeDefinition struct {
	ThisIsTypeDefinition
	t Type
}

var _ TypeDefinition = typeWrapperTypeDefinition{}

// Type returns the wrapped Type instance.
func (typeDef typeWrapperTypeDefinition) Type() Type {
	return typeDef.t
}

// T converts a Type into a TypeDefinition. When a TypeDefinition depends on some types (e.g., an
// Object depends on the types of its fields), it specifies corresponding TypeDefinition instances
// to reference the dependent types. T allows an already-materialized Type to be used in those
// places. The pseudo-definition is handled specially during resolution.
func T(t Type) TypeDefinition {
	return typeWrapperTypeDefinition{t: t}
}

//===-----------------------------------------------------------------------------------------====//
// Deferred Function
//===-----------------------------------------------------------------------------------------====//

// deferredTypeDefinition wraps a zero-argument thunk producing a Type. The thunk is invoked lazily
// at the point materialization needs the value, never eagerly at definition time, and at most
// once: the result is cached and re-used on every subsequent read.
type deferredTypeDefinition struct {
	ThisIsTypeDefinition
	resolve func() (Type, error)

	invoked bool
	t       Type
	err     error
}

var _ TypeDefinition = (*deferredTypeDefinition)(nil)

// Resolve invokes the thunk, caching its result.
func (typeDef *deferredTypeDefinition) Resolve() (Type, error) {
	if !typeDef.invoked {
		typeDef.invoked = true
		typeDef.t, typeDef.err = typeDef.resolve()
	}
	return typeDef.t, typeDef.err
}

// Deferred creates a TypeDefinition from a thunk. Two mutually referencing types must each be
// fully constructed before either's thunk is safe to invoke; wrapping the reference in Deferred
// postpones the invocation until materialization actually needs the type.
func Deferred(resolve func() (Type, error)) TypeDefinition {
	return &deferredTypeDefinition{resolve: resolve}
}

//===-----------------------------------------------------------------------------------------====//
// Named type configs
//===-----------------------------------------------------------------------------------------====//

// ScalarConfig provides the specification to define a Scalar type.
type ScalarConfig struct {
	ThisIsTypeDefinition

	// Name of the Scalar type
	Name string

	// Description of the Scalar type
	Description string

	// ResultCoercer serializes an internal value into the scalar's external form. When omitted, the
	// identity function is used.
	ResultCoercer CoerceScalarResultFunc

	// InputCoercer parses an external input value into the scalar's internal form. When omitted,
	// the identity function is used.
	InputCoercer CoerceScalarInputFunc
}

var _ TypeDefinition = (*ScalarConfig)(nil)

// EnumValueDefinitionMap maps enum value name to its value definition.
type EnumValueDefinitionMap map[string]EnumValueDefinition

// An intentionally internal type for marking an enum value with nil internal value.
type enumNilValueType int

// NilEnumInternalValue has a special meaning when it is given to the Value field in
// EnumValueDefinition. By default, when nil is given in the Value field, the internal value of the
// created enum value is initialized to its name. When this special value is used, the internal
// value is set to nil.
const NilEnumInternalValue enumNilValueType = 0

// EnumValueDefinition provides the definition of one enum value.
type EnumValueDefinition struct {
	// Description of the enum value
	Description string

	// Value contains an internal value to represent the enum value. If omitted, the value will be
	// set to the name of the enum value.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumConfig provides the specification to define an Enum type.
type EnumConfig struct {
	ThisIsTypeDefinition

	// Name of the enum type
	Name string

	// Description of the enum type
	Description string

	// Values to be defined in the enum
	Values EnumValueDefinitionMap
}

var _ TypeDefinition = (*EnumConfig)(nil)

// ObjectConfig provides the specification to define an Object type.
type ObjectConfig struct {
	ThisIsTypeDefinition

	// Name of the Object type
	Name string

	// Description of the Object type
	Description string

	// Interfaces that are implemented by the defining Object; every entry must resolve to an
	// *Interface.
	Interfaces []TypeDefinition

	// Fields in the Object type
	Fields Fields
}

var _ TypeDefinition = (*ObjectConfig)(nil)

// InterfaceConfig provides the specification to define an Interface type.
type InterfaceConfig struct {
	ThisIsTypeDefinition

	// Name of the Interface type
	Name string

	// Description of the Interface type
	Description string

	// Fields that need to be provided when implementing this interface
	Fields Fields

	// TypeResolver determines the concrete Object type for the interface from a value.
	TypeResolver TypeResolver
}

var _ TypeDefinition = (*InterfaceConfig)(nil)

// UnionConfig provides the specification to define a Union type.
type UnionConfig struct {
	ThisIsTypeDefinition

	// Name of the Union type
	Name string

	// Description of the Union type
	Description string

	// PossibleTypes describes which Object types can be represented by the defining union; every
	// entry must resolve to an *Object.
	PossibleTypes []TypeDefinition

	// TypeResolver determines the concrete Object type for the union from a value.
	TypeResolver TypeResolver
}

var _ TypeDefinition = (*UnionConfig)(nil)

// InputObjectConfig provides the specification to define an InputObject type.
type InputObjectConfig struct {
	ThisIsTypeDefinition

	// Name of the Input Object type
	Name string

	// Description of the Input Object type
	Description string

	// Fields in the Input Object type
	Fields InputFields
}

var _ TypeDefinition = (*InputObjectConfig)(nil)

//===-----------------------------------------------------------------------------------------====//
// Wrapping type definitions
//===-----------------------------------------------------------------------------------------====//

// listTypeDefinition wraps the TypeDefinition of the element type.
type listTypeDefinition struct {
	ThisIsTypeDefinition
	elementTypeDef TypeDefinition
}

var _ TypeDefinition = listTypeDefinition{}

// ListOf returns a TypeDefinition for a List wrapping the given element type definition.
func ListOf(elementTypeDef TypeDefinition) TypeDefinition {
	return listTypeDefinition{elementTypeDef: elementTypeDef}
}

// ListOfType returns a TypeDefinition for a List wrapping the given materialized element type.
func ListOfType(elementType Type) TypeDefinition {
	return listTypeDefinition{elementTypeDef: T(elementType)}
}

// nonNullTypeDefinition wraps the TypeDefinition of the inner type.
type nonNullTypeDefinition struct {
	ThisIsTypeDefinition
	innerTypeDef TypeDefinition
}

var _ TypeDefinition = nonNullTypeDefinition{}

// NonNullOf returns a TypeDefinition for a NonNull wrapping the given inner type definition.
func NonNullOf(innerTypeDef TypeDefinition) TypeDefinition {
	return nonNullTypeDefinition{innerTypeDef: innerTypeDef}
}

// NonNullOfType returns a TypeDefinition for a NonNull wrapping the given materialized inner type.
func NonNullOfType(innerType Type) TypeDefinition {
	return nonNullTypeDefinition{innerTypeDef: T(innerType)}
}
