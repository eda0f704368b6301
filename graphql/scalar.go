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

// CoerceScalarResultFunc serializes an internal value into the scalar's external form.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceScalarInputFunc parses an external input value into the scalar's internal form.
type CoerceScalarInputFunc func(value interface{}) (interface{}, error)

// scalarIdentityCoercion passes the value through unmodified. It backs scalars that do not provide
// their own coercion functions.
func scalarIdentityCoercion(value interface{}) (interface{}, error) {
	return value, nil
}

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name and a series of functions used to parse and serialize values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	name          string
	description   string
	resultCoercer CoerceScalarResultFunc
	inputCoercer  CoerceScalarInputFunc
}

var (
	_ Type                = (*Scalar)(nil)
	_ LeafType            = (*Scalar)(nil)
	_ TypeWithName        = (*Scalar)(nil)
	_ TypeWithDescription = (*Scalar)(nil)
)

// scalarTypeCreator is given to newTypeImpl for creating a Scalar.
type scalarTypeCreator struct {
	typeDef *ScalarConfig
}

var _ typeCreator = (*scalarTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *scalarTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *scalarTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.typeDef

	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.", ErrKindInvalidArgument)
	}
	if err := ValidateName(config.Name); err != nil {
		return nil, err
	}

	resultCoercer := config.ResultCoercer
	if resultCoercer == nil {
		resultCoercer = scalarIdentityCoercion
	}
	inputCoercer := config.InputCoercer
	if inputCoercer == nil {
		inputCoercer = scalarIdentityCoercion
	}

	return &Scalar{
		name:          config.Name,
		description:   config.Description,
		resultCoercer: resultCoercer,
		inputCoercer:  inputCoercer,
	}, nil
}

// Finalize implements typeCreator. A scalar references no other types.
func (creator *scalarTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	return nil
}

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	t, err := newTypeImpl(&scalarTypeCreator{typeDef: config})
	if err != nil {
		return nil, err
	}
	return t.(*Scalar), nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config *ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

// String implements Type.
func (s *Scalar) String() string {
	return s.Name()
}

// CoerceResultValue implements LeafType.
func (s *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.resultCoercer(value)
}

// CoerceInputValue parses an input value into the scalar's internal form.
func (s *Scalar) CoerceInputValue(value interface{}) (interface{}, error) {
	return s.inputCoercer(value)
}
