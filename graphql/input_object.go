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

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument. It is essentially an Object type but with some constraints on the fields so it can be
// used as an input argument: fields in an Input Object type cannot define arguments or contain
// references to interfaces and unions.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	fields      InputFieldMap
}

var (
	_ Type                = (*InputObject)(nil)
	_ TypeWithName        = (*InputObject)(nil)
	_ TypeWithDescription = (*InputObject)(nil)
)

// inputObjectTypeCreator is given to newTypeImpl for creating an InputObject.
type inputObjectTypeCreator struct {
	typeDef *InputObjectConfig
}

var _ typeCreator = (*inputObjectTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *inputObjectTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *inputObjectTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.typeDef

	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.", ErrKindInvalidArgument)
	}
	if err := ValidateName(config.Name); err != nil {
		return nil, err
	}

	return &InputObject{
		name:        config.Name,
		description: config.Description,
	}, nil
}

// Finalize implements typeCreator.
func (creator *inputObjectTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	inputObject := t.(*InputObject)

	fields, err := buildInputFieldMap(creator.typeDef.Fields, typeDefResolver, inputObject.name)
	if err != nil {
		return err
	}
	inputObject.fields = fields
	return nil
}

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (*InputObject, error) {
	t, err := newTypeImpl(&inputObjectTypeCreator{typeDef: config})
	if err != nil {
		return nil, err
	}
	return t.(*InputObject), nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) *InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// Name implements TypeWithName.
func (o *InputObject) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *InputObject) Description() string {
	return o.description
}

// String implements Type.
func (o *InputObject) String() string {
	return o.Name()
}

// Fields returns the fields in the input object.
func (o *InputObject) Fields() InputFieldMap {
	return o.fields
}

// Field finds the input field with the given name or returns nil if there is no such one.
func (o *InputObject) Field(name string) *InputField {
	return o.fields[name]
}
