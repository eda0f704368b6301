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

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible and what fields are in common across all types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	name         string
	description  string
	fields       FieldMap
	typeResolver TypeResolver
}

var (
	_ Type                = (*Interface)(nil)
	_ AbstractType        = (*Interface)(nil)
	_ TypeWithName        = (*Interface)(nil)
	_ TypeWithDescription = (*Interface)(nil)
)

// interfaceTypeCreator is given to newTypeImpl for creating an Interface.
type interfaceTypeCreator struct {
	typeDef *InterfaceConfig
}

var _ typeCreator = (*interfaceTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *interfaceTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *interfaceTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.typeDef

	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.", ErrKindInvalidArgument)
	}
	if err := ValidateName(config.Name); err != nil {
		return nil, err
	}

	return &Interface{
		name:         config.Name,
		description:  config.Description,
		typeResolver: config.TypeResolver,
	}, nil
}

// Finalize implements typeCreator.
func (creator *interfaceTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	iface := t.(*Interface)

	fields, err := BuildFieldMap(creator.typeDef.Fields, typeDefResolver, iface.name)
	if err != nil {
		return err
	}
	iface.fields = fields
	return nil
}

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (*Interface, error) {
	t, err := newTypeImpl(&interfaceTypeCreator{typeDef: config})
	if err != nil {
		return nil, err
	}
	return t.(*Interface), nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config *InterfaceConfig) *Interface {
	i, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return i
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// Name implements TypeWithName.
func (i *Interface) Name() string {
	return i.name
}

// Description implements TypeWithDescription.
func (i *Interface) Description() string {
	return i.description
}

// String implements Type.
func (i *Interface) String() string {
	return i.Name()
}

// Fields returns the set of fields that need to be provided when implementing this interface.
func (i *Interface) Fields() FieldMap {
	return i.fields
}

// TypeResolver implements AbstractType.
func (i *Interface) TypeResolver() TypeResolver {
	return i.typeResolver
}
