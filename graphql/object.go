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

// Object Type Definition
//
// Almost all of the GraphQL types you define will be object types. Object types have a name, but
// most importantly describe their fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	fields      FieldMap
	interfaces  []*Interface
}

var (
	_ Type                = (*Object)(nil)
	_ TypeWithName        = (*Object)(nil)
	_ TypeWithDescription = (*Object)(nil)
)

// objectTypeCreator is given to newTypeImpl for creating an Object.
type objectTypeCreator struct {
	typeDef *ObjectConfig
}

var _ typeCreator = (*objectTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *objectTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *objectTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.typeDef

	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.", ErrKindInvalidArgument)
	}
	if err := ValidateName(config.Name); err != nil {
		return nil, err
	}

	// Fields and interfaces are resolved in Finalize.
	return &Object{
		name:        config.Name,
		description: config.Description,
	}, nil
}

// Finalize implements typeCreator.
func (creator *objectTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	object := t.(*Object)
	config := creator.typeDef

	// Resolve the implemented interfaces.
	if numInterfaces := len(config.Interfaces); numInterfaces > 0 {
		interfaces := make([]*Interface, numInterfaces)
		for i, ifaceDef := range config.Interfaces {
			ifaceType, err := typeDefResolver(ifaceDef)
			if err != nil {
				return err
			}
			iface, ok := ifaceType.(*Interface)
			if !ok {
				return NewError(
					fmt.Sprintf("%s in interfaces of Object %q is not an Interface type.",
						Inspect(ifaceType), object.name),
					ErrKindMaterialization)
			}
			interfaces[i] = iface
		}
		object.interfaces = interfaces
	}

	// Build the field map.
	fields, err := BuildFieldMap(config.Fields, typeDefResolver, object.name)
	if err != nil {
		return err
	}
	object.fields = fields
	return nil
}

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config *ObjectConfig) (*Object, error) {
	t, err := newTypeImpl(&objectTypeCreator{typeDef: config})
	if err != nil {
		return nil, err
	}
	return t.(*Object), nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config *ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// String implements Type.
func (o *Object) String() string {
	return o.Name()
}

// Fields returns the fields in the object.
func (o *Object) Fields() FieldMap {
	return o.fields
}

// Field finds the field with the given name or returns nil if there is no such one.
func (o *Object) Field(name string) Field {
	return o.fields[name]
}

// Interfaces returns the interfaces implemented by the Object type.
func (o *Object) Interfaces() []*Interface {
	return o.interfaces
}
