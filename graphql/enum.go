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
	"reflect"
	"sort"
)

// EnumValue provides the definition of one value in an enum.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	// Name of the enum value
	name string

	// Definition of the value
	def EnumValueDefinition
}

// Name of the enum value.
func (value *EnumValue) Name() string {
	return value.name
}

// Description of the enum value
func (value *EnumValue) Description() string {
	return value.def.Description
}

// Value returns the internal value to be used when the enum value is read from input.
func (value *EnumValue) Value() interface{} {
	return value.def.Value
}

// IsDeprecated returns true if this value is deprecated.
func (value *EnumValue) IsDeprecated() bool {
	return value.def.Deprecation.Defined()
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (value *EnumValue) Deprecation() *Deprecation {
	return value.def.Deprecation
}

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Note: If a value is not provided in a definition, the name of the enum value will be used as its
// internal value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum struct {
	name        string
	description string

	// values defined in the enum type, ordered by name
	values []*EnumValue

	// nameMap maps enum value name to its EnumValue.
	nameMap map[string]*EnumValue
}

var (
	_ Type                = (*Enum)(nil)
	_ LeafType            = (*Enum)(nil)
	_ TypeWithName        = (*Enum)(nil)
	_ TypeWithDescription = (*Enum)(nil)
)

// enumTypeCreator is given to newTypeImpl for creating an Enum.
type enumTypeCreator struct {
	typeDef *EnumConfig
}

var _ typeCreator = (*enumTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *enumTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *enumTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.typeDef

	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.", ErrKindInvalidArgument)
	}
	if err := ValidateName(config.Name); err != nil {
		return nil, err
	}

	// Values and nameMap are created in Finalize.
	return &Enum{
		name:        config.Name,
		description: config.Description,
	}, nil
}

// Finalize implements typeCreator.
func (creator *enumTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	enum := t.(*Enum)
	valueDefMap := creator.typeDef.Values

	names := make([]string, 0, len(valueDefMap))
	for name := range valueDefMap {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]*EnumValue, 0, len(valueDefMap))
	nameMap := make(map[string]*EnumValue, len(valueDefMap))
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}

		value := &EnumValue{
			name: name,
			def:  valueDefMap[name],
		}
		if value.def.Value == nil {
			// Use the name as the internal value of the enum value.
			value.def.Value = name
		} else if _, ok := value.def.Value.(enumNilValueType); ok {
			// When NilEnumInternalValue is specified, initialize the internal value to nil.
			value.def.Value = nil
		}
		values = append(values, value)
		nameMap[name] = value
	}

	enum.values = values
	enum.nameMap = nameMap
	return nil
}

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (*Enum, error) {
	t, err := newTypeImpl(&enumTypeCreator{typeDef: config})
	if err != nil {
		return nil, err
	}
	return t.(*Enum), nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config *EnumConfig) *Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// Name implements TypeWithName.
func (e *Enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *Enum) Description() string {
	return e.description
}

// String implements Type.
func (e *Enum) String() string {
	return e.Name()
}

// Values returns all enum values defined in this Enum type, ordered by name.
func (e *Enum) Values() []*EnumValue {
	return e.values
}

// Value finds the enum value with the given name or returns nil if there is no such one.
func (e *Enum) Value(name string) *EnumValue {
	return e.nameMap[name]
}

// CoerceResultValue implements LeafType. It expects a string-like value and returns the name of
// the enum value whose name or internal value matches it.
func (e *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	if name, ok := value.(string); ok {
		if enumValue := e.Value(name); enumValue != nil {
			return enumValue.Name(), nil
		}
	}

	// Fall back to matching the internal value. Comparing interfaces holding the same
	// non-comparable dynamic type panics, so such values can never match and are not tried.
	if t := reflect.TypeOf(value); t == nil || t.Comparable() {
		for _, enumValue := range e.values {
			if enumValue.Value() == value {
				return enumValue.Name(), nil
			}
		}
	}

	return nil, NewError(
		fmt.Sprintf("Enum %q cannot represent value: %s", e.Name(), Inspect(value)),
		ErrKindCoercion)
}

// CoerceInputValue coerces a value that names an enum value and returns the internal value that
// represents the enum.
func (e *Enum) CoerceInputValue(value interface{}) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		return nil, NewError(
			fmt.Sprintf("Enum %q cannot represent non-string value: %s", e.Name(), Inspect(value)),
			ErrKindCoercion)
	}

	if enumValue := e.Value(name); enumValue != nil {
		return enumValue.Value(), nil
	}

	return nil, NewError(
		fmt.Sprintf("Value %q does not exist in %q enum.", name, e.Name()),
		ErrKindCoercion)
}
