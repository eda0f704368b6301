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
	"context"
	"fmt"
	"sort"
)

// FieldResolver resolves a field value from the value produced by the field's enclosing object.
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}) (interface{}, error)

// Resolve calls f(ctx, source).
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}) (interface{}, error) {
	return f(ctx, source)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

// Fields maps field name to its definition. In general, this should be named "FieldConfigMap",
// but the type is used frequently so it is kept short.
type Fields map[string]FieldConfig

// FieldConfig provides the definition of a field when defining an object or an interface.
type FieldConfig struct {
	// Description of the defining field
	Description string

	// TypeDefinition of the defining field; resolved during materialization.
	Type TypeDefinition

	// Argument configuration of the field
	Args ArgumentConfigMap

	// Resolver for resolving the field value
	Resolver FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// FieldMap maps field name to the Field.
type FieldMap map[string]Field

// BuildFieldMap builds a FieldMap from the given Fields, resolving every field type through
// typeDefResolver. The given typeName is carried for diagnostic context only.
func BuildFieldMap(fieldConfigMap Fields, typeDefResolver typeDefinitionResolver, typeName string) (FieldMap, error) {
	numFields := len(fieldConfigMap)
	if numFields == 0 {
		return nil, nil
	}

	fieldMap := make(FieldMap, numFields)
	for _, name := range sortedFieldNames(fieldConfigMap) {
		fieldConfig := fieldConfigMap[name]

		if err := ValidateName(name); err != nil {
			return nil, err
		}

		// Resolve the field type.
		fieldType, err := typeDefResolver(fieldConfig.Type)
		if err != nil {
			return nil, NewError(
				fmt.Sprintf("failed to resolve type of field %q in type %q", name, typeName), err)
		}
		if fieldType == nil {
			return nil, NewError(
				fmt.Sprintf("Must provide type for field %q in type %q.", name, typeName),
				ErrKindMaterialization)
		}

		// Build field arguments.
		args, err := buildArguments(fieldConfig.Args, typeDefResolver, name, typeName)
		if err != nil {
			return nil, err
		}

		fieldMap[name] = &field{
			config: fieldConfig,
			name:   name,
			ttype:  fieldType,
			args:   args,
		}
	}

	return fieldMap, nil
}

func sortedFieldNames(fieldConfigMap Fields) []string {
	names := make([]string, 0, len(fieldConfigMap))
	for name := range fieldConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field represents a field in an object or an interface. It yields a value of a specific type.
type Field interface {
	// Name of the field
	Name() string

	// Description of the field
	Description() string

	// Type of value yielded by the field
	Type() Type

	// Args specifies the definitions of arguments being taken when querying this field.
	Args() []Argument

	// Resolver determines the result value for the field from the value resolved by the parent
	// Object.
	Resolver() FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation() *Deprecation
}

// field is our built-in implementation for Field.
type field struct {
	config FieldConfig
	name   string
	ttype  Type
	args   []Argument
}

var _ Field = (*field)(nil)

// Name implements Field.
func (f *field) Name() string {
	return f.name
}

// Description implements Field.
func (f *field) Description() string {
	return f.config.Description
}

// Type implements Field.
func (f *field) Type() Type {
	return f.ttype
}

// Args implements Field.
func (f *field) Args() []Argument {
	return f.args
}

// Resolver implements Field.
func (f *field) Resolver() FieldResolver {
	return f.config.Resolver
}

// Deprecation implements Field.
func (f *field) Deprecation() *Deprecation {
	return f.config.Deprecation
}

// ArgumentConfigMap maps argument name to its definition.
type ArgumentConfigMap map[string]ArgumentConfig

// An intentionally internal type for marking a "null" as default value for an argument
type argumentNilValueType int

// NilArgumentDefaultValue has a special meaning when it is given to the DefaultValue in an
// ArgumentConfig: it sets the argument default value to "null". Setting DefaultValue to nil (or
// not giving it a value) means there is no default value. We need this trick because nil alone
// cannot tell an "undefined" from a "null" default value. The constant has an internal type,
// therefore there is no way to create one outside the package.
const NilArgumentDefaultValue argumentNilValueType = 0

// ArgumentConfig provides the definition for an argument in a field.
type ArgumentConfig struct {
	// Description of the argument
	Description string

	// Type of the value that can be given to the argument
	Type TypeDefinition

	// DefaultValue specifies the value to be assigned to the argument when no value is provided.
	DefaultValue interface{}
}

// buildArguments builds a list of Argument from an ArgumentConfigMap. Arguments are ordered by
// name for deterministic iteration.
func buildArguments(
	argConfigMap ArgumentConfigMap,
	typeDefResolver typeDefinitionResolver,
	fieldName string,
	typeName string) ([]Argument, error) {
	numArgs := len(argConfigMap)
	if numArgs == 0 {
		return nil, nil
	}

	names := make([]string, 0, numArgs)
	for name := range argConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]Argument, numArgs)
	for i, name := range names {
		argConfig := argConfigMap[name]

		if err := ValidateName(name); err != nil {
			return nil, err
		}

		argType, err := typeDefResolver(argConfig.Type)
		if err != nil {
			return nil, NewError(
				fmt.Sprintf("failed to resolve type of argument %q of field %q in type %q",
					name, fieldName, typeName), err)
		}
		if argType == nil {
			return nil, NewError(
				fmt.Sprintf("Must provide type for argument %q of field %q in type %q.",
					name, fieldName, typeName),
				ErrKindMaterialization)
		}

		args[i] = Argument{
			name:         name,
			description:  argConfig.Description,
			ttype:        argType,
			defaultValue: argConfig.DefaultValue,
		}
	}

	return args, nil
}

// Argument is accepted in querying a field to further specify the return value.
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue specifies the value to be assigned to the argument when no value is provided.
func (arg *Argument) DefaultValue() interface{} {
	// Deal with NilArgumentDefaultValue specially.
	if _, ok := arg.defaultValue.(argumentNilValueType); ok {
		// We have a default value which is "null".
		return nil
	}
	return arg.defaultValue
}

// IsRequiredArgument returns true if a value must be provided to the argument.
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}

//===-----------------------------------------------------------------------------------------====//
// Input fields
//===-----------------------------------------------------------------------------------------====//

// InputFields maps input field name to its definition.
type InputFields map[string]InputFieldConfig

// InputFieldConfig provides the definition of a field when defining an InputObject. It is much
// simpler than FieldConfig because it cannot resolve a value nor have arguments.
type InputFieldConfig struct {
	// Description of the defining field
	Description string

	// TypeDefinition of the defining field; resolved during materialization.
	Type TypeDefinition

	// DefaultValue specifies the value to be assigned to the field when no input is provided. Use
	// NilArgumentDefaultValue for an explicit "null" default.
	DefaultValue interface{}

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// InputFieldMap maps input field name to the InputField.
type InputFieldMap map[string]*InputField

// InputField defines a field in an InputObject.
type InputField struct {
	config InputFieldConfig
	name   string
	ttype  Type
}

// buildInputFieldMap builds an InputFieldMap from the given InputFields.
func buildInputFieldMap(
	fieldConfigMap InputFields,
	typeDefResolver typeDefinitionResolver,
	typeName string) (InputFieldMap, error) {
	numFields := len(fieldConfigMap)
	if numFields == 0 {
		return nil, nil
	}

	names := make([]string, 0, numFields)
	for name := range fieldConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)

	fieldMap := make(InputFieldMap, numFields)
	for _, name := range names {
		fieldConfig := fieldConfigMap[name]

		if err := ValidateName(name); err != nil {
			return nil, err
		}

		fieldType, err := typeDefResolver(fieldConfig.Type)
		if err != nil {
			return nil, NewError(
				fmt.Sprintf("failed to resolve type of input field %q in type %q", name, typeName), err)
		}
		if fieldType == nil {
			return nil, NewError(
				fmt.Sprintf("Must provide type for input field %q in type %q.", name, typeName),
				ErrKindMaterialization)
		}

		fieldMap[name] = &InputField{
			config: fieldConfig,
			name:   name,
			ttype:  fieldType,
		}
	}

	return fieldMap, nil
}

// Name of the field
func (f *InputField) Name() string {
	return f.name
}

// Description of the field
func (f *InputField) Description() string {
	return f.config.Description
}

// Type of value accepted by the field
func (f *InputField) Type() Type {
	return f.ttype
}

// HasDefaultValue returns true if the input field has a default value.
func (f *InputField) HasDefaultValue() bool {
	return f.config.DefaultValue != nil
}

// DefaultValue specifies the value to be assigned to the field when no input is provided.
func (f *InputField) DefaultValue() interface{} {
	if _, ok := f.config.DefaultValue.(argumentNilValueType); ok {
		return nil
	}
	return f.config.DefaultValue
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *InputField) Deprecation() *Deprecation {
	return f.config.Deprecation
}
