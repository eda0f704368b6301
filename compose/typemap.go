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

package compose

import (
	"fmt"
	"strings"

	"github.com/NikolasMelui/graphql-compose/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

//===----------------------------------------------------------------------------------------====//
// Wrapped type-name resolution
//===----------------------------------------------------------------------------------------====//

// GetWrapped resolves a type-name string that may carry SDL list and non-null wrappers, e.g.
// "Color", "Color!", "[Color]", "[Color!]!". The bare name resolves against the built-in scalars
// and the registry; the wrappers materialize as List and NonNull types around it.
func (r *Registry) GetWrapped(ref string) (graphql.Type, error) {
	return r.resolveWrapped(ref, ref)
}

// resolveWrapped peels one wrapper per recursion step; full is the original reference carried for
// diagnostics.
func (r *Registry) resolveWrapped(s string, full string) (graphql.Type, error) {
	const op = graphql.Op("compose.Registry.GetWrapped")
	malformed := func(args ...interface{}) (graphql.Type, error) {
		args = append(args, op, graphql.ErrKindParse)
		return nil, graphql.NewError(fmt.Sprintf("Malformed type reference %q.", full), args...)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return malformed()
	}

	if strings.HasSuffix(s, "!") {
		innerType, err := r.resolveWrapped(s[:len(s)-1], full)
		if err != nil {
			return nil, err
		}
		t, err := graphql.NewNonNullOfType(innerType)
		if err != nil {
			return malformed(err)
		}
		return t, nil
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return malformed()
		}
		elementType, err := r.resolveWrapped(s[1:len(s)-1], full)
		if err != nil {
			return nil, err
		}
		t, err := graphql.NewListOfType(elementType)
		if err != nil {
			return malformed(err)
		}
		return t, nil
	}
	if strings.HasSuffix(s, "]") {
		return malformed()
	}

	if err := graphql.ValidateName(s); err != nil {
		return malformed(err)
	}
	return r.Resolve(s)
}

//===----------------------------------------------------------------------------------------====//
// SDL type fragments
//===----------------------------------------------------------------------------------------====//

// CreateType parses an SDL fragment containing exactly one type declaration and registers a
// composer of the matching kind under the declared name. Descriptions, field arguments, default
// values and @deprecated directives from the fragment are captured into the composer, which stays
// fully mutable afterwards.
func (r *Registry) CreateType(sdl string) (Composer, error) {
	const op = graphql.Op("compose.Registry.CreateType")

	doc, gqlErr := parser.ParseSchema(&ast.Source{Name: "type fragment", Input: sdl})
	if gqlErr != nil {
		return nil, graphql.NewError("Failed to parse type declaration.", op, graphql.ErrKindParse, gqlErr)
	}
	if len(doc.Definitions) != 1 ||
		len(doc.Extensions) > 0 ||
		len(doc.Schema) > 0 ||
		len(doc.SchemaExtension) > 0 ||
		len(doc.Directives) > 0 {
		return nil, graphql.NewError(
			"Type declaration must contain exactly one type definition.", op, graphql.ErrKindParse)
	}

	def := doc.Definitions[0]
	switch def.Kind {
	case ast.Scalar:
		return r.createScalarFromAST(def)
	case ast.Enum:
		return r.createEnumFromAST(def)
	case ast.Object:
		return r.createObjectFromAST(def)
	case ast.Interface:
		return r.createInterfaceFromAST(def)
	case ast.Union:
		return r.createUnionFromAST(def)
	case ast.InputObject:
		return r.createInputFromAST(def)
	}
	return nil, graphql.NewError(
		fmt.Sprintf("Unsupported type declaration kind %q.", def.Kind), op, graphql.ErrKindParse)
}

func (r *Registry) createScalarFromAST(def *ast.Definition) (Composer, error) {
	sc, err := r.NewScalar(def.Name)
	if err != nil {
		return nil, err
	}
	sc.SetDescription(def.Description)
	return sc, nil
}

func (r *Registry) createEnumFromAST(def *ast.Definition) (Composer, error) {
	ec, err := r.NewEnum(def.Name)
	if err != nil {
		return nil, err
	}
	ec.SetDescription(def.Description)
	for _, value := range def.EnumValues {
		config := EnumValueConfig{Description: value.Description}
		if reason, ok := deprecationFromDirectives(value.Directives); ok {
			config.DeprecationReason = reason
			config.Deprecated = true
		}
		ec.SetValue(value.Name, config)
	}
	return ec, nil
}

func (r *Registry) createObjectFromAST(def *ast.Definition) (Composer, error) {
	oc, err := r.NewObject(def.Name)
	if err != nil {
		return nil, err
	}
	oc.SetDescription(def.Description)
	for _, iface := range def.Interfaces {
		oc.AddInterface(iface)
	}
	for _, fieldDef := range def.Fields {
		config, err := outputFieldFromAST(fieldDef)
		if err != nil {
			return nil, err
		}
		oc.SetField(fieldDef.Name, config)
	}
	return oc, nil
}

func (r *Registry) createInterfaceFromAST(def *ast.Definition) (Composer, error) {
	ic, err := r.NewInterface(def.Name)
	if err != nil {
		return nil, err
	}
	ic.SetDescription(def.Description)
	for _, fieldDef := range def.Fields {
		config, err := outputFieldFromAST(fieldDef)
		if err != nil {
			return nil, err
		}
		ic.SetField(fieldDef.Name, config)
	}
	return ic, nil
}

func (r *Registry) createUnionFromAST(def *ast.Definition) (Composer, error) {
	uc, err := r.NewUnion(def.Name)
	if err != nil {
		return nil, err
	}
	uc.SetDescription(def.Description)
	for _, member := range def.Types {
		uc.AddType(member)
	}
	return uc, nil
}

func (r *Registry) createInputFromAST(def *ast.Definition) (Composer, error) {
	ic, err := r.NewInput(def.Name)
	if err != nil {
		return nil, err
	}
	ic.SetDescription(def.Description)
	for _, fieldDef := range def.Fields {
		defaultValue, err := defaultValueFromAST(fieldDef.DefaultValue)
		if err != nil {
			return nil, err
		}
		config := InputFieldConfig{
			Type:         typeRefString(fieldDef.Type),
			Description:  fieldDef.Description,
			DefaultValue: defaultValue,
		}
		if reason, ok := deprecationFromDirectives(fieldDef.Directives); ok {
			config.DeprecationReason = reason
			config.Deprecated = true
		}
		ic.SetField(fieldDef.Name, config)
	}
	return ic, nil
}

func outputFieldFromAST(fieldDef *ast.FieldDefinition) (FieldConfig, error) {
	var args ArgumentConfigMap
	if len(fieldDef.Arguments) > 0 {
		args = make(ArgumentConfigMap, len(fieldDef.Arguments))
		for _, argDef := range fieldDef.Arguments {
			defaultValue, err := defaultValueFromAST(argDef.DefaultValue)
			if err != nil {
				return FieldConfig{}, err
			}
			args[argDef.Name] = ArgumentConfig{
				Type:         typeRefString(argDef.Type),
				Description:  argDef.Description,
				DefaultValue: defaultValue,
			}
		}
	}

	config := FieldConfig{
		Type:        typeRefString(fieldDef.Type),
		Description: fieldDef.Description,
		Args:        args,
	}
	if reason, ok := deprecationFromDirectives(fieldDef.Directives); ok {
		config.DeprecationReason = reason
		config.Deprecated = true
	}
	return config, nil
}

// typeRefString renders an AST type reference back into its wrapped-string form, which the
// composer resolves lazily against the registry.
func typeRefString(t *ast.Type) string {
	var s string
	if t.Elem != nil {
		s = "[" + typeRefString(t.Elem) + "]"
	} else {
		s = t.NamedType
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

// deprecationFromDirectives extracts the @deprecated directive. A directive without a reason
// argument carries the SDL default reason.
func deprecationFromDirectives(directives ast.DirectiveList) (string, bool) {
	d := directives.ForName("deprecated")
	if d == nil {
		return "", false
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return arg.Value.Raw, true
	}
	return "No longer supported", true
}

// defaultValueFromAST lowers an AST default value literal. An explicit "null" literal maps to
// NullDefaultValue so it stays distinguishable from an absent default.
func defaultValueFromAST(v *ast.Value) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if v.Kind == ast.NullValue {
		return NullDefaultValue, nil
	}
	value, err := v.Value(nil)
	if err != nil {
		return nil, graphql.NewError(
			fmt.Sprintf("Invalid default value %s.", v.String()),
			graphql.ErrKindParse, err)
	}
	return value, nil
}
