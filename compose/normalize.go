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
	"sort"

	"github.com/NikolasMelui/graphql-compose/graphql"
)

//===----------------------------------------------------------------------------------------====//
// TypeRef resolution
//===----------------------------------------------------------------------------------------====//

// ResolveType resolves any supported TypeRef form into a materialized type: a (possibly wrapped)
// type-name string, a Composer, a graphql.Type, a graphql.TypeDefinition, or a Thunk producing any
// of these.
func (r *Registry) ResolveType(ref TypeRef) (graphql.Type, error) {
	const op = graphql.Op("compose.Registry.ResolveType")

	switch ref := ref.(type) {
	case nil:
		return nil, graphql.NewError("Missing type reference.", op, graphql.ErrKindInvalidArgument)

	case string:
		return r.GetWrapped(ref)

	case Composer:
		return r.materializeComposer(ref)

	case graphql.Type:
		return ref, nil

	case graphql.TypeDefinition:
		return graphql.NewType(ref)

	case *Thunk:
		value, err := ref.Value()
		if err != nil {
			return nil, graphql.NewError(
				"Failed to evaluate type thunk.", op, graphql.ErrKindMaterialization, err)
		}
		if _, nested := value.(*Thunk); nested {
			return nil, graphql.NewError(
				"Type thunk must not yield another thunk.", op, graphql.ErrKindInvalidArgument)
		}
		return r.ResolveType(value)
	}

	return nil, graphql.NewError(
		fmt.Sprintf("Unsupported type reference %s.", graphql.Inspect(ref)),
		op, graphql.ErrKindInvalidArgument)
}

// deferredRef wraps a TypeRef in a TypeDefinition whose resolution is postponed until
// materialization reaches it; where carries diagnostic context (e.g. `field "id" in type "User"`).
func (r *Registry) deferredRef(ref TypeRef, where string) graphql.TypeDefinition {
	return graphql.Deferred(func() (graphql.Type, error) {
		t, err := r.ResolveType(ref)
		if err != nil {
			return nil, graphql.WrapErrorf(err, "Failed to resolve type for %s", where)
		}
		return t, nil
	})
}

//===----------------------------------------------------------------------------------------====//
// Field and argument config normalization
//===----------------------------------------------------------------------------------------====//
//
// The normalizer lowers the permissive composer-level configs (TypeRefs, deprecation reasons)
// into the strict materialized-level configs (TypeDefinitions, Deprecation values). The Convert
// functions resolve types eagerly and are the public entry point; the composers lower through
// deferred references instead, so cyclic graphs materialize.

// ConvertOutputFieldConfig lowers a single output field config, resolving its type and argument
// types eagerly. fieldName and typeName provide diagnostic context.
func (r *Registry) ConvertOutputFieldConfig(
	config FieldConfig, fieldName string, typeName string) (graphql.FieldConfig, error) {
	t, err := r.ResolveType(config.Type)
	if err != nil {
		return graphql.FieldConfig{}, graphql.WrapErrorf(err,
			"Failed to resolve type of field %q in type %q", fieldName, typeName)
	}

	args, err := r.ConvertArgumentConfigMap(config.Args, fieldName, typeName)
	if err != nil {
		return graphql.FieldConfig{}, err
	}

	return graphql.FieldConfig{
		Description: config.Description,
		Type:        graphql.T(t),
		Args:        args,
		Resolver:    config.Resolver,
		Deprecation: deprecationOf(config.DeprecationReason, config.Deprecated),
	}, nil
}

// ConvertOutputFieldConfigMap lowers every entry of an output field config map. Go maps carry no
// order, so entries are processed in sorted name order.
func (r *Registry) ConvertOutputFieldConfigMap(
	configMap FieldConfigMap, typeName string) (graphql.Fields, error) {
	if len(configMap) == 0 {
		return nil, nil
	}
	fields := make(graphql.Fields, len(configMap))
	for _, name := range sortedConfigNames(configMap) {
		field, err := r.ConvertOutputFieldConfig(configMap[name], name, typeName)
		if err != nil {
			return nil, err
		}
		fields[name] = field
	}
	return fields, nil
}

// ConvertArgumentConfig lowers a single argument config with eager type resolution.
func (r *Registry) ConvertArgumentConfig(
	config ArgumentConfig, argName string, fieldName string, typeName string) (graphql.ArgumentConfig, error) {
	t, err := r.ResolveType(config.Type)
	if err != nil {
		return graphql.ArgumentConfig{}, graphql.WrapErrorf(err,
			"Failed to resolve type of argument %q of field %q in type %q", argName, fieldName, typeName)
	}
	return graphql.ArgumentConfig{
		Description:  config.Description,
		Type:         graphql.T(t),
		DefaultValue: config.DefaultValue,
	}, nil
}

// ConvertArgumentConfigMap lowers every entry of an argument config map in sorted name order.
func (r *Registry) ConvertArgumentConfigMap(
	configMap ArgumentConfigMap, fieldName string, typeName string) (graphql.ArgumentConfigMap, error) {
	if len(configMap) == 0 {
		return nil, nil
	}
	args := make(graphql.ArgumentConfigMap, len(configMap))
	for _, name := range sortedConfigNames(configMap) {
		arg, err := r.ConvertArgumentConfig(configMap[name], name, fieldName, typeName)
		if err != nil {
			return nil, err
		}
		args[name] = arg
	}
	return args, nil
}

// ConvertInputFieldConfig lowers a single input field config with eager type resolution.
func (r *Registry) ConvertInputFieldConfig(
	config InputFieldConfig, fieldName string, typeName string) (graphql.InputFieldConfig, error) {
	t, err := r.ResolveType(config.Type)
	if err != nil {
		return graphql.InputFieldConfig{}, graphql.WrapErrorf(err,
			"Failed to resolve type of input field %q in type %q", fieldName, typeName)
	}
	return graphql.InputFieldConfig{
		Description:  config.Description,
		Type:         graphql.T(t),
		DefaultValue: config.DefaultValue,
		Deprecation:  deprecationOf(config.DeprecationReason, config.Deprecated),
	}, nil
}

// ConvertInputFieldConfigMap lowers every entry of an input field config map in sorted name order.
func (r *Registry) ConvertInputFieldConfigMap(
	configMap InputFieldConfigMap, typeName string) (graphql.InputFields, error) {
	if len(configMap) == 0 {
		return nil, nil
	}
	fields := make(graphql.InputFields, len(configMap))
	for _, name := range sortedConfigNames(configMap) {
		field, err := r.ConvertInputFieldConfig(configMap[name], name, typeName)
		if err != nil {
			return nil, err
		}
		fields[name] = field
	}
	return fields, nil
}

func sortedConfigNames[V any](configMap map[string]V) []string {
	names := make([]string, 0, len(configMap))
	for name := range configMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//===----------------------------------------------------------------------------------------====//
// Deferred lowering (used by composer typeDefinition builders)
//===----------------------------------------------------------------------------------------====//

// lowerOutputFields builds the materialized-level field configs for a composer's fields with
// deferred type references, so mutually recursive composers can materialize.
func (r *Registry) lowerOutputFields(
	fields *orderedMap[FieldConfig], typeName string) graphql.Fields {
	if fields.len() == 0 {
		return nil
	}
	out := make(graphql.Fields, fields.len())
	for _, name := range fields.keys() {
		config, _ := fields.get(name)
		out[name] = graphql.FieldConfig{
			Description: config.Description,
			Type: r.deferredRef(config.Type,
				fmt.Sprintf("field %q in type %q", name, typeName)),
			Args:        r.lowerArguments(config.Args, name, typeName),
			Resolver:    config.Resolver,
			Deprecation: deprecationOf(config.DeprecationReason, config.Deprecated),
		}
	}
	return out
}

func (r *Registry) lowerArguments(
	args ArgumentConfigMap, fieldName string, typeName string) graphql.ArgumentConfigMap {
	if len(args) == 0 {
		return nil
	}
	out := make(graphql.ArgumentConfigMap, len(args))
	for name, config := range args {
		out[name] = graphql.ArgumentConfig{
			Description: config.Description,
			Type: r.deferredRef(config.Type,
				fmt.Sprintf("argument %q of field %q in type %q", name, fieldName, typeName)),
			DefaultValue: config.DefaultValue,
		}
	}
	return out
}

// lowerInputFields is the input-object counterpart of lowerOutputFields.
func (r *Registry) lowerInputFields(
	fields *orderedMap[InputFieldConfig], typeName string) graphql.InputFields {
	if fields.len() == 0 {
		return nil
	}
	out := make(graphql.InputFields, fields.len())
	for _, name := range fields.keys() {
		config, _ := fields.get(name)
		out[name] = graphql.InputFieldConfig{
			Description: config.Description,
			Type: r.deferredRef(config.Type,
				fmt.Sprintf("input field %q in type %q", name, typeName)),
			DefaultValue: config.DefaultValue,
			Deprecation:  deprecationOf(config.DeprecationReason, config.Deprecated),
		}
	}
	return out
}
