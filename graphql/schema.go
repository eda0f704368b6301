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

// SchemaConfig provides the specification to define a Schema.
type SchemaConfig struct {
	// Query is the root query object; it is required.
	Query *Object

	// Mutation is the optional root mutation object.
	Mutation *Object

	// Subscription is the optional root subscription object.
	Subscription *Object

	// Types lists additional named types to include in the schema that are not reachable from the
	// roots (e.g., members of an interface that no field references directly).
	Types []Type
}

// TypeMap maps type name to the named Type within a Schema.
type TypeMap map[string]Type

// Schema is the container handed to an execution engine: the root objects plus every named type
// reachable from them. All member types are materialized and immutable; nothing in a Schema holds
// an unresolved reference.
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object
	typeMap      TypeMap
}

// NewSchema creates a Schema from the given config, collecting every named type reachable from
// the roots.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	if config == nil || config.Query == nil {
		return nil, NewError("Must provide a Query object to create a Schema.", ErrKindInvalidArgument)
	}

	schema := &Schema{
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
		typeMap:      TypeMap{},
	}

	// Append only non-nil pointers: a nil *Object stored directly into a Type interface value
	// would compare non-nil and defeat the nil guard below.
	roots := []Type{config.Query}
	if config.Mutation != nil {
		roots = append(roots, config.Mutation)
	}
	if config.Subscription != nil {
		roots = append(roots, config.Subscription)
	}
	for _, t := range config.Types {
		roots = append(roots, t)
	}
	for _, root := range roots {
		if root == nil {
			continue
		}
		if err := schema.collectType(root); err != nil {
			return nil, err
		}
	}

	return schema, nil
}

// MustNewSchema is a convenience function equivalent to NewSchema but panics on failure instead of
// returning an error.
func MustNewSchema(config *SchemaConfig) *Schema {
	s, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return s
}

// collectType records a named type in the type map and descends into every type it references.
// Already-recorded types stop the recursion, which keeps cyclic type graphs terminating.
func (schema *Schema) collectType(t Type) error {
	// Unwrap List and NonNull modifiers.
	t = NamedTypeOf(t)
	if t == nil {
		return nil
	}

	named, ok := t.(TypeWithName)
	if !ok {
		return NewError(
			fmt.Sprintf("Expected a named type in schema but got %s.", Inspect(t)),
			ErrKindInvalidArgument)
	}
	name := named.Name()

	if existing, exists := schema.typeMap[name]; exists {
		if existing != t {
			return NewError(
				fmt.Sprintf("Schema must contain uniquely named types but contains multiple types "+
					"named %q.", name),
				ErrKindNameConflict)
		}
		return nil
	}
	schema.typeMap[name] = t

	switch t := t.(type) {
	case *Object:
		for _, iface := range t.Interfaces() {
			if err := schema.collectType(iface); err != nil {
				return err
			}
		}
		if err := schema.collectFieldTypes(t.Fields()); err != nil {
			return err
		}

	case *Interface:
		if err := schema.collectFieldTypes(t.Fields()); err != nil {
			return err
		}

	case *Union:
		for _, member := range t.PossibleTypes() {
			if err := schema.collectType(member); err != nil {
				return err
			}
		}

	case *InputObject:
		for _, field := range t.Fields() {
			if err := schema.collectType(field.Type()); err != nil {
				return err
			}
		}
	}

	return nil
}

func (schema *Schema) collectFieldTypes(fields FieldMap) error {
	for _, field := range fields {
		if err := schema.collectType(field.Type()); err != nil {
			return err
		}
		for i := range field.Args() {
			if err := schema.collectType(field.Args()[i].Type()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Query returns the root query object.
func (schema *Schema) Query() *Object {
	return schema.query
}

// Mutation returns the root mutation object or nil.
func (schema *Schema) Mutation() *Object {
	return schema.mutation
}

// Subscription returns the root subscription object or nil.
func (schema *Schema) Subscription() *Object {
	return schema.subscription
}

// TypeMap returns every named type in the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Type looks up a named type in the schema.
func (schema *Schema) Type(name string) Type {
	return schema.typeMap[name]
}
