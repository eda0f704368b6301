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

	"github.com/NikolasMelui/graphql-compose/graphql"
)

// SchemaConfig names the root types of a schema built from a registry. Each reference may be any
// TypeRef form; the roots must resolve to Object types.
type SchemaConfig struct {
	// Query is the root query type; it is required.
	Query TypeRef

	// Mutation is the optional root mutation type.
	Mutation TypeRef

	// Subscription is the optional root subscription type.
	Subscription TypeRef

	// Types lists additional types to force into the schema even when not reachable from the
	// roots.
	Types []TypeRef
}

// BuildSchema materializes the roots (and everything reachable from them) and assembles an
// immutable Schema. Composers stay mutable afterwards; the schema holds the snapshots taken now.
func (r *Registry) BuildSchema(config *SchemaConfig) (*graphql.Schema, error) {
	const op = graphql.Op("compose.Registry.BuildSchema")

	if config == nil || config.Query == nil {
		return nil, graphql.NewError(
			"Must provide a Query type to build a Schema.", op, graphql.ErrKindInvalidArgument)
	}

	query, err := r.resolveRootObject(config.Query, "Query")
	if err != nil {
		return nil, err
	}

	var mutation, subscription *graphql.Object
	if config.Mutation != nil {
		if mutation, err = r.resolveRootObject(config.Mutation, "Mutation"); err != nil {
			return nil, err
		}
	}
	if config.Subscription != nil {
		if subscription, err = r.resolveRootObject(config.Subscription, "Subscription"); err != nil {
			return nil, err
		}
	}

	var types []graphql.Type
	for _, ref := range config.Types {
		t, err := r.ResolveType(ref)
		if err != nil {
			return nil, graphql.WrapError(err, "Failed to resolve additional schema type")
		}
		types = append(types, t)
	}

	return graphql.NewSchema(&graphql.SchemaConfig{
		Query:        query,
		Mutation:     mutation,
		Subscription: subscription,
		Types:        types,
	})
}

// MustBuildSchema is a convenience function equivalent to BuildSchema but panics on failure
// instead of returning an error.
func (r *Registry) MustBuildSchema(config *SchemaConfig) *graphql.Schema {
	schema, err := r.BuildSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

func (r *Registry) resolveRootObject(ref TypeRef, root string) (*graphql.Object, error) {
	t, err := r.ResolveType(ref)
	if err != nil {
		return nil, graphql.WrapErrorf(err, "Failed to resolve root %s type", root)
	}
	object, ok := t.(*graphql.Object)
	if !ok {
		return nil, graphql.NewError(
			fmt.Sprintf("Root %s type must be an Object type but got %s.", root, graphql.Inspect(t)),
			graphql.ErrKindInvalidArgument)
	}
	return object, nil
}
