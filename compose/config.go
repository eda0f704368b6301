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
	"github.com/NikolasMelui/graphql-compose/graphql"
)

// NullDefaultValue marks an argument or input field whose default value is an explicit "null", as
// opposed to having no default at all.
const NullDefaultValue = graphql.NilArgumentDefaultValue

// FieldConfig describes one output field of an object or interface composer. Unlike its
// materialized counterpart, the field type is a TypeRef that stays unresolved until
// materialization.
type FieldConfig struct {
	// Type references the field's output type in any TypeRef form.
	Type TypeRef

	// Description of the field
	Description string

	// Args configures the arguments accepted by the field.
	Args ArgumentConfigMap

	// Resolver produces the field value during execution.
	Resolver graphql.FieldResolver

	// DeprecationReason tags the field as deprecated when non-empty.
	DeprecationReason string

	// Deprecated is the derived deprecation marker. It is recomputed from DeprecationReason when
	// the config is written into a composer; full replacement strips stale markers.
	Deprecated bool
}

// FieldConfigMap maps field name to its config.
type FieldConfigMap map[string]FieldConfig

// ArgumentConfig describes one argument of a composed field.
type ArgumentConfig struct {
	// Type references the argument type in any TypeRef form.
	Type TypeRef

	// Description of the argument
	Description string

	// DefaultValue assigned when the argument is omitted. Use NullDefaultValue for an explicit
	// "null" default.
	DefaultValue interface{}
}

// ArgumentConfigMap maps argument name to its config.
type ArgumentConfigMap map[string]ArgumentConfig

// InputFieldConfig describes one field of an input object composer.
type InputFieldConfig struct {
	// Type references the field's input type in any TypeRef form.
	Type TypeRef

	// Description of the field
	Description string

	// DefaultValue assigned when no input is provided. Use NullDefaultValue for an explicit "null"
	// default.
	DefaultValue interface{}

	// DeprecationReason tags the field as deprecated when non-empty.
	DeprecationReason string

	// Deprecated is the derived deprecation marker; see FieldConfig.Deprecated.
	Deprecated bool
}

// InputFieldConfigMap maps input field name to its config.
type InputFieldConfigMap map[string]InputFieldConfig

// EnumValueConfig describes one value of an enum composer.
type EnumValueConfig struct {
	// Value is the internal value representing the enum value; defaults to the value's name.
	Value interface{}

	// Description of the enum value
	Description string

	// DeprecationReason tags the value as deprecated when non-empty.
	DeprecationReason string

	// Deprecated is the derived deprecation marker; see FieldConfig.Deprecated.
	Deprecated bool
}

// EnumValueConfigMap maps enum value name to its config.
type EnumValueConfigMap map[string]EnumValueConfig

//===----------------------------------------------------------------------------------------====//
// Config normalization and copying
//===----------------------------------------------------------------------------------------====//

// deprecationOf translates a config's deprecation fields into the materialized form. A set marker
// without a reason gets the generic reason.
func deprecationOf(reason string, deprecated bool) *graphql.Deprecation {
	if reason != "" {
		return &graphql.Deprecation{Reason: reason}
	}
	if deprecated {
		return &graphql.Deprecation{Reason: "deprecated"}
	}
	return nil
}

// normalizeFieldConfig recomputes the derived marker. With keepMarker the caller's marker survives
// (incremental writes); without it stale markers from copied configs are stripped (full replace).
func normalizeFieldConfig(config FieldConfig, keepMarker bool) FieldConfig {
	config.Deprecated = config.DeprecationReason != "" || (keepMarker && config.Deprecated)
	config.Args = copyArgumentConfigMap(config.Args)
	return config
}

func normalizeInputFieldConfig(config InputFieldConfig, keepMarker bool) InputFieldConfig {
	config.Deprecated = config.DeprecationReason != "" || (keepMarker && config.Deprecated)
	return config
}

func normalizeEnumValueConfig(config EnumValueConfig, keepMarker bool) EnumValueConfig {
	config.Deprecated = config.DeprecationReason != "" || (keepMarker && config.Deprecated)
	return config
}

// copyArgumentConfigMap deep-copies an argument map so configs held by different composers never
// share mutable state.
func copyArgumentConfigMap(args ArgumentConfigMap) ArgumentConfigMap {
	if args == nil {
		return nil
	}
	out := make(ArgumentConfigMap, len(args))
	for name, arg := range args {
		out[name] = arg
	}
	return out
}

func copyFieldConfig(config FieldConfig) FieldConfig {
	config.Args = copyArgumentConfigMap(config.Args)
	return config
}

func copyInputFieldConfig(config InputFieldConfig) InputFieldConfig {
	return config
}

func copyEnumValueConfig(config EnumValueConfig) EnumValueConfig {
	return config
}
