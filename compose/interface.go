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

	"dario.cat/mergo"

	"github.com/NikolasMelui/graphql-compose/graphql"
)

// InterfaceComposer is the mutable builder for an Interface type: an ordered field map plus an
// optional resolver that picks the concrete object type for a value.
type InterfaceComposer struct {
	registry     *Registry
	name         string
	description  string
	fields       *orderedMap[FieldConfig]
	typeResolver graphql.TypeResolver
	ver          uint64
}

var _ Composer = (*InterfaceComposer)(nil)

// NewInterface creates an empty interface composer and registers it under name. The name must be
// free.
func (r *Registry) NewInterface(name string) (*InterfaceComposer, error) {
	ic := &InterfaceComposer{
		registry: r,
		name:     name,
		fields:   newOrderedMap[FieldConfig](),
	}
	if err := r.register(ic); err != nil {
		return nil, err
	}
	return ic, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func (r *Registry) MustNewInterface(name string) *InterfaceComposer {
	ic, err := r.NewInterface(name)
	if err != nil {
		panic(err)
	}
	return ic
}

func (ic *InterfaceComposer) bump() {
	ic.ver++
}

// version implements Composer.
func (ic *InterfaceComposer) version() uint64 {
	return ic.ver
}

// TypeName implements Composer.
func (ic *InterfaceComposer) TypeName() string {
	return ic.name
}

// SetTypeName renames the composed type, moving its registry slot to the new name.
func (ic *InterfaceComposer) SetTypeName(newName string) error {
	if newName == ic.name {
		return nil
	}
	if err := ic.registry.rename(ic.name, newName, ic); err != nil {
		return err
	}
	ic.name = newName
	ic.bump()
	return nil
}

// Description implements Composer.
func (ic *InterfaceComposer) Description() string {
	return ic.description
}

// SetDescription updates the type description.
func (ic *InterfaceComposer) SetDescription(description string) *InterfaceComposer {
	ic.description = description
	ic.bump()
	return ic
}

// SetTypeResolver attaches the resolver that determines the concrete object type for a value.
func (ic *InterfaceComposer) SetTypeResolver(resolver graphql.TypeResolver) *InterfaceComposer {
	ic.typeResolver = resolver
	ic.bump()
	return ic
}

// TypeResolver returns the attached type resolver, if any.
func (ic *InterfaceComposer) TypeResolver() graphql.TypeResolver {
	return ic.typeResolver
}

//===----------------------------------------------------------------------------------------====//
// Field mutators and accessors
//===----------------------------------------------------------------------------------------====//

// SetFields replaces the whole field map; see ObjectComposer.SetFields.
func (ic *InterfaceComposer) SetFields(fields FieldConfigMap) *InterfaceComposer {
	normalized := make(map[string]FieldConfig, len(fields))
	for name, config := range fields {
		normalized[name] = normalizeFieldConfig(config, false)
	}
	ic.fields.replaceAll(normalized)
	ic.bump()
	return ic
}

// AddFields merges fields into the existing map; see ObjectComposer.AddFields.
func (ic *InterfaceComposer) AddFields(fields FieldConfigMap) *InterfaceComposer {
	normalized := make(map[string]FieldConfig, len(fields))
	for name, config := range fields {
		normalized[name] = normalizeFieldConfig(config, true)
	}
	ic.fields.merge(normalized)
	ic.bump()
	return ic
}

// SetField inserts or replaces a single field.
func (ic *InterfaceComposer) SetField(name string, config FieldConfig) *InterfaceComposer {
	ic.fields.set(name, normalizeFieldConfig(config, true))
	ic.bump()
	return ic
}

// RemoveField deletes the named fields; absent names are ignored.
func (ic *InterfaceComposer) RemoveField(names ...string) *InterfaceComposer {
	for _, name := range names {
		ic.fields.delete(name)
	}
	ic.bump()
	return ic
}

// RemoveOtherFields deletes every field except the named ones.
func (ic *InterfaceComposer) RemoveOtherFields(keep ...string) *InterfaceComposer {
	kept := make(map[string]bool, len(keep))
	for _, name := range keep {
		kept[name] = true
	}
	for _, name := range ic.fields.keys() {
		if !kept[name] {
			ic.fields.delete(name)
		}
	}
	ic.bump()
	return ic
}

// ReorderFields moves the named fields to the front of the iteration order.
func (ic *InterfaceComposer) ReorderFields(names ...string) *InterfaceComposer {
	ic.fields.reorder(names)
	ic.bump()
	return ic
}

// ExtendField overlays a partial config onto an existing field; see ObjectComposer.ExtendField.
func (ic *InterfaceComposer) ExtendField(name string, partial FieldConfig) error {
	existing, ok := ic.fields.get(name)
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Field %q does not exist in type %q.", name, ic.name),
			graphql.ErrKindNotFound)
	}
	merged := copyFieldConfig(partial)
	if err := mergo.Merge(&merged, copyFieldConfig(existing)); err != nil {
		return graphql.WrapErrorf(err, "Failed to extend field %q in type %q", name, ic.name)
	}
	ic.fields.set(name, normalizeFieldConfig(merged, true))
	ic.bump()
	return nil
}

// DeprecateFields tags the named fields as deprecated with the generic reason, validating all
// names up front.
func (ic *InterfaceComposer) DeprecateFields(names ...string) error {
	reasons := make(map[string]string, len(names))
	for _, name := range names {
		reasons[name] = "deprecated"
	}
	return ic.DeprecateFieldsWithReasons(reasons)
}

// DeprecateFieldsWithReasons tags each named field as deprecated with its own reason, validating
// all names up front.
func (ic *InterfaceComposer) DeprecateFieldsWithReasons(reasons map[string]string) error {
	names := sortedConfigNames(reasons)
	for _, name := range names {
		if !ic.fields.has(name) {
			return graphql.NewError(
				fmt.Sprintf("Cannot deprecate field %q: it does not exist in type %q.", name, ic.name),
				graphql.ErrKindNotFound)
		}
	}
	for _, name := range names {
		config, _ := ic.fields.get(name)
		config.DeprecationReason = reasons[name]
		ic.fields.set(name, normalizeFieldConfig(config, true))
	}
	ic.bump()
	return nil
}

// HasField returns true when the interface defines the named field.
func (ic *InterfaceComposer) HasField(name string) bool {
	return ic.fields.has(name)
}

// GetField returns the config of the named field.
func (ic *InterfaceComposer) GetField(name string) (FieldConfig, error) {
	config, ok := ic.fields.get(name)
	if !ok {
		return FieldConfig{}, graphql.NewError(
			fmt.Sprintf("Field %q does not exist in type %q.", name, ic.name),
			graphql.ErrKindNotFound)
	}
	return copyFieldConfig(config), nil
}

// GetFields returns a copy of the whole field config map. Iteration order is not carried by the
// map; use GetFieldNames for it.
func (ic *InterfaceComposer) GetFields() FieldConfigMap {
	fields := make(FieldConfigMap, ic.fields.len())
	for _, name := range ic.fields.keys() {
		config, _ := ic.fields.get(name)
		fields[name] = copyFieldConfig(config)
	}
	return fields
}

// GetFieldNames returns the field names in iteration order.
func (ic *InterfaceComposer) GetFieldNames() []string {
	return ic.fields.keys()
}

//===----------------------------------------------------------------------------------------====//
// Cloning and materialization
//===----------------------------------------------------------------------------------------====//

// Clone registers an independent copy of the composer under newName.
func (ic *InterfaceComposer) Clone(newName string) (*InterfaceComposer, error) {
	cloned, err := ic.registry.NewInterface(newName)
	if err != nil {
		return nil, err
	}
	cloned.description = ic.description
	cloned.fields = ic.fields.clone(copyFieldConfig)
	cloned.typeResolver = ic.typeResolver
	return cloned, nil
}

// typeDefinition implements Composer.
func (ic *InterfaceComposer) typeDefinition() (graphql.TypeDefinition, error) {
	return &graphql.InterfaceConfig{
		Name:         ic.name,
		Description:  ic.description,
		Fields:       ic.registry.lowerOutputFields(ic.fields, ic.name),
		TypeResolver: ic.typeResolver,
	}, nil
}

// Type implements Composer. The result is cached until the next mutation.
func (ic *InterfaceComposer) Type() (graphql.Type, error) {
	return ic.registry.materializeComposer(ic)
}

// MustType is a convenience function equivalent to Type but panics on failure.
func (ic *InterfaceComposer) MustType() graphql.Type {
	t, err := ic.Type()
	if err != nil {
		panic(err)
	}
	return t
}

// ListType materializes the composed type wrapped in a List.
func (ic *InterfaceComposer) ListType() (graphql.Type, error) {
	t, err := ic.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewListOfType(t)
}

// NonNullType materializes the composed type wrapped in a NonNull.
func (ic *InterfaceComposer) NonNullType() (graphql.Type, error) {
	t, err := ic.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewNonNullOfType(t)
}
