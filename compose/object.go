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

// ObjectComposer is the mutable builder for an Object type: an ordered field map, the interfaces
// the object implements, and per-field resolvers and arguments.
type ObjectComposer struct {
	registry    *Registry
	name        string
	description string
	fields      *orderedMap[FieldConfig]
	interfaces  []TypeRef
	ver         uint64
}

var _ Composer = (*ObjectComposer)(nil)

// NewObject creates an empty object composer and registers it under name. The name must be free.
func (r *Registry) NewObject(name string) (*ObjectComposer, error) {
	oc := &ObjectComposer{
		registry: r,
		name:     name,
		fields:   newOrderedMap[FieldConfig](),
	}
	if err := r.register(oc); err != nil {
		return nil, err
	}
	return oc, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead
// of returning an error.
func (r *Registry) MustNewObject(name string) *ObjectComposer {
	oc, err := r.NewObject(name)
	if err != nil {
		panic(err)
	}
	return oc
}

func (oc *ObjectComposer) bump() {
	oc.ver++
}

// version implements Composer.
func (oc *ObjectComposer) version() uint64 {
	return oc.ver
}

// TypeName implements Composer.
func (oc *ObjectComposer) TypeName() string {
	return oc.name
}

// SetTypeName renames the composed type, moving its registry slot to the new name.
func (oc *ObjectComposer) SetTypeName(newName string) error {
	if newName == oc.name {
		return nil
	}
	if err := oc.registry.rename(oc.name, newName, oc); err != nil {
		return err
	}
	oc.name = newName
	oc.bump()
	return nil
}

// Description implements Composer.
func (oc *ObjectComposer) Description() string {
	return oc.description
}

// SetDescription updates the type description.
func (oc *ObjectComposer) SetDescription(description string) *ObjectComposer {
	oc.description = description
	oc.bump()
	return oc
}

//===----------------------------------------------------------------------------------------====//
// Field mutators
//===----------------------------------------------------------------------------------------====//

// SetFields replaces the whole field map. Stale deprecation markers on the given configs are
// stripped; fields are ordered by name.
func (oc *ObjectComposer) SetFields(fields FieldConfigMap) *ObjectComposer {
	normalized := make(map[string]FieldConfig, len(fields))
	for name, config := range fields {
		normalized[name] = normalizeFieldConfig(config, false)
	}
	oc.fields.replaceAll(normalized)
	oc.bump()
	return oc
}

// AddFields merges fields into the existing map, right-biased: colliding names take the new
// config but keep their slot, new names append in sorted order.
func (oc *ObjectComposer) AddFields(fields FieldConfigMap) *ObjectComposer {
	normalized := make(map[string]FieldConfig, len(fields))
	for name, config := range fields {
		normalized[name] = normalizeFieldConfig(config, true)
	}
	oc.fields.merge(normalized)
	oc.bump()
	return oc
}

// SetField inserts or replaces a single field.
func (oc *ObjectComposer) SetField(name string, config FieldConfig) *ObjectComposer {
	oc.fields.set(name, normalizeFieldConfig(config, true))
	oc.bump()
	return oc
}

// RemoveField deletes the named fields; absent names are ignored.
func (oc *ObjectComposer) RemoveField(names ...string) *ObjectComposer {
	for _, name := range names {
		oc.fields.delete(name)
	}
	oc.bump()
	return oc
}

// RemoveOtherFields deletes every field except the named ones.
func (oc *ObjectComposer) RemoveOtherFields(keep ...string) *ObjectComposer {
	kept := make(map[string]bool, len(keep))
	for _, name := range keep {
		kept[name] = true
	}
	for _, name := range oc.fields.keys() {
		if !kept[name] {
			oc.fields.delete(name)
		}
	}
	oc.bump()
	return oc
}

// ReorderFields moves the named fields to the front of the iteration order; the rest keep their
// prior relative order.
func (oc *ObjectComposer) ReorderFields(names ...string) *ObjectComposer {
	oc.fields.reorder(names)
	oc.bump()
	return oc
}

// ExtendField overlays a partial config onto an existing field: only the non-zero fields of
// partial take effect, and nested argument maps deep-merge.
func (oc *ObjectComposer) ExtendField(name string, partial FieldConfig) error {
	existing, ok := oc.fields.get(name)
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Field %q does not exist in type %q.", name, oc.name),
			graphql.ErrKindNotFound)
	}
	merged := copyFieldConfig(partial)
	if err := mergo.Merge(&merged, copyFieldConfig(existing)); err != nil {
		return graphql.WrapErrorf(err, "Failed to extend field %q in type %q", name, oc.name)
	}
	oc.fields.set(name, normalizeFieldConfig(merged, true))
	oc.bump()
	return nil
}

// DeprecateFields tags the named fields as deprecated with the generic reason. All names are
// validated up front; when any is unknown, nothing is applied.
func (oc *ObjectComposer) DeprecateFields(names ...string) error {
	reasons := make(map[string]string, len(names))
	for _, name := range names {
		reasons[name] = "deprecated"
	}
	return oc.DeprecateFieldsWithReasons(reasons)
}

// DeprecateFieldsWithReasons tags each named field as deprecated with its own reason, validating
// all names up front.
func (oc *ObjectComposer) DeprecateFieldsWithReasons(reasons map[string]string) error {
	names := sortedConfigNames(reasons)
	for _, name := range names {
		if !oc.fields.has(name) {
			return graphql.NewError(
				fmt.Sprintf("Cannot deprecate field %q: it does not exist in type %q.", name, oc.name),
				graphql.ErrKindNotFound)
		}
	}
	for _, name := range names {
		config, _ := oc.fields.get(name)
		config.DeprecationReason = reasons[name]
		oc.fields.set(name, normalizeFieldConfig(config, true))
	}
	oc.bump()
	return nil
}

// SetResolver attaches a resolver to an existing field.
func (oc *ObjectComposer) SetResolver(fieldName string, resolver graphql.FieldResolver) error {
	config, ok := oc.fields.get(fieldName)
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Field %q does not exist in type %q.", fieldName, oc.name),
			graphql.ErrKindNotFound)
	}
	config.Resolver = resolver
	oc.fields.set(fieldName, config)
	oc.bump()
	return nil
}

// SetFieldArgs replaces the argument map of an existing field.
func (oc *ObjectComposer) SetFieldArgs(fieldName string, args ArgumentConfigMap) error {
	config, ok := oc.fields.get(fieldName)
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Field %q does not exist in type %q.", fieldName, oc.name),
			graphql.ErrKindNotFound)
	}
	config.Args = copyArgumentConfigMap(args)
	oc.fields.set(fieldName, config)
	oc.bump()
	return nil
}

// ExtendFieldArg overlays a partial config onto an existing argument of an existing field: only
// the non-zero fields of partial take effect.
func (oc *ObjectComposer) ExtendFieldArg(fieldName string, argName string, partial ArgumentConfig) error {
	config, ok := oc.fields.get(fieldName)
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Field %q does not exist in type %q.", fieldName, oc.name),
			graphql.ErrKindNotFound)
	}
	existing, ok := config.Args[argName]
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Argument %q does not exist on field %q in type %q.",
				argName, fieldName, oc.name),
			graphql.ErrKindNotFound)
	}
	merged := partial
	if err := mergo.Merge(&merged, existing); err != nil {
		return graphql.WrapErrorf(err, "Failed to extend argument %q of field %q in type %q",
			argName, fieldName, oc.name)
	}
	config.Args = copyArgumentConfigMap(config.Args)
	config.Args[argName] = merged
	oc.fields.set(fieldName, config)
	oc.bump()
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Field accessors
//===----------------------------------------------------------------------------------------====//

// HasField returns true when the object defines the named field.
func (oc *ObjectComposer) HasField(name string) bool {
	return oc.fields.has(name)
}

// GetField returns the config of the named field.
func (oc *ObjectComposer) GetField(name string) (FieldConfig, error) {
	config, ok := oc.fields.get(name)
	if !ok {
		return FieldConfig{}, graphql.NewError(
			fmt.Sprintf("Field %q does not exist in type %q.", name, oc.name),
			graphql.ErrKindNotFound)
	}
	return copyFieldConfig(config), nil
}

// GetFields returns a copy of the whole field config map. Iteration order is not carried by the
// map; use GetFieldNames for it.
func (oc *ObjectComposer) GetFields() FieldConfigMap {
	fields := make(FieldConfigMap, oc.fields.len())
	for _, name := range oc.fields.keys() {
		config, _ := oc.fields.get(name)
		fields[name] = copyFieldConfig(config)
	}
	return fields
}

// GetFieldNames returns the field names in iteration order.
func (oc *ObjectComposer) GetFieldNames() []string {
	return oc.fields.keys()
}

// GetFieldType resolves and materializes the type of the named field.
func (oc *ObjectComposer) GetFieldType(name string) (graphql.Type, error) {
	config, err := oc.GetField(name)
	if err != nil {
		return nil, err
	}
	return oc.registry.ResolveType(config.Type)
}

// GetFieldArgs returns a copy of the argument map of the named field.
func (oc *ObjectComposer) GetFieldArgs(name string) (ArgumentConfigMap, error) {
	config, ok := oc.fields.get(name)
	if !ok {
		return nil, graphql.NewError(
			fmt.Sprintf("Field %q does not exist in type %q.", name, oc.name),
			graphql.ErrKindNotFound)
	}
	return copyArgumentConfigMap(config.Args), nil
}

//===----------------------------------------------------------------------------------------====//
// Interfaces
//===----------------------------------------------------------------------------------------====//

// SetInterfaces replaces the set of interfaces the object implements.
func (oc *ObjectComposer) SetInterfaces(refs ...TypeRef) *ObjectComposer {
	oc.interfaces = append([]TypeRef(nil), refs...)
	oc.bump()
	return oc
}

// AddInterface appends one interface reference.
func (oc *ObjectComposer) AddInterface(ref TypeRef) *ObjectComposer {
	oc.interfaces = append(oc.interfaces, ref)
	oc.bump()
	return oc
}

// GetInterfaces returns a copy of the interface references.
func (oc *ObjectComposer) GetInterfaces() []TypeRef {
	return append([]TypeRef(nil), oc.interfaces...)
}

//===----------------------------------------------------------------------------------------====//
// Cloning and materialization
//===----------------------------------------------------------------------------------------====//

// Clone registers an independent copy of the composer under newName. Later mutations on either
// side do not affect the other.
func (oc *ObjectComposer) Clone(newName string) (*ObjectComposer, error) {
	cloned, err := oc.registry.NewObject(newName)
	if err != nil {
		return nil, err
	}
	cloned.description = oc.description
	cloned.fields = oc.fields.clone(copyFieldConfig)
	cloned.interfaces = append([]TypeRef(nil), oc.interfaces...)
	return cloned, nil
}

// typeDefinition implements Composer.
func (oc *ObjectComposer) typeDefinition() (graphql.TypeDefinition, error) {
	var interfaces []graphql.TypeDefinition
	for i, ref := range oc.interfaces {
		interfaces = append(interfaces, oc.registry.deferredRef(ref,
			fmt.Sprintf("interface #%d of type %q", i, oc.name)))
	}
	return &graphql.ObjectConfig{
		Name:        oc.name,
		Description: oc.description,
		Interfaces:  interfaces,
		Fields:      oc.registry.lowerOutputFields(oc.fields, oc.name),
	}, nil
}

// Type implements Composer. The result is cached until the next mutation.
func (oc *ObjectComposer) Type() (graphql.Type, error) {
	return oc.registry.materializeComposer(oc)
}

// MustType is a convenience function equivalent to Type but panics on failure.
func (oc *ObjectComposer) MustType() graphql.Type {
	t, err := oc.Type()
	if err != nil {
		panic(err)
	}
	return t
}

// ListType materializes the composed type wrapped in a List.
func (oc *ObjectComposer) ListType() (graphql.Type, error) {
	t, err := oc.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewListOfType(t)
}

// NonNullType materializes the composed type wrapped in a NonNull.
func (oc *ObjectComposer) NonNullType() (graphql.Type, error) {
	t, err := oc.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewNonNullOfType(t)
}
