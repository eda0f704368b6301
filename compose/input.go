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

// InputComposer is the mutable builder for an InputObject type: an ordered map of input fields
// with optional default values.
type InputComposer struct {
	registry    *Registry
	name        string
	description string
	fields      *orderedMap[InputFieldConfig]
	ver         uint64
}

var _ Composer = (*InputComposer)(nil)

// NewInput creates an empty input object composer and registers it under name. The name must be
// free.
func (r *Registry) NewInput(name string) (*InputComposer, error) {
	ic := &InputComposer{
		registry: r,
		name:     name,
		fields:   newOrderedMap[InputFieldConfig](),
	}
	if err := r.register(ic); err != nil {
		return nil, err
	}
	return ic, nil
}

// MustNewInput is a convenience function equivalent to NewInput but panics on failure instead of
// returning an error.
func (r *Registry) MustNewInput(name string) *InputComposer {
	ic, err := r.NewInput(name)
	if err != nil {
		panic(err)
	}
	return ic
}

func (ic *InputComposer) bump() {
	ic.ver++
}

// version implements Composer.
func (ic *InputComposer) version() uint64 {
	return ic.ver
}

// TypeName implements Composer.
func (ic *InputComposer) TypeName() string {
	return ic.name
}

// SetTypeName renames the composed type, moving its registry slot to the new name.
func (ic *InputComposer) SetTypeName(newName string) error {
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
func (ic *InputComposer) Description() string {
	return ic.description
}

// SetDescription updates the type description.
func (ic *InputComposer) SetDescription(description string) *InputComposer {
	ic.description = description
	ic.bump()
	return ic
}

//===----------------------------------------------------------------------------------------====//
// Field mutators and accessors
//===----------------------------------------------------------------------------------------====//

// SetFields replaces the whole field map; see ObjectComposer.SetFields.
func (ic *InputComposer) SetFields(fields InputFieldConfigMap) *InputComposer {
	normalized := make(map[string]InputFieldConfig, len(fields))
	for name, config := range fields {
		normalized[name] = normalizeInputFieldConfig(config, false)
	}
	ic.fields.replaceAll(normalized)
	ic.bump()
	return ic
}

// AddFields merges fields into the existing map; see ObjectComposer.AddFields.
func (ic *InputComposer) AddFields(fields InputFieldConfigMap) *InputComposer {
	normalized := make(map[string]InputFieldConfig, len(fields))
	for name, config := range fields {
		normalized[name] = normalizeInputFieldConfig(config, true)
	}
	ic.fields.merge(normalized)
	ic.bump()
	return ic
}

// SetField inserts or replaces a single field.
func (ic *InputComposer) SetField(name string, config InputFieldConfig) *InputComposer {
	ic.fields.set(name, normalizeInputFieldConfig(config, true))
	ic.bump()
	return ic
}

// RemoveField deletes the named fields; absent names are ignored.
func (ic *InputComposer) RemoveField(names ...string) *InputComposer {
	for _, name := range names {
		ic.fields.delete(name)
	}
	ic.bump()
	return ic
}

// RemoveOtherFields deletes every field except the named ones.
func (ic *InputComposer) RemoveOtherFields(keep ...string) *InputComposer {
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
func (ic *InputComposer) ReorderFields(names ...string) *InputComposer {
	ic.fields.reorder(names)
	ic.bump()
	return ic
}

// ExtendField overlays a partial config onto an existing field; only the non-zero fields of
// partial take effect.
func (ic *InputComposer) ExtendField(name string, partial InputFieldConfig) error {
	existing, ok := ic.fields.get(name)
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Input field %q does not exist in type %q.", name, ic.name),
			graphql.ErrKindNotFound)
	}
	merged := partial
	if err := mergo.Merge(&merged, existing); err != nil {
		return graphql.WrapErrorf(err, "Failed to extend input field %q in type %q", name, ic.name)
	}
	ic.fields.set(name, normalizeInputFieldConfig(merged, true))
	ic.bump()
	return nil
}

// DeprecateFields tags the named fields as deprecated with the generic reason, validating all
// names up front.
func (ic *InputComposer) DeprecateFields(names ...string) error {
	reasons := make(map[string]string, len(names))
	for _, name := range names {
		reasons[name] = "deprecated"
	}
	return ic.DeprecateFieldsWithReasons(reasons)
}

// DeprecateFieldsWithReasons tags each named field as deprecated with its own reason, validating
// all names up front.
func (ic *InputComposer) DeprecateFieldsWithReasons(reasons map[string]string) error {
	names := sortedConfigNames(reasons)
	for _, name := range names {
		if !ic.fields.has(name) {
			return graphql.NewError(
				fmt.Sprintf("Cannot deprecate input field %q: it does not exist in type %q.",
					name, ic.name),
				graphql.ErrKindNotFound)
		}
	}
	for _, name := range names {
		config, _ := ic.fields.get(name)
		config.DeprecationReason = reasons[name]
		ic.fields.set(name, normalizeInputFieldConfig(config, true))
	}
	ic.bump()
	return nil
}

// HasField returns true when the input object defines the named field.
func (ic *InputComposer) HasField(name string) bool {
	return ic.fields.has(name)
}

// GetField returns the config of the named field.
func (ic *InputComposer) GetField(name string) (InputFieldConfig, error) {
	config, ok := ic.fields.get(name)
	if !ok {
		return InputFieldConfig{}, graphql.NewError(
			fmt.Sprintf("Input field %q does not exist in type %q.", name, ic.name),
			graphql.ErrKindNotFound)
	}
	return config, nil
}

// GetFields returns a copy of the whole field config map. Iteration order is not carried by the
// map; use GetFieldNames for it.
func (ic *InputComposer) GetFields() InputFieldConfigMap {
	fields := make(InputFieldConfigMap, ic.fields.len())
	for _, name := range ic.fields.keys() {
		config, _ := ic.fields.get(name)
		fields[name] = copyInputFieldConfig(config)
	}
	return fields
}

// GetFieldNames returns the field names in iteration order.
func (ic *InputComposer) GetFieldNames() []string {
	return ic.fields.keys()
}

//===----------------------------------------------------------------------------------------====//
// Cloning and materialization
//===----------------------------------------------------------------------------------------====//

// Clone registers an independent copy of the composer under newName.
func (ic *InputComposer) Clone(newName string) (*InputComposer, error) {
	cloned, err := ic.registry.NewInput(newName)
	if err != nil {
		return nil, err
	}
	cloned.description = ic.description
	cloned.fields = ic.fields.clone(copyInputFieldConfig)
	return cloned, nil
}

// typeDefinition implements Composer.
func (ic *InputComposer) typeDefinition() (graphql.TypeDefinition, error) {
	return &graphql.InputObjectConfig{
		Name:        ic.name,
		Description: ic.description,
		Fields:      ic.registry.lowerInputFields(ic.fields, ic.name),
	}, nil
}

// Type implements Composer. The result is cached until the next mutation.
func (ic *InputComposer) Type() (graphql.Type, error) {
	return ic.registry.materializeComposer(ic)
}

// MustType is a convenience function equivalent to Type but panics on failure.
func (ic *InputComposer) MustType() graphql.Type {
	t, err := ic.Type()
	if err != nil {
		panic(err)
	}
	return t
}

// ListType materializes the composed type wrapped in a List.
func (ic *InputComposer) ListType() (graphql.Type, error) {
	t, err := ic.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewListOfType(t)
}

// NonNullType materializes the composed type wrapped in a NonNull.
func (ic *InputComposer) NonNullType() (graphql.Type, error) {
	t, err := ic.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewNonNullOfType(t)
}
