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
	"reflect"

	"dario.cat/mergo"

	"github.com/NikolasMelui/graphql-compose/graphql"
)

// EnumComposer is the mutable builder for an Enum type: a named set of values, each carrying an
// optional internal value, description and deprecation.
type EnumComposer struct {
	registry    *Registry
	name        string
	description string
	values      *orderedMap[EnumValueConfig]
	ver         uint64

	// Lazily derived internal-value→name lookup, rebuilt after mutation.
	valueIndex    map[interface{}]string
	valueIndexVer uint64
}

var _ Composer = (*EnumComposer)(nil)

// NewEnum creates an empty enum composer and registers it under name. The name must be free.
func (r *Registry) NewEnum(name string) (*EnumComposer, error) {
	ec := &EnumComposer{
		registry: r,
		name:     name,
		values:   newOrderedMap[EnumValueConfig](),
	}
	if err := r.register(ec); err != nil {
		return nil, err
	}
	return ec, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func (r *Registry) MustNewEnum(name string) *EnumComposer {
	ec, err := r.NewEnum(name)
	if err != nil {
		panic(err)
	}
	return ec
}

func (ec *EnumComposer) bump() {
	ec.ver++
}

// version implements Composer.
func (ec *EnumComposer) version() uint64 {
	return ec.ver
}

// TypeName implements Composer.
func (ec *EnumComposer) TypeName() string {
	return ec.name
}

// SetTypeName renames the composed type, moving its registry slot to the new name.
func (ec *EnumComposer) SetTypeName(newName string) error {
	if newName == ec.name {
		return nil
	}
	if err := ec.registry.rename(ec.name, newName, ec); err != nil {
		return err
	}
	ec.name = newName
	ec.bump()
	return nil
}

// Description implements Composer.
func (ec *EnumComposer) Description() string {
	return ec.description
}

// SetDescription updates the type description.
func (ec *EnumComposer) SetDescription(description string) *EnumComposer {
	ec.description = description
	ec.bump()
	return ec
}

//===----------------------------------------------------------------------------------------====//
// Value mutators
//===----------------------------------------------------------------------------------------====//

// SetValues replaces the whole value set. Stale deprecation markers on the given configs are
// stripped; values are ordered by name.
func (ec *EnumComposer) SetValues(values EnumValueConfigMap) *EnumComposer {
	normalized := make(map[string]EnumValueConfig, len(values))
	for name, config := range values {
		normalized[name] = normalizeEnumValueConfig(config, false)
	}
	ec.values.replaceAll(normalized)
	ec.bump()
	return ec
}

// AddValues merges values into the existing set, right-biased: colliding names take the new
// config but keep their slot, new names append in sorted order.
func (ec *EnumComposer) AddValues(values EnumValueConfigMap) *EnumComposer {
	normalized := make(map[string]EnumValueConfig, len(values))
	for name, config := range values {
		normalized[name] = normalizeEnumValueConfig(config, true)
	}
	ec.values.merge(normalized)
	ec.bump()
	return ec
}

// SetValue inserts or replaces a single value.
func (ec *EnumComposer) SetValue(name string, config EnumValueConfig) *EnumComposer {
	ec.values.set(name, normalizeEnumValueConfig(config, true))
	ec.bump()
	return ec
}

// RemoveValue deletes the named values; absent names are ignored.
func (ec *EnumComposer) RemoveValue(names ...string) *EnumComposer {
	for _, name := range names {
		ec.values.delete(name)
	}
	ec.bump()
	return ec
}

// RemoveOtherValues deletes every value except the named ones.
func (ec *EnumComposer) RemoveOtherValues(keep ...string) *EnumComposer {
	kept := make(map[string]bool, len(keep))
	for _, name := range keep {
		kept[name] = true
	}
	for _, name := range ec.values.keys() {
		if !kept[name] {
			ec.values.delete(name)
		}
	}
	ec.bump()
	return ec
}

// ReorderValues moves the named values to the front of the iteration order; the rest keep their
// prior relative order.
func (ec *EnumComposer) ReorderValues(names ...string) *EnumComposer {
	ec.values.reorder(names)
	ec.bump()
	return ec
}

// ExtendValue overlays a partial config onto an existing value: only the non-zero fields of
// partial take effect.
func (ec *EnumComposer) ExtendValue(name string, partial EnumValueConfig) error {
	existing, ok := ec.values.get(name)
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Value %q does not exist in enum type %q.", name, ec.name),
			graphql.ErrKindNotFound)
	}
	merged := partial
	if err := mergo.Merge(&merged, existing); err != nil {
		return graphql.WrapErrorf(err, "Failed to extend value %q in enum type %q", name, ec.name)
	}
	ec.values.set(name, normalizeEnumValueConfig(merged, true))
	ec.bump()
	return nil
}

// DeprecateValues tags the named values as deprecated with the generic reason. All names are
// validated up front; when any is unknown, nothing is applied.
func (ec *EnumComposer) DeprecateValues(names ...string) error {
	reasons := make(map[string]string, len(names))
	for _, name := range names {
		reasons[name] = "deprecated"
	}
	return ec.DeprecateValuesWithReasons(reasons)
}

// DeprecateValuesWithReasons tags each named value as deprecated with its own reason,
// validating all names up front.
func (ec *EnumComposer) DeprecateValuesWithReasons(reasons map[string]string) error {
	names := sortedConfigNames(reasons)
	for _, name := range names {
		if !ec.values.has(name) {
			return graphql.NewError(
				fmt.Sprintf("Cannot deprecate value %q: it does not exist in enum type %q.",
					name, ec.name),
				graphql.ErrKindNotFound)
		}
	}
	for _, name := range names {
		config, _ := ec.values.get(name)
		config.DeprecationReason = reasons[name]
		ec.values.set(name, normalizeEnumValueConfig(config, true))
	}
	ec.bump()
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Accessors
//===----------------------------------------------------------------------------------------====//

// HasValue returns true when the enum defines the named value.
func (ec *EnumComposer) HasValue(name string) bool {
	return ec.values.has(name)
}

// GetValue returns the config of the named value.
func (ec *EnumComposer) GetValue(name string) (EnumValueConfig, error) {
	config, ok := ec.values.get(name)
	if !ok {
		return EnumValueConfig{}, graphql.NewError(
			fmt.Sprintf("Value %q does not exist in enum type %q.", name, ec.name),
			graphql.ErrKindNotFound)
	}
	return config, nil
}

// GetValues returns a copy of the whole value config map. Iteration order is not carried by the
// map; use GetValueNames for it.
func (ec *EnumComposer) GetValues() EnumValueConfigMap {
	values := make(EnumValueConfigMap, ec.values.len())
	for _, name := range ec.values.keys() {
		config, _ := ec.values.get(name)
		values[name] = config
	}
	return values
}

// GetValueNames returns the value names in iteration order.
func (ec *EnumComposer) GetValueNames() []string {
	return ec.values.keys()
}

// ValueName looks up a value name by its internal value through a lazily rebuilt reverse index.
// Values whose internal value is not comparable are not indexed.
func (ec *EnumComposer) ValueName(internal interface{}) (string, bool) {
	if ec.valueIndex == nil || ec.valueIndexVer != ec.ver {
		index := make(map[interface{}]string, ec.values.len())
		for _, name := range ec.values.keys() {
			config, _ := ec.values.get(name)
			value := config.Value
			if value == nil {
				value = name
			}
			if reflect.TypeOf(value) != nil && reflect.TypeOf(value).Comparable() {
				if _, taken := index[value]; !taken {
					index[value] = name
				}
			}
		}
		ec.valueIndex = index
		ec.valueIndexVer = ec.ver
	}
	name, ok := ec.valueIndex[internal]
	return name, ok
}

//===----------------------------------------------------------------------------------------====//
// Cloning and materialization
//===----------------------------------------------------------------------------------------====//

// Clone registers an independent copy of the composer under newName. Later mutations on either
// side do not affect the other.
func (ec *EnumComposer) Clone(newName string) (*EnumComposer, error) {
	cloned, err := ec.registry.NewEnum(newName)
	if err != nil {
		return nil, err
	}
	cloned.description = ec.description
	cloned.values = ec.values.clone(copyEnumValueConfig)
	return cloned, nil
}

// typeDefinition implements Composer.
func (ec *EnumComposer) typeDefinition() (graphql.TypeDefinition, error) {
	values := make(graphql.EnumValueDefinitionMap, ec.values.len())
	for _, name := range ec.values.keys() {
		config, _ := ec.values.get(name)
		values[name] = graphql.EnumValueDefinition{
			Description: config.Description,
			Value:       config.Value,
			Deprecation: deprecationOf(config.DeprecationReason, config.Deprecated),
		}
	}
	return &graphql.EnumConfig{
		Name:        ec.name,
		Description: ec.description,
		Values:      values,
	}, nil
}

// Type implements Composer. The result is cached until the next mutation.
func (ec *EnumComposer) Type() (graphql.Type, error) {
	return ec.registry.materializeComposer(ec)
}

// MustType is a convenience function equivalent to Type but panics on failure.
func (ec *EnumComposer) MustType() graphql.Type {
	t, err := ec.Type()
	if err != nil {
		panic(err)
	}
	return t
}

// ListType materializes the composed type wrapped in a List.
func (ec *EnumComposer) ListType() (graphql.Type, error) {
	t, err := ec.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewListOfType(t)
}

// NonNullType materializes the composed type wrapped in a NonNull.
func (ec *EnumComposer) NonNullType() (graphql.Type, error) {
	t, err := ec.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewNonNullOfType(t)
}
