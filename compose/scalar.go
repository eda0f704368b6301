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

// ScalarComposer is the mutable builder for a custom Scalar type: a name plus result and input
// coercion functions. Coercers left unset fall back to the identity coercion.
type ScalarComposer struct {
	registry      *Registry
	name          string
	description   string
	resultCoercer graphql.CoerceScalarResultFunc
	inputCoercer  graphql.CoerceScalarInputFunc
	ver           uint64
}

var _ Composer = (*ScalarComposer)(nil)

// NewScalar creates a scalar composer and registers it under name. The name must be free;
// built-in scalar names are reserved.
func (r *Registry) NewScalar(name string) (*ScalarComposer, error) {
	sc := &ScalarComposer{
		registry: r,
		name:     name,
	}
	if err := r.register(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead
// of returning an error.
func (r *Registry) MustNewScalar(name string) *ScalarComposer {
	sc, err := r.NewScalar(name)
	if err != nil {
		panic(err)
	}
	return sc
}

func (sc *ScalarComposer) bump() {
	sc.ver++
}

// version implements Composer.
func (sc *ScalarComposer) version() uint64 {
	return sc.ver
}

// TypeName implements Composer.
func (sc *ScalarComposer) TypeName() string {
	return sc.name
}

// SetTypeName renames the composed type, moving its registry slot to the new name.
func (sc *ScalarComposer) SetTypeName(newName string) error {
	if newName == sc.name {
		return nil
	}
	if err := sc.registry.rename(sc.name, newName, sc); err != nil {
		return err
	}
	sc.name = newName
	sc.bump()
	return nil
}

// Description implements Composer.
func (sc *ScalarComposer) Description() string {
	return sc.description
}

// SetDescription updates the type description.
func (sc *ScalarComposer) SetDescription(description string) *ScalarComposer {
	sc.description = description
	sc.bump()
	return sc
}

// SetSerialize sets the result coercion function.
func (sc *ScalarComposer) SetSerialize(coercer graphql.CoerceScalarResultFunc) *ScalarComposer {
	sc.resultCoercer = coercer
	sc.bump()
	return sc
}

// Serialize returns the result coercion function, if set.
func (sc *ScalarComposer) Serialize() graphql.CoerceScalarResultFunc {
	return sc.resultCoercer
}

// SetParseValue sets the input coercion function.
func (sc *ScalarComposer) SetParseValue(coercer graphql.CoerceScalarInputFunc) *ScalarComposer {
	sc.inputCoercer = coercer
	sc.bump()
	return sc
}

// ParseValue returns the input coercion function, if set.
func (sc *ScalarComposer) ParseValue() graphql.CoerceScalarInputFunc {
	return sc.inputCoercer
}

// Clone registers an independent copy of the composer under newName.
func (sc *ScalarComposer) Clone(newName string) (*ScalarComposer, error) {
	cloned, err := sc.registry.NewScalar(newName)
	if err != nil {
		return nil, err
	}
	cloned.description = sc.description
	cloned.resultCoercer = sc.resultCoercer
	cloned.inputCoercer = sc.inputCoercer
	return cloned, nil
}

// typeDefinition implements Composer.
func (sc *ScalarComposer) typeDefinition() (graphql.TypeDefinition, error) {
	return &graphql.ScalarConfig{
		Name:          sc.name,
		Description:   sc.description,
		ResultCoercer: sc.resultCoercer,
		InputCoercer:  sc.inputCoercer,
	}, nil
}

// Type implements Composer. The result is cached until the next mutation.
func (sc *ScalarComposer) Type() (graphql.Type, error) {
	return sc.registry.materializeComposer(sc)
}

// MustType is a convenience function equivalent to Type but panics on failure.
func (sc *ScalarComposer) MustType() graphql.Type {
	t, err := sc.Type()
	if err != nil {
		panic(err)
	}
	return t
}

// ListType materializes the composed type wrapped in a List.
func (sc *ScalarComposer) ListType() (graphql.Type, error) {
	t, err := sc.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewListOfType(t)
}

// NonNullType materializes the composed type wrapped in a NonNull.
func (sc *ScalarComposer) NonNullType() (graphql.Type, error) {
	t, err := sc.Type()
	if err != nil {
		return nil, err
	}
	return graphql.NewNonNullOfType(t)
}
