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
	"math"
	"strconv"
)

// As per the GraphQL specification, Int is a signed 32-bit integer.
const (
	// MaxInt is the maximum value an Int can hold.
	MaxInt = math.MaxInt32

	// MinInt is the minimum value an Int can hold.
	MinInt = math.MinInt32
)

func coerceIntImpl(value interface{}) (interface{}, error) {
	raise := func() (interface{}, error) {
		return nil, NewError(
			fmt.Sprintf("Int cannot represent non 32-bit signed integer value: %s", Inspect(value)),
			ErrKindCoercion)
	}

	checked := func(v int64) (interface{}, error) {
		if v < MinInt || v > MaxInt {
			return raise()
		}
		return int(v), nil
	}

	switch value := value.(type) {
	case int:
		return checked(int64(value))
	case int8:
		return int(value), nil
	case int16:
		return int(value), nil
	case int32:
		return int(value), nil
	case int64:
		return checked(value)
	case uint:
		return checked(int64(value))
	case uint8:
		return int(value), nil
	case uint16:
		return int(value), nil
	case uint32:
		return checked(int64(value))
	case uint64:
		if value > math.MaxInt64 {
			return raise()
		}
		return checked(int64(value))
	case float32:
		if float32(int64(value)) != value {
			return raise()
		}
		return checked(int64(value))
	case float64:
		if float64(int64(value)) != value {
			return raise()
		}
		return checked(int64(value))
	case bool:
		if value {
			return 1, nil
		}
		return 0, nil
	case string:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return raise()
		}
		return checked(v)
	}
	return raise()
}

func coerceFloatImpl(value interface{}) (interface{}, error) {
	raise := func() (interface{}, error) {
		return nil, NewError(
			fmt.Sprintf("Float cannot represent non numeric value: %s", Inspect(value)),
			ErrKindCoercion)
	}

	switch value := value.(type) {
	case float32:
		return float64(value), nil
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	case int8:
		return float64(value), nil
	case int16:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint:
		return float64(value), nil
	case uint8:
		return float64(value), nil
	case uint16:
		return float64(value), nil
	case uint32:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	case bool:
		if value {
			return float64(1), nil
		}
		return float64(0), nil
	case string:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return raise()
		}
		return v, nil
	}
	return raise()
}

func coerceStringImpl(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case bool:
		if value {
			return "true", nil
		}
		return "false", nil
	case fmt.Stringer:
		return value.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value), nil
	case float32, float64:
		return fmt.Sprintf("%v", value), nil
	}
	return nil, NewError(
		fmt.Sprintf("String cannot represent value: %s", Inspect(value)),
		ErrKindCoercion)
}

func coerceBooleanImpl(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		return value, nil
	case int:
		return value != 0, nil
	case int8:
		return value != 0, nil
	case int16:
		return value != 0, nil
	case int32:
		return value != 0, nil
	case int64:
		return value != 0, nil
	case uint:
		return value != 0, nil
	case uint8:
		return value != 0, nil
	case uint16:
		return value != 0, nil
	case uint32:
		return value != 0, nil
	case uint64:
		return value != 0, nil
	}
	return nil, NewError(
		fmt.Sprintf("Boolean cannot represent a non boolean value: %s", Inspect(value)),
		ErrKindCoercion)
}

func coerceIDImpl(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value), nil
	case fmt.Stringer:
		return value.String(), nil
	}
	return nil, NewError(
		fmt.Sprintf("ID cannot represent value: %s", Inspect(value)),
		ErrKindCoercion)
}

// The built-in scalar instances are plain composite literals. They must not go through the
// creator: the creator's validation reaches package-level state in other files (through the
// typeCreator interface, where initialization-order analysis cannot follow), and these variables
// may initialize first.
var intTypeInstance = &Scalar{
	name: "Int",
	description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
	resultCoercer: coerceIntImpl,
	inputCoercer:  coerceIntImpl,
}

// Int provides the built-in Int scalar type.
func Int() *Scalar {
	return intTypeInstance
}

var floatTypeInstance = &Scalar{
	name: "Float",
	description: "The `Float` scalar type represents signed double-precision fractional values as " +
		"specified by IEEE 754.",
	resultCoercer: coerceFloatImpl,
	inputCoercer:  coerceFloatImpl,
}

// Float provides the built-in Float scalar type.
func Float() *Scalar {
	return floatTypeInstance
}

var stringTypeInstance = &Scalar{
	name: "String",
	description: "The `String` scalar type represents textual data, represented as UTF-8 character " +
		"sequences.",
	resultCoercer: coerceStringImpl,
	inputCoercer:  coerceStringImpl,
}

// String provides the built-in String scalar type.
func String() *Scalar {
	return stringTypeInstance
}

var booleanTypeInstance = &Scalar{
	name:          "Boolean",
	description:   "The `Boolean` scalar type represents `true` or `false`.",
	resultCoercer: coerceBooleanImpl,
	inputCoercer:  coerceBooleanImpl,
}

// Boolean provides the built-in Boolean scalar type.
func Boolean() *Scalar {
	return booleanTypeInstance
}

var idTypeInstance = &Scalar{
	name: "ID",
	description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a String; however, " +
		"it is not intended to be human-readable.",
	resultCoercer: coerceIDImpl,
	inputCoercer:  coerceIDImpl,
}

// ID provides the built-in ID scalar type.
func ID() *Scalar {
	return idTypeInstance
}

// builtInScalars maps the names of the specified scalar types to their instances.
var builtInScalars = map[string]*Scalar{
	"Int":     intTypeInstance,
	"Float":   floatTypeInstance,
	"String":  stringTypeInstance,
	"Boolean": booleanTypeInstance,
	"ID":      idTypeInstance,
}

// BuiltInScalar looks up a built-in scalar type by name.
func BuiltInScalar(name string) (*Scalar, bool) {
	s, ok := builtInScalars[name]
	return s, ok
}

// IsBuiltInScalarName returns true when name is the name of one of the specified scalar types.
// Built-in names are reserved: user registrations must never shadow them.
func IsBuiltInScalarName(name string) bool {
	_, ok := builtInScalars[name]
	return ok
}
