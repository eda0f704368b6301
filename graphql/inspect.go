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

	jsoniter "github.com/json-iterator/go"
)

// Inspect formats an arbitrary value for inclusion in a diagnostic message. Types print their
// GraphQL notation; everything else prints as JSON when possible, falling back to Go's default
// formatting.
func Inspect(value interface{}) string {
	switch value := value.(type) {
	case nil:
		return "null"

	case Type:
		return value.String()

	case string:
		return inspectQuoted(value)
	}

	if s, err := jsoniter.MarshalToString(value); err == nil {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func inspectQuoted(s string) string {
	if out, err := jsoniter.MarshalToString(s); err == nil {
		return out
	}
	return fmt.Sprintf("%q", s)
}
