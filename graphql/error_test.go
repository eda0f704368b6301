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

package graphql_test

import (
	"errors"

	"github.com/NikolasMelui/graphql-compose/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	jsoniter "github.com/json-iterator/go"
)

var _ = Describe("Error", func() {
	It("carries an operation, a kind and an underlying error", func() {
		underlying := errors.New("boom")
		err := graphql.NewError("Something failed.",
			graphql.Op("compose.Registry.Resolve"), graphql.ErrKindUnknownType, underlying)

		Expect(err.Error()).Should(Equal("compose.Registry.Resolve: Something failed.: boom"))
		Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindUnknownType))
		Expect(errors.Unwrap(err)).Should(Equal(underlying))
	})

	It("propagates the kind from a wrapped error", func() {
		inner := graphql.NewError("Inner.", graphql.ErrKindNameConflict)
		outer := graphql.WrapError(inner, "Outer.")

		Expect(graphql.KindOf(outer)).Should(Equal(graphql.ErrKindNameConflict))
		Expect(graphql.IsNameConflict(outer)).Should(BeTrue())
		Expect(graphql.IsNotFound(outer)).Should(BeFalse())
	})

	It("finds a kind buried under explicit kinds", func() {
		inner := graphql.NewError("Inner.", graphql.ErrKindParse)
		outer := graphql.NewError("Outer.", graphql.ErrKindMaterialization, inner)

		Expect(graphql.KindOf(outer)).Should(Equal(graphql.ErrKindMaterialization))
		Expect(graphql.IsKindOf(outer, graphql.ErrKindParse)).Should(BeTrue())
		Expect(graphql.IsParseError(outer)).Should(BeTrue())
	})

	It("formats the wrapping message with WrapErrorf", func() {
		err := graphql.WrapErrorf(errors.New("boom"), "Failed to materialize type %q", "Color")
		Expect(err.Error()).Should(Equal(`Failed to materialize type "Color": boom`))
	})

	It("serializes to JSON", func() {
		err := graphql.NewError("Something failed.",
			graphql.Op("compose.CreateType"), graphql.ErrKindParse)

		encoded, jsonErr := jsoniter.MarshalToString(err)
		Expect(jsonErr).ShouldNot(HaveOccurred())
		Expect(encoded).Should(MatchJSON(`{
			"message": "Something failed.",
			"op": "compose.CreateType",
			"kind": "parse error"
		}`))
	})
})

var _ = Describe("Inspect", func() {
	It("prints nil as null", func() {
		Expect(graphql.Inspect(nil)).Should(Equal("null"))
	})

	It("prints types in GraphQL notation", func() {
		Expect(graphql.Inspect(graphql.MustNewNonNullOfType(graphql.Int()))).Should(Equal("Int!"))
	})

	It("prints strings quoted and values as JSON", func() {
		Expect(graphql.Inspect("hello")).Should(Equal(`"hello"`))
		Expect(graphql.Inspect(42)).Should(Equal("42"))
		Expect(graphql.Inspect([]int{1, 2})).Should(Equal("[1,2]"))
	})
})
