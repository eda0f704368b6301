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
	"math"

	"github.com/NikolasMelui/graphql-compose/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Built-in scalars", func() {
	Describe("Int", func() {
		It("coerces numeric values within 32-bit range", func() {
			Expect(graphql.Int().CoerceResultValue(42)).Should(Equal(42))
			Expect(graphql.Int().CoerceResultValue(int64(7))).Should(Equal(7))
			Expect(graphql.Int().CoerceResultValue(3.0)).Should(Equal(3))
			Expect(graphql.Int().CoerceResultValue("123")).Should(Equal(123))
			Expect(graphql.Int().CoerceResultValue(true)).Should(Equal(1))
		})

		It("rejects values outside 32-bit range", func() {
			_, err := graphql.Int().CoerceResultValue(int64(graphql.MaxInt) + 1)
			Expect(err).Should(HaveOccurred())
			Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindCoercion))
		})

		It("rejects fractional values", func() {
			_, err := graphql.Int().CoerceResultValue(1.5)
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("Float", func() {
		It("coerces numeric and string values", func() {
			Expect(graphql.Float().CoerceResultValue(1)).Should(Equal(float64(1)))
			Expect(graphql.Float().CoerceResultValue("3.14")).Should(Equal(3.14))
		})

		It("rejects non-numeric values", func() {
			_, err := graphql.Float().CoerceResultValue("apple")
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("String", func() {
		It("coerces strings, booleans and numbers", func() {
			Expect(graphql.String().CoerceResultValue("hi")).Should(Equal("hi"))
			Expect(graphql.String().CoerceResultValue(true)).Should(Equal("true"))
			Expect(graphql.String().CoerceResultValue(42)).Should(Equal("42"))
		})
	})

	Describe("Boolean", func() {
		It("coerces booleans and integers", func() {
			Expect(graphql.Boolean().CoerceResultValue(true)).Should(Equal(true))
			Expect(graphql.Boolean().CoerceResultValue(0)).Should(Equal(false))
			Expect(graphql.Boolean().CoerceResultValue(2)).Should(Equal(true))
		})

		It("rejects floats", func() {
			_, err := graphql.Boolean().CoerceResultValue(math.Pi)
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("ID", func() {
		It("coerces strings and integers", func() {
			Expect(graphql.ID().CoerceResultValue("abc")).Should(Equal("abc"))
			Expect(graphql.ID().CoerceResultValue(42)).Should(Equal("42"))
		})
	})

	It("reserves the built-in names", func() {
		for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
			Expect(graphql.IsBuiltInScalarName(name)).Should(BeTrue(), name)
			Expect(graphql.ValidateName(name)).Should(Succeed(), name)
			scalar, ok := graphql.BuiltInScalar(name)
			Expect(ok).Should(BeTrue())
			Expect(scalar.Name()).Should(Equal(name))
		}
		Expect(graphql.IsBuiltInScalarName("Color")).Should(BeFalse())
	})

	It("exposes usable instances with non-empty descriptions", func() {
		for _, scalar := range []*graphql.Scalar{
			graphql.Int(), graphql.Float(), graphql.String(), graphql.Boolean(), graphql.ID(),
		} {
			Expect(scalar).ShouldNot(BeNil())
			Expect(scalar.Description()).ShouldNot(BeEmpty(), scalar.Name())
		}
	})
})
