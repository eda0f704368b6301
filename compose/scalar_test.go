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

package compose_test

import (
	"fmt"
	"strings"

	"github.com/NikolasMelui/graphql-compose/compose"
	"github.com/NikolasMelui/graphql-compose/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ScalarComposer", func() {
	var registry *compose.Registry

	BeforeEach(func() {
		registry = compose.NewRegistry()
	})

	It("materializes with identity coercion when none is given", func() {
		sc := registry.MustNewScalar("Anything").SetDescription("Passes values through")

		scalarType := sc.MustType().(*graphql.Scalar)
		Expect(scalarType.Name()).Should(Equal("Anything"))
		Expect(scalarType.Description()).Should(Equal("Passes values through"))
		Expect(scalarType.CoerceResultValue(42)).Should(Equal(42))
		Expect(scalarType.CoerceInputValue("x")).Should(Equal("x"))
	})

	It("carries custom coercers into the materialized scalar", func() {
		sc := registry.MustNewScalar("UpperCase").
			SetSerialize(func(value interface{}) (interface{}, error) {
				s, ok := value.(string)
				if !ok {
					return nil, fmt.Errorf("not a string: %v", value)
				}
				return strings.ToUpper(s), nil
			}).
			SetParseValue(func(value interface{}) (interface{}, error) {
				return value, nil
			})

		scalarType := sc.MustType().(*graphql.Scalar)
		Expect(scalarType.CoerceResultValue("hello")).Should(Equal("HELLO"))

		_, err := scalarType.CoerceResultValue(42)
		Expect(err).Should(HaveOccurred())
	})

	It("clones into an independent composer", func() {
		sc := registry.MustNewScalar("Token")
		cloned, err := sc.Clone("SessionToken")
		Expect(err).ShouldNot(HaveOccurred())

		cloned.SetDescription("An opaque session token")
		Expect(sc.Description()).Should(BeEmpty())
		Expect(cloned.Description()).Should(Equal("An opaque session token"))
	})
})
