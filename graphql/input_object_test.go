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
	"github.com/NikolasMelui/graphql-compose/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("InputObject", func() {
	It("defines an input object type with fields and default values", func() {
		inputType, err := graphql.NewInputObject(&graphql.InputObjectConfig{
			Name: "GeoPoint",
			Fields: graphql.InputFields{
				"lat": graphql.InputFieldConfig{
					Type: graphql.NonNullOfType(graphql.Float()),
				},
				"alt": graphql.InputFieldConfig{
					Type:         graphql.T(graphql.Float()),
					DefaultValue: float64(0),
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(inputType.Name()).Should(Equal("GeoPoint"))

		latField := inputType.Field("lat")
		Expect(latField).ShouldNot(BeNil())
		Expect(latField.Type().String()).Should(Equal("Float!"))
		Expect(latField.HasDefaultValue()).Should(BeFalse())

		altField := inputType.Field("alt")
		Expect(altField.HasDefaultValue()).Should(BeTrue())
		Expect(altField.DefaultValue()).Should(Equal(float64(0)))
	})

	It("distinguishes an explicit null default from no default", func() {
		inputType := graphql.MustNewInputObject(&graphql.InputObjectConfig{
			Name: "Filter",
			Fields: graphql.InputFields{
				"tag": graphql.InputFieldConfig{
					Type:         graphql.T(graphql.String()),
					DefaultValue: graphql.NilArgumentDefaultValue,
				},
			},
		})

		tagField := inputType.Field("tag")
		Expect(tagField.HasDefaultValue()).Should(BeTrue())
		Expect(tagField.DefaultValue()).Should(BeNil())
	})

	It("rejects creating type without name", func() {
		_, err := graphql.NewInputObject(&graphql.InputObjectConfig{})
		Expect(err).Should(MatchError("Must provide name for InputObject."))
	})
})
