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

var _ = Describe("Type memoization", func() {
	It("resolves one definition to one instance", func() {
		config := &graphql.EnumConfig{
			Name: "Season",
			Values: graphql.EnumValueDefinitionMap{
				"SUMMER": graphql.EnumValueDefinition{},
			},
		}

		first := graphql.MustNewEnum(config)
		Expect(graphql.MustNewEnum(config)).Should(BeIdenticalTo(first))
	})

	It("builds a fresh instance after the definition is discarded", func() {
		config := &graphql.EnumConfig{
			Name: "Season",
			Values: graphql.EnumValueDefinitionMap{
				"WINTER": graphql.EnumValueDefinition{},
			},
		}

		first := graphql.MustNewEnum(config)
		graphql.DiscardType(config)

		second := graphql.MustNewEnum(config)
		Expect(second).ShouldNot(BeIdenticalTo(first))
		// The discarded instance keeps working for whoever still holds it.
		Expect(first.Value("WINTER")).ShouldNot(BeNil())
	})

	It("ignores discarding an unknown definition", func() {
		graphql.DiscardType(&graphql.EnumConfig{Name: "NeverBuilt"})
	})
})
