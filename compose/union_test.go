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
	"context"

	"github.com/NikolasMelui/graphql-compose/compose"
	"github.com/NikolasMelui/graphql-compose/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("UnionComposer", func() {
	var registry *compose.Registry
	var result *compose.UnionComposer

	BeforeEach(func() {
		registry = compose.NewRegistry()
		registry.MustNewObject("Article").SetFields(compose.FieldConfigMap{
			"title": {Type: "String"},
		})
		registry.MustNewObject("Comment").SetFields(compose.FieldConfigMap{
			"body": {Type: "String"},
		})
		result = registry.MustNewUnion("SearchResult").SetTypes("Article", "Comment")
	})

	It("keeps member order as given", func() {
		Expect(result.GetTypeNames()).Should(Equal([]string{"Article", "Comment"}))
	})

	It("skips adding a member with a name already present", func() {
		result.AddType("Article")
		Expect(result.GetTypeNames()).Should(Equal([]string{"Article", "Comment"}))

		registry.MustNewObject("Video").SetFields(compose.FieldConfigMap{
			"url": {Type: "String"},
		})
		result.AddType("Video")
		Expect(result.GetTypeNames()).Should(Equal([]string{"Article", "Comment", "Video"}))
	})

	It("removes members by name", func() {
		result.RemoveType("Comment")
		Expect(result.GetTypeNames()).Should(Equal([]string{"Article"}))
		Expect(result.HasType("Comment")).Should(BeFalse())
	})

	It("materializes the members as possible types in order", func() {
		unionType := result.MustType().(*graphql.Union)
		possible := unionType.PossibleTypes()
		Expect(possible).Should(HaveLen(2))
		Expect(possible[0].Name()).Should(Equal("Article"))
		Expect(possible[1].Name()).Should(Equal("Comment"))
	})

	It("rejects a non-Object member during materialization", func() {
		registry.MustNewEnum("Color").SetValues(compose.EnumValueConfigMap{"RED": {}})
		result.AddType("Color")

		_, err := result.Type()
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsMaterializationError(err)).Should(BeTrue())
		Expect(err.Error()).Should(
			ContainSubstring(`Color in possible types of Union "SearchResult" is not an Object type.`))
	})

	It("carries the type resolver into the materialized union", func() {
		resolver := graphql.TypeResolverFunc(
			func(ctx context.Context, value interface{}) (*graphql.Object, error) {
				return nil, nil
			})
		result.SetTypeResolver(resolver)

		unionType := result.MustType().(*graphql.Union)
		Expect(unionType.TypeResolver()).ShouldNot(BeNil())
	})

	It("clones into an independent composer", func() {
		cloned, err := result.Clone("SearchHit")
		Expect(err).ShouldNot(HaveOccurred())

		cloned.RemoveType("Article")
		Expect(cloned.HasType("Article")).Should(BeFalse())
		Expect(result.HasType("Article")).Should(BeTrue())
	})
})
