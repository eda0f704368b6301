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
	"github.com/NikolasMelui/graphql-compose/compose"
	"github.com/NikolasMelui/graphql-compose/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry.GetWrapped", func() {
	var registry *compose.Registry

	BeforeEach(func() {
		registry = compose.NewRegistry()
		registry.MustNewEnum("Color").SetValues(compose.EnumValueConfigMap{
			"RED": {},
		})
	})

	It("resolves bare names, list and non-null wrappers", func() {
		for ref, expected := range map[string]string{
			"Color":      "Color",
			"Color!":     "Color!",
			"[Color]":    "[Color]",
			"[Color!]!":  "[Color!]!",
			"[[Color]]":  "[[Color]]",
			" [ Color ]": "[Color]",
			"Int":        "Int",
		} {
			t, err := registry.GetWrapped(ref)
			Expect(err).ShouldNot(HaveOccurred(), ref)
			Expect(graphql.Inspect(t)).Should(Equal(expected), ref)
		}
	})

	It("rejects malformed references", func() {
		for _, ref := range []string{"", "!", "[Color", "Color]", "[]", "[Color]]", "not a name"} {
			_, err := registry.GetWrapped(ref)
			Expect(err).Should(HaveOccurred(), ref)
			Expect(graphql.IsParseError(err)).Should(BeTrue(), ref)
			if ref != "" {
				Expect(err.Error()).Should(ContainSubstring(ref), ref)
			}
		}
	})

	It("rejects unknown names", func() {
		_, err := registry.GetWrapped("[Missing!]")
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsUnknownType(err)).Should(BeTrue())
	})
})

var _ = Describe("Registry.CreateType", func() {
	var registry *compose.Registry

	BeforeEach(func() {
		registry = compose.NewRegistry()
	})

	It("creates an object composer from an SDL fragment", func() {
		composer, err := registry.CreateType(`
			"A published piece of writing"
			type Article implements Node {
				id: ID!
				title(truncate: Int = 100): String
				views: Int @deprecated(reason: "use stats.views")
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		oc, ok := composer.(*compose.ObjectComposer)
		Expect(ok).Should(BeTrue())
		Expect(oc.TypeName()).Should(Equal("Article"))
		Expect(oc.Description()).Should(Equal("A published piece of writing"))

		// Declaration order is kept.
		Expect(oc.GetFieldNames()).Should(Equal([]string{"id", "title", "views"}))
		Expect(oc.GetInterfaces()).Should(Equal([]compose.TypeRef{"Node"}))

		args, err := oc.GetFieldArgs("title")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(args["truncate"].Type).Should(Equal(compose.TypeRef("Int")))
		Expect(args["truncate"].DefaultValue).Should(Equal(int64(100)))

		views, err := oc.GetField("views")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(views.DeprecationReason).Should(Equal("use stats.views"))
	})

	It("creates an enum composer, defaulting the deprecation reason", func() {
		composer, err := registry.CreateType(`
			enum Color {
				RED @deprecated
				GREEN
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		ec := composer.(*compose.EnumComposer)
		Expect(ec.GetValueNames()).Should(Equal([]string{"RED", "GREEN"}))

		red, err := ec.GetValue("RED")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(red.DeprecationReason).Should(Equal("No longer supported"))
	})

	It("creates an input composer with defaults", func() {
		composer, err := registry.CreateType(`
			input Filter {
				limit: Int = 10
				cursor: String = null
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		ic := composer.(*compose.InputComposer)
		limit, err := ic.GetField("limit")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(limit.DefaultValue).Should(Equal(int64(10)))

		cursor, err := ic.GetField("cursor")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(cursor.DefaultValue).Should(Equal(compose.NullDefaultValue))
	})

	It("creates union, interface and scalar composers", func() {
		_, err := registry.CreateType(`union SearchResult = Article | Comment`)
		Expect(err).ShouldNot(HaveOccurred())
		uc, ok := registry.GetComposer("SearchResult")
		Expect(ok).Should(BeTrue())
		Expect(uc.(*compose.UnionComposer).GetTypeNames()).Should(Equal([]string{"Article", "Comment"}))

		_, err = registry.CreateType(`interface Node { id: ID! }`)
		Expect(err).ShouldNot(HaveOccurred())

		_, err = registry.CreateType(`scalar DateTime`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(registry.Has("DateTime")).Should(BeTrue())
	})

	It("registers the created composer for later cross-references", func() {
		_, err := registry.CreateType(`enum Status { DRAFT PUBLISHED }`)
		Expect(err).ShouldNot(HaveOccurred())

		article, err := registry.CreateType(`type Article { status: Status! }`)
		Expect(err).ShouldNot(HaveOccurred())

		objectType := article.(*compose.ObjectComposer).MustType().(*graphql.Object)
		Expect(graphql.Inspect(objectType.Field("status").Type())).Should(Equal("Status!"))
	})

	It("rejects fragments that do not parse", func() {
		_, err := registry.CreateType(`type { busted`)
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsParseError(err)).Should(BeTrue())
		Expect(err.Error()).Should(ContainSubstring("Failed to parse type declaration."))
	})

	It("rejects fragments with more than one declaration", func() {
		_, err := registry.CreateType(`
			enum A { X }
			enum B { Y }
		`)
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsParseError(err)).Should(BeTrue())
		Expect(err.Error()).Should(
			ContainSubstring("Type declaration must contain exactly one type definition."))
	})

	It("rejects declarations colliding with built-in scalars", func() {
		_, err := registry.CreateType(`scalar Int`)
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsNameConflict(err)).Should(BeTrue())
		Expect(err.Error()).Should(
			ContainSubstring(`Type name "Int" collides with a built-in scalar type.`))
	})
})
