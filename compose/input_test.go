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

var _ = Describe("InputComposer", func() {
	var registry *compose.Registry
	var filter *compose.InputComposer

	BeforeEach(func() {
		registry = compose.NewRegistry()
		filter = registry.MustNewInput("ArticleFilter").SetFields(compose.InputFieldConfigMap{
			"title":    {Type: "String"},
			"minViews": {Type: "Int", DefaultValue: 0},
		})
	})

	It("manages input fields", func() {
		filter.AddFields(compose.InputFieldConfigMap{
			"maxViews": {Type: "Int"},
		})
		Expect(filter.GetFieldNames()).Should(Equal([]string{"minViews", "title", "maxViews"}))

		filter.RemoveField("maxViews")
		Expect(filter.HasField("maxViews")).Should(BeFalse())
	})

	It("reports unknown input fields with a not-found error", func() {
		_, err := filter.GetField("nope")
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsNotFound(err)).Should(BeTrue())
		Expect(err.Error()).Should(
			ContainSubstring(`Input field "nope" does not exist in type "ArticleFilter".`))
	})

	It("extends an input field keeping untouched settings", func() {
		Expect(filter.ExtendField("minViews", compose.InputFieldConfig{
			Description: "Lower bound on the view counter",
		})).Should(Succeed())

		config, err := filter.GetField("minViews")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.Description).Should(Equal("Lower bound on the view counter"))
		Expect(config.Type).Should(Equal(compose.TypeRef("Int")))
	})

	It("materializes fields with defaults", func() {
		filter.SetField("tag", compose.InputFieldConfig{
			Type:         "String",
			DefaultValue: compose.NullDefaultValue,
		})

		inputType := filter.MustType().(*graphql.InputObject)
		Expect(graphql.Inspect(inputType.Field("title").Type())).Should(Equal("String"))

		minViews := inputType.Field("minViews")
		Expect(minViews.HasDefaultValue()).Should(BeTrue())
		Expect(minViews.DefaultValue()).Should(Equal(0))

		tag := inputType.Field("tag")
		Expect(tag.HasDefaultValue()).Should(BeTrue())
		Expect(tag.DefaultValue()).Should(BeNil())
	})

	It("deprecates input fields", func() {
		Expect(filter.DeprecateFields("title")).Should(Succeed())

		inputType := filter.MustType().(*graphql.InputObject)
		Expect(inputType.Field("title").Deprecation().Reason).Should(Equal("deprecated"))
	})

	It("clones into an independent composer", func() {
		cloned, err := filter.Clone("CommentFilter")
		Expect(err).ShouldNot(HaveOccurred())

		cloned.RemoveField("minViews")
		Expect(cloned.HasField("minViews")).Should(BeFalse())
		Expect(filter.HasField("minViews")).Should(BeTrue())
	})
})
