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

var _ = Describe("EnumComposer", func() {
	var registry *compose.Registry
	var color *compose.EnumComposer

	BeforeEach(func() {
		registry = compose.NewRegistry()
		color = registry.MustNewEnum("Color").SetValues(compose.EnumValueConfigMap{
			"RED":   {Value: 0},
			"GREEN": {Value: 1},
			"BLUE":  {Value: 2},
		})
	})

	It("keeps values in sorted order after a full replace", func() {
		Expect(color.GetValueNames()).Should(Equal([]string{"BLUE", "GREEN", "RED"}))

		values := color.GetValues()
		Expect(values).Should(HaveLen(3))
		Expect(values["GREEN"].Value).Should(Equal(1))
	})

	It("adds values keeping existing slots and appending new ones sorted", func() {
		color.AddValues(compose.EnumValueConfigMap{
			"RED":    {Value: 10, Description: "updated"},
			"YELLOW": {Value: 3},
			"AMBER":  {Value: 4},
		})

		Expect(color.GetValueNames()).Should(Equal([]string{"BLUE", "GREEN", "RED", "AMBER", "YELLOW"}))

		config, err := color.GetValue("RED")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.Value).Should(Equal(10))
		Expect(config.Description).Should(Equal("updated"))
	})

	It("removes named values and keeps the rest", func() {
		color.RemoveValue("GREEN", "NOPE")
		Expect(color.GetValueNames()).Should(Equal([]string{"BLUE", "RED"}))

		color.RemoveOtherValues("RED")
		Expect(color.GetValueNames()).Should(Equal([]string{"RED"}))
	})

	It("reorders named values to the front", func() {
		color.ReorderValues("RED", "GREEN")
		Expect(color.GetValueNames()).Should(Equal([]string{"RED", "GREEN", "BLUE"}))
	})

	It("extends a value with only the non-zero fields of the partial", func() {
		Expect(color.ExtendValue("RED", compose.EnumValueConfig{
			Description: "like a rose",
		})).Should(Succeed())

		config, err := color.GetValue("RED")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.Description).Should(Equal("like a rose"))
		// Untouched field survives the overlay.
		Expect(config.Value).Should(Equal(0))
	})

	It("rejects extending an unknown value", func() {
		err := color.ExtendValue("PURPLE", compose.EnumValueConfig{Description: "?"})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsNotFound(err)).Should(BeTrue())
		Expect(err.Error()).Should(ContainSubstring(`Value "PURPLE" does not exist in enum type "Color".`))
	})

	Describe("deprecation", func() {
		It("deprecates values with the generic reason", func() {
			Expect(color.DeprecateValues("RED")).Should(Succeed())

			enumType := color.MustType().(*graphql.Enum)
			red := enumType.Value("RED")
			Expect(red).ShouldNot(BeNil())
			Expect(red.IsDeprecated()).Should(BeTrue())
			Expect(red.Deprecation().Reason).Should(Equal("deprecated"))
			Expect(enumType.Value("GREEN").IsDeprecated()).Should(BeFalse())
		})

		It("deprecates values with per-value reasons", func() {
			Expect(color.DeprecateValuesWithReasons(map[string]string{
				"RED":  "use CRIMSON",
				"BLUE": "use NAVY",
			})).Should(Succeed())

			enumType := color.MustType().(*graphql.Enum)
			Expect(enumType.Value("RED").Deprecation().Reason).Should(Equal("use CRIMSON"))
			Expect(enumType.Value("BLUE").Deprecation().Reason).Should(Equal("use NAVY"))
		})

		It("applies nothing when any name is unknown", func() {
			err := color.DeprecateValues("RED", "PURPLE")
			Expect(err).Should(HaveOccurred())
			Expect(graphql.IsNotFound(err)).Should(BeTrue())
			Expect(err.Error()).Should(ContainSubstring(
				`Cannot deprecate value "PURPLE": it does not exist in enum type "Color".`))

			enumType := color.MustType().(*graphql.Enum)
			Expect(enumType.Value("RED").IsDeprecated()).Should(BeFalse())
		})

		It("keeps a bare marker on incremental writes but strips it on a full replace", func() {
			marked := compose.EnumValueConfig{Deprecated: true}

			// Incremental write keeps the marker; it materializes with the generic reason.
			color.SetValue("CRIMSON", marked)
			crimson, err := color.GetValue("CRIMSON")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(crimson.Deprecated).Should(BeTrue())

			enumType := color.MustType().(*graphql.Enum)
			Expect(enumType.Value("CRIMSON").Deprecation().Reason).Should(Equal("deprecated"))

			// A full replace with the same config drops the stale marker.
			color.SetValues(compose.EnumValueConfigMap{"CRIMSON": marked})
			crimson, err = color.GetValue("CRIMSON")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(crimson.Deprecated).Should(BeFalse())
		})
	})

	It("looks up value names by internal value", func() {
		name, ok := color.ValueName(1)
		Expect(ok).Should(BeTrue())
		Expect(name).Should(Equal("GREEN"))

		_, ok = color.ValueName(42)
		Expect(ok).Should(BeFalse())
	})

	It("defaults the internal value to the value name in lookups", func() {
		suit := registry.MustNewEnum("Suit").SetValues(compose.EnumValueConfigMap{
			"HEARTS": {},
			"SPADES": {},
		})

		name, ok := suit.ValueName("SPADES")
		Expect(ok).Should(BeTrue())
		Expect(name).Should(Equal("SPADES"))
	})

	It("clones into an independent composer", func() {
		cloned, err := color.Clone("Colour")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(registry.Has("Colour")).Should(BeTrue())

		cloned.RemoveValue("RED")
		Expect(cloned.HasValue("RED")).Should(BeFalse())
		Expect(color.HasValue("RED")).Should(BeTrue())
	})

	Describe("materialization", func() {
		It("caches the materialized type until the next mutation", func() {
			first := color.MustType()
			Expect(color.MustType()).Should(BeIdenticalTo(first))

			color.SetDescription("The colors")
			second := color.MustType()
			Expect(second).ShouldNot(BeIdenticalTo(first))
			Expect(second.(*graphql.Enum).Description()).Should(Equal("The colors"))
		})

		It("wraps the materialized type in lists and non-nulls", func() {
			listType, err := color.ListType()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(graphql.Inspect(listType)).Should(Equal("[Color]"))

			nonNullType, err := color.NonNullType()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(graphql.Inspect(nonNullType)).Should(Equal("Color!"))
		})
	})
})
