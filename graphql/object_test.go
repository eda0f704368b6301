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
	"context"

	"github.com/NikolasMelui/graphql-compose/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Object", func() {
	It("defines an object type with fields and arguments", func() {
		objectType, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:        "Article",
			Description: "A blog article",
			Fields: graphql.Fields{
				"id": graphql.FieldConfig{
					Type: graphql.NonNullOfType(graphql.ID()),
				},
				"title": graphql.FieldConfig{
					Type: graphql.T(graphql.String()),
					Args: graphql.ArgumentConfigMap{
						"truncate": graphql.ArgumentConfig{
							Type:         graphql.T(graphql.Int()),
							DefaultValue: 100,
						},
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(objectType.Name()).Should(Equal("Article"))
		Expect(objectType.Description()).Should(Equal("A blog article"))

		idField := objectType.Field("id")
		Expect(idField).ShouldNot(BeNil())
		Expect(idField.Type().String()).Should(Equal("ID!"))

		titleField := objectType.Field("title")
		Expect(titleField).ShouldNot(BeNil())
		Expect(titleField.Type()).Should(Equal(graphql.String()))

		args := titleField.Args()
		Expect(len(args)).Should(Equal(1))
		Expect(args[0].Name()).Should(Equal("truncate"))
		Expect(args[0].Type()).Should(Equal(graphql.Int()))
		Expect(args[0].HasDefaultValue()).Should(BeTrue())
		Expect(args[0].DefaultValue()).Should(Equal(100))
	})

	It("builds a self-referencing object into a cyclic structure", func() {
		config := &graphql.ObjectConfig{Name: "BlogAuthor"}
		config.Fields = graphql.Fields{
			"name": graphql.FieldConfig{
				Type: graphql.T(graphql.String()),
			},
			"bestFriend": graphql.FieldConfig{
				Type: config,
			},
		}

		objectType, err := graphql.NewObject(config)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(objectType.Field("bestFriend").Type()).Should(BeIdenticalTo(objectType))
	})

	It("resolves deferred field types lazily and at most once", func() {
		invocations := 0
		objectType, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"answer": graphql.FieldConfig{
					Type: graphql.Deferred(func() (graphql.Type, error) {
						invocations++
						return graphql.Int(), nil
					}),
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(invocations).Should(Equal(1))
		Expect(objectType.Field("answer").Type()).Should(Equal(graphql.Int()))
	})

	It("keeps the field resolver", func() {
		resolver := graphql.FieldResolverFunc(
			func(ctx context.Context, source interface{}) (interface{}, error) {
				return "hello", nil
			})

		objectType := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"greeting": graphql.FieldConfig{
					Type:     graphql.T(graphql.String()),
					Resolver: resolver,
				},
			},
		})

		result, err := objectType.Field("greeting").Resolver().Resolve(context.Background(), nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result).Should(Equal("hello"))
	})

	It("rejects a field without type", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Broken",
			Fields: graphql.Fields{
				"field": graphql.FieldConfig{},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(
			ContainSubstring(`Must provide type for field "field" in type "Broken".`))
		Expect(graphql.IsMaterializationError(err)).Should(BeTrue())
	})

	It("does not publish a half-built type when finalization fails", func() {
		config := &graphql.ObjectConfig{
			Name: "Broken",
			Fields: graphql.Fields{
				"field": graphql.FieldConfig{},
			},
		}
		_, err := graphql.NewObject(config)
		Expect(err).Should(HaveOccurred())

		// A fixed definition under the same identity must build from scratch.
		config.Fields["field"] = graphql.FieldConfig{Type: graphql.T(graphql.String())}
		objectType, err := graphql.NewObject(config)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(objectType.Field("field").Type()).Should(Equal(graphql.String()))
	})

	It("rejects creating type without name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{})
		Expect(err).Should(MatchError("Must provide name for Object."))
	})
})
