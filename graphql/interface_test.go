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

var _ = Describe("Interface", func() {
	It("defines an interface type with fields", func() {
		ifaceType, err := graphql.NewInterface(&graphql.InterfaceConfig{
			Name: "Node",
			Fields: graphql.Fields{
				"id": graphql.FieldConfig{
					Type: graphql.NonNullOfType(graphql.ID()),
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ifaceType.Name()).Should(Equal("Node"))
		Expect(ifaceType.Fields()["id"].Type().String()).Should(Equal("ID!"))
	})

	It("lets an object implement it", func() {
		ifaceConfig := &graphql.InterfaceConfig{
			Name: "Node",
			Fields: graphql.Fields{
				"id": graphql.FieldConfig{
					Type: graphql.NonNullOfType(graphql.ID()),
				},
			},
		}

		objectType, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:       "User",
			Interfaces: []graphql.TypeDefinition{ifaceConfig},
			Fields: graphql.Fields{
				"id": graphql.FieldConfig{
					Type: graphql.NonNullOfType(graphql.ID()),
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		interfaces := objectType.Interfaces()
		Expect(len(interfaces)).Should(Equal(1))
		Expect(interfaces[0].Name()).Should(Equal("Node"))
	})

	It("rejects a non-interface entry in an object's interface list", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:       "User",
			Interfaces: []graphql.TypeDefinition{graphql.T(graphql.String())},
			Fields: graphql.Fields{
				"id": graphql.FieldConfig{
					Type: graphql.T(graphql.ID()),
				},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsMaterializationError(err)).Should(BeTrue())
	})

	It("rejects creating type without name", func() {
		_, err := graphql.NewInterface(&graphql.InterfaceConfig{})
		Expect(err).Should(MatchError("Must provide name for Interface."))
	})
})
