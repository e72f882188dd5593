// Copyright 2026 The Router Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package e2e_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/joshhayes-sheen-vt/router/pkg/supergraph"
)

// demoSupergraph is the composition output of the four-service federation
// demo: accounts and reviews share the User entity, products, inventory,
// and reviews share the Product entity, and reviews owns Review.
const demoSupergraph = `
schema
  @link(url: "https://specs.apollo.dev/link/v1.0")
  @link(url: "https://specs.apollo.dev/join/v0.3", for: EXECUTION)
{
  query: Query
}

directive @join__enumValue(graph: join__Graph!) repeatable on ENUM_VALUE

directive @join__field(graph: join__Graph, requires: join__FieldSet, provides: join__FieldSet, type: String, external: Boolean, override: String, usedOverridden: Boolean) repeatable on FIELD_DEFINITION | INPUT_FIELD_DEFINITION

directive @join__graph(name: String!, url: String!) on ENUM_VALUE

directive @join__implements(graph: join__Graph!, interface: String!) repeatable on OBJECT | INTERFACE

directive @join__type(graph: join__Graph!, key: join__FieldSet, extension: Boolean! = false, resolvable: Boolean! = true, isInterfaceObject: Boolean! = false) repeatable on OBJECT | INTERFACE | UNION | ENUM | INPUT_OBJECT | SCALAR

directive @join__unionMember(graph: join__Graph!, member: String!) repeatable on UNION

directive @link(url: String, as: String, for: link__Purpose, import: [link__Import]) repeatable on SCHEMA

scalar join__FieldSet

enum join__Graph {
  ACCOUNTS @join__graph(name: "accounts", url: "http://accounts.demo.dev/graphql")
  INVENTORY @join__graph(name: "inventory", url: "http://inventory.demo.dev/graphql")
  PRODUCTS @join__graph(name: "products", url: "http://products.demo.dev/graphql")
  REVIEWS @join__graph(name: "reviews", url: "http://reviews.demo.dev/graphql")
}

scalar link__Import

enum link__Purpose {
  SECURITY
  EXECUTION
}

type Query
  @join__type(graph: ACCOUNTS)
  @join__type(graph: INVENTORY)
  @join__type(graph: PRODUCTS)
  @join__type(graph: REVIEWS)
{
  me: User @join__field(graph: ACCOUNTS)
  topProducts(first: Int = 5): [Product] @join__field(graph: PRODUCTS)
}

type User
  @join__type(graph: ACCOUNTS, key: "id")
  @join__type(graph: REVIEWS, key: "id")
{
  id: ID!
  name: String @join__field(graph: ACCOUNTS)
  username: String @join__field(graph: ACCOUNTS) @join__field(graph: REVIEWS, external: true)
  reviews: [Review] @join__field(graph: REVIEWS)
}

type Product
  @join__type(graph: PRODUCTS, key: "upc")
  @join__type(graph: INVENTORY, key: "upc")
  @join__type(graph: REVIEWS, key: "upc")
{
  upc: String!
  name: String @join__field(graph: PRODUCTS)
  price: Int @join__field(graph: PRODUCTS) @join__field(graph: INVENTORY, external: true)
  weight: Int @join__field(graph: PRODUCTS) @join__field(graph: INVENTORY, external: true)
  inStock: Boolean @join__field(graph: INVENTORY)
  shippingEstimate: Int @join__field(graph: INVENTORY, requires: "price weight")
  reviews: [Review] @join__field(graph: REVIEWS)
}

type Review
  @join__type(graph: REVIEWS, key: "id")
{
  id: ID!
  body: String
  author: User @join__field(graph: REVIEWS, provides: "username")
  product: Product
}
`

var _ = Describe("Extracting the demo supergraph", func() {
	var subgraphs *supergraph.Subgraphs
	var schemas map[string]*ast.Schema

	BeforeEach(func() {
		var err error
		subgraphs, err = supergraph.Extract(demoSupergraph)
		Expect(err).NotTo(HaveOccurred())

		schemas = map[string]*ast.Schema{}
		for _, sub := range subgraphs.All() {
			Expect(sub.SDL()).NotTo(ContainSubstring("join__"),
				"subgraph %s should carry no supergraph machinery", sub.Name)

			schema, err := gqlparser.LoadSchema(&ast.Source{
				Name:  sub.Name + ".graphql",
				Input: sub.SDL(),
			})
			Expect(err).NotTo(HaveOccurred(), "subgraph %s should reload as a valid schema", sub.Name)
			schemas[sub.Name] = schema
		}
	})

	It("splits the supergraph into one subgraph per registered service", func() {
		Expect(subgraphs.Names()).To(Equal([]string{"accounts", "inventory", "products", "reviews"}))

		Expect(subgraphs.Get("accounts").URL).To(Equal("http://accounts.demo.dev/graphql"))
		Expect(subgraphs.Get("inventory").URL).To(Equal("http://inventory.demo.dev/graphql"))
		Expect(subgraphs.Get("products").URL).To(Equal("http://products.demo.dev/graphql"))
		Expect(subgraphs.Get("reviews").URL).To(Equal("http://reviews.demo.dev/graphql"))
	})

	It("routes each field to the services that resolve it", func() {
		accounts := schemas["accounts"]
		Expect(accounts.Types["User"].Fields.ForName("name")).NotTo(BeNil())
		Expect(accounts.Types["User"].Fields.ForName("username")).NotTo(BeNil())
		Expect(accounts.Types["User"].Fields.ForName("reviews")).To(BeNil())
		Expect(accounts.Types["Product"]).To(BeNil())
		Expect(accounts.Types["Review"]).To(BeNil())

		products := schemas["products"]
		Expect(products.Types["Product"].Fields.ForName("name")).NotTo(BeNil())
		Expect(products.Types["Product"].Fields.ForName("price")).NotTo(BeNil())
		Expect(products.Types["Product"].Fields.ForName("inStock")).To(BeNil())
		topProducts := products.Query.Fields.ForName("topProducts")
		Expect(topProducts).NotTo(BeNil())
		Expect(topProducts.Arguments.ForName("first").DefaultValue.Raw).To(Equal("5"))

		inventory := schemas["inventory"]
		Expect(inventory.Types["Product"].Fields.ForName("inStock")).NotTo(BeNil())
		Expect(inventory.Types["Product"].Fields.ForName("shippingEstimate")).NotTo(BeNil())
		Expect(inventory.Types["Product"].Fields.ForName("name")).To(BeNil())
		Expect(inventory.Types["User"]).To(BeNil())

		reviews := schemas["reviews"]
		Expect(reviews.Types["Review"].Fields.ForName("author")).NotTo(BeNil())
		Expect(reviews.Types["Review"].Fields.ForName("product")).NotTo(BeNil())
		Expect(reviews.Types["User"].Fields.ForName("reviews")).NotTo(BeNil())
		Expect(reviews.Types["User"].Fields.ForName("name")).To(BeNil())
		Expect(reviews.Types["Product"].Fields.ForName("reviews")).NotTo(BeNil())
		Expect(reviews.Types["Product"].Fields.ForName("price")).To(BeNil())
	})

	It("translates join provenance into federation subgraph directives", func() {
		accounts := schemas["accounts"]
		key := accounts.Types["User"].Directives.ForName("federation__key")
		Expect(key).NotTo(BeNil())
		Expect(key.Arguments.ForName("fields").Value.Raw).To(Equal("id"))
		Expect(accounts.Types["User"].Fields.ForName("username").Directives.ForName("federation__external")).To(BeNil())

		inventory := schemas["inventory"]
		Expect(inventory.Types["Product"].Fields.ForName("price").Directives.ForName("federation__external")).NotTo(BeNil())
		Expect(inventory.Types["Product"].Fields.ForName("weight").Directives.ForName("federation__external")).NotTo(BeNil())
		requires := inventory.Types["Product"].Fields.ForName("shippingEstimate").Directives.ForName("federation__requires")
		Expect(requires).NotTo(BeNil())
		Expect(requires.Arguments.ForName("fields").Value.Raw).To(Equal("price weight"))

		products := schemas["products"]
		Expect(products.Types["Product"].Fields.ForName("upc").Directives.ForName("federation__shareable")).NotTo(BeNil())
		Expect(products.Types["Product"].Fields.ForName("name").Directives.ForName("federation__shareable")).To(BeNil())

		reviews := schemas["reviews"]
		provides := reviews.Types["Review"].Fields.ForName("author").Directives.ForName("federation__provides")
		Expect(provides).NotTo(BeNil())
		Expect(provides.Arguments.ForName("fields").Value.Raw).To(Equal("username"))
		Expect(reviews.Types["User"].Fields.ForName("username").Directives.ForName("federation__external")).NotTo(BeNil())
	})

	It("synthesizes the federation operation surface", func() {
		entityMembers := map[string][]string{
			"accounts":  {"User"},
			"inventory": {"Product"},
			"products":  {"Product"},
			"reviews":   {"User", "Product", "Review"},
		}

		for name, schema := range schemas {
			Expect(schema.Types["_Any"]).NotTo(BeNil(), "subgraph %s should define _Any", name)
			Expect(schema.Types["_Any"].Kind).To(Equal(ast.Scalar))

			service := schema.Types["_Service"]
			Expect(service).NotTo(BeNil(), "subgraph %s should define _Service", name)
			Expect(service.Fields.ForName("sdl").Type.String()).To(Equal("String"))

			Expect(schema.Types["_Entity"].Types).To(Equal(entityMembers[name]),
				"subgraph %s entity union", name)

			entities := schema.Query.Fields.ForName("_entities")
			Expect(entities).NotTo(BeNil(), "subgraph %s should expose _entities", name)
			Expect(entities.Type.String()).To(Equal("[_Entity]!"))
			Expect(entities.Arguments.ForName("representations").Type.String()).To(Equal("[_Any!]!"))

			serviceField := schema.Query.Fields.ForName("_service")
			Expect(serviceField).NotTo(BeNil(), "subgraph %s should expose _service", name)
			Expect(serviceField.Type.String()).To(Equal("_Service!"))
		}
	})

	It("recreates query roots removed by pruning", func() {
		// Neither inventory nor reviews resolves a query field of its
		// own, so their scaffolded Query shells are pruned and a fresh
		// root is synthesized for the federation operations.
		for _, name := range []string{"inventory", "reviews"} {
			schema := schemas[name]
			Expect(schema.Query).NotTo(BeNil(), "subgraph %s should have a query root", name)
			Expect(schema.Query.Fields.ForName("me")).To(BeNil())
			Expect(schema.Query.Fields.ForName("topProducts")).To(BeNil())
		}
	})

	It("produces identical output across runs", func() {
		again, err := supergraph.Extract(demoSupergraph)
		Expect(err).NotTo(HaveOccurred())

		for _, name := range subgraphs.Names() {
			Expect(again.Get(name).SDL()).To(Equal(subgraphs.Get(name).SDL()),
				"subgraph %s should extract identically", name)
		}
	})
})
