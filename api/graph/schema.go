package graph

// Schema is the service's GraphQL SDL, parsed once at boot.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

scalar Time

type Query {
	getInventories(search: InventorySearchInput, filter: InventoryFilterInput, sort: InventorySortInput, pagination: PaginationInput): [Inventory!]!
	getCategories: [Category!]!
	getOrders(skip: Int, take: Int): [Order!]!
	findOrder(orderId: ID!): Order!
}

type Mutation {
	createInventory(input: CreateInventoryInput!): Inventory!
	updateInventory(input: UpdateInventoryInput!): Inventory!
	bulkUpdateInventory(inputs: [UpdateInventoryInput!]!): [Inventory!]!
	deleteInventory(productId: ID!): Boolean!
	createOrder(input: CreateOrderInput!): Order!
}

type Inventory {
	productId: ID!
	name: String!
	quantity: Int!
	inStock: Boolean!
	totalOrders: Int!
	category: Category
	subCategory: SubCategory
	orders: [Order!]!
}

type Category {
	id: ID!
	name: String!
	subCategories: [SubCategory!]!
}

type SubCategory {
	id: ID!
	name: String!
	categoryId: ID!
}

type Order {
	orderId: ID!
	productId: ID!
	currency: String!
	quantity: Int!
	shippingCost: Float!
	amount: Float!
	channel: String!
	channelGroup: String!
	campaign: String!
	dateTime: Time!
}

input InventorySearchInput {
	name: String
}

input InventoryFilterInput {
	category: String
	subCategory: String
	inStock: Boolean
}

enum InventorySortField {
	quantity
	totalOrders
}

enum SortDirection {
	asc
	desc
}

input InventorySortInput {
	sortBy: InventorySortField!
	orderBy: SortDirection!
}

input PaginationInput {
	page: Int
	pageSize: Int
}

input CreateInventoryInput {
	name: String!
	quantity: Int!
	categoryId: ID!
	subCategoryId: ID!
}

input UpdateInventoryInput {
	productId: ID!
	name: String
	quantity: Int
	categoryId: ID
	subCategoryId: ID
}

input CreateOrderInput {
	productId: ID!
	currency: String!
	quantity: Int!
	shippingCost: Float!
	amount: Float!
	channel: String!
	channelGroup: String!
	campaign: String!
	dateTime: Time!
}
`
