package domain

// LineItem is a single invoiced product.
type LineItem struct {
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Invoice is embedded in a Customer.
type Invoice struct {
	Subtotal    float64    `json:"subtotal" bson:"subtotal"`
	Tax         float64    `json:"tax" bson:"tax"`
	DateCreated string     `json:"dateCreated" bson:"dateCreated"`
	DateShipped string     `json:"dateShipped" bson:"dateShipped"`
	LineItems   []LineItem `json:"lineItems" bson:"lineItems"`
}

// Customer represents a shopper keyed by userName.
type Customer struct {
	ID        string    `json:"_id" bson:"_id,omitempty"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" bson:"lastName"`
	UserName  string    `json:"userName" bson:"userName"`
	Invoices  []Invoice `json:"invoices" bson:"invoices"`
}

const (
	// UserNameField is the unique lookup key for customers and users.
	UserNameField = "userName"
	// CustomerInvoicesField is the document field holding invoices.
	CustomerInvoicesField = "invoices"
)
