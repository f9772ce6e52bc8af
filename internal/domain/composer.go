package domain

// Composer is a stored composer document.
type Composer struct {
	ID        string `json:"_id" bson:"_id,omitempty"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}
