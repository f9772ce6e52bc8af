package domain

// Role is embedded in a Person.
type Role struct {
	Text string `json:"text" bson:"text"`
}

// Dependent is embedded in a Person.
type Dependent struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// Person owns its roles and dependents; neither has an identity of its own.
type Person struct {
	ID         string      `json:"_id" bson:"_id,omitempty"`
	FirstName  string      `json:"firstName" bson:"firstName"`
	LastName   string      `json:"lastName" bson:"lastName"`
	BirthDate  string      `json:"birthDate" bson:"birthDate"`
	Roles      []Role      `json:"roles" bson:"roles"`
	Dependents []Dependent `json:"dependents" bson:"dependents"`
}
