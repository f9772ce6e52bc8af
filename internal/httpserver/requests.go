package httpserver

import "records-api/internal/domain"

type composerRequest struct {
	FirstName string `json:"firstName" binding:"required,notblank"`
	LastName  string `json:"lastName" binding:"required,notblank"`
}

func (r composerRequest) toDomain() domain.Composer {
	return domain.Composer{FirstName: r.FirstName, LastName: r.LastName}
}

type roleRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}

type dependentRequest struct {
	FirstName string `json:"firstName" binding:"required,notblank"`
	LastName  string `json:"lastName" binding:"required,notblank"`
}

type personRequest struct {
	FirstName  string             `json:"firstName" binding:"required,notblank"`
	LastName   string             `json:"lastName" binding:"required,notblank"`
	BirthDate  string             `json:"birthDate"`
	Roles      []roleRequest      `json:"roles" binding:"dive"`
	Dependents []dependentRequest `json:"dependents" binding:"dive"`
}

func (r personRequest) toDomain() domain.Person {
	p := domain.Person{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		BirthDate:  r.BirthDate,
		Roles:      make([]domain.Role, 0, len(r.Roles)),
		Dependents: make([]domain.Dependent, 0, len(r.Dependents)),
	}
	for _, role := range r.Roles {
		p.Roles = append(p.Roles, domain.Role{Text: role.Text})
	}
	for _, d := range r.Dependents {
		p.Dependents = append(p.Dependents, domain.Dependent{FirstName: d.FirstName, LastName: d.LastName})
	}
	return p
}

type playerRequest struct {
	FirstName string   `json:"firstName" binding:"required,notblank"`
	LastName  string   `json:"lastName" binding:"required,notblank"`
	Salary    *float64 `json:"salary" binding:"required,min=0"`
}

func (r playerRequest) toDomain() domain.Player {
	return domain.Player{FirstName: r.FirstName, LastName: r.LastName, Salary: *r.Salary}
}

type teamRequest struct {
	Name    string          `json:"name" binding:"required,notblank"`
	Mascot  string          `json:"mascot"`
	Players []playerRequest `json:"players" binding:"dive"`
}

func (r teamRequest) toDomain() domain.Team {
	t := domain.Team{Name: r.Name, Mascot: r.Mascot, Players: make([]domain.Player, 0, len(r.Players))}
	for _, p := range r.Players {
		t.Players = append(t.Players, p.toDomain())
	}
	return t
}

type customerRequest struct {
	FirstName string `json:"firstName" binding:"required,notblank"`
	LastName  string `json:"lastName" binding:"required,notblank"`
	UserName  string `json:"userName" binding:"required,notblank"`
}

func (r customerRequest) toDomain() domain.Customer {
	return domain.Customer{FirstName: r.FirstName, LastName: r.LastName, UserName: r.UserName}
}

type lineItemRequest struct {
	Name     string   `json:"name" binding:"required,notblank"`
	Price    *float64 `json:"price" binding:"required,min=0"`
	Quantity *int     `json:"quantity" binding:"required,min=0"`
}

type invoiceRequest struct {
	Subtotal    *float64          `json:"subtotal" binding:"required,min=0"`
	Tax         *float64          `json:"tax" binding:"required,min=0"`
	DateCreated string            `json:"dateCreated" binding:"required,notblank"`
	DateShipped string            `json:"dateShipped"`
	LineItems   []lineItemRequest `json:"lineItems" binding:"required,dive"`
}

func (r invoiceRequest) toDomain() domain.Invoice {
	inv := domain.Invoice{
		Subtotal:    *r.Subtotal,
		Tax:         *r.Tax,
		DateCreated: r.DateCreated,
		DateShipped: r.DateShipped,
		LineItems:   make([]domain.LineItem, 0, len(r.LineItems)),
	}
	for _, li := range r.LineItems {
		inv.LineItems = append(inv.LineItems, domain.LineItem{Name: li.Name, Price: *li.Price, Quantity: *li.Quantity})
	}
	return inv
}

type signupRequest struct {
	UserName     string `json:"userName" binding:"required,notblank"`
	Password     string `json:"password" binding:"required,max=72"`
	EmailAddress string `json:"emailAddress" binding:"required,email"`
}

type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type invoiceAddedResponse struct {
	Message    string         `json:"message"`
	NewInvoice domain.Invoice `json:"newInvoice"`
}
