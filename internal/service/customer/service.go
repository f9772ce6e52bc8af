package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"records-api/internal/domain"
	custrepo "records-api/internal/repository/customer"
)

// Service manages customers and the invoices embedded in them.
type Service struct {
	repo custrepo.Repository
}

func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new customer with no invoices. A taken userName yields
// domain.ErrUserNameTaken.
func (s *Service) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	switch {
	case blank(c.FirstName):
		return nil, domain.NewValidationError("firstName", "is required")
	case blank(c.LastName):
		return nil, domain.NewValidationError("lastName", "is required")
	case blank(c.UserName):
		return nil, domain.NewValidationError("userName", "is required")
	}
	c.Invoices = []domain.Invoice{}

	created, err := s.repo.Create(ctx, c)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, domain.ErrUserNameTaken
	}
	return created, err
}

func (s *Service) Get(ctx context.Context, userName string) (*domain.Customer, error) {
	return s.repo.GetByUserName(ctx, userName)
}

// AddInvoice appends inv to the customer's invoices and returns the stored invoice.
func (s *Service) AddInvoice(ctx context.Context, userName string, inv domain.Invoice) (*domain.Invoice, error) {
	inv, err := normalizeInvoice(inv)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.AddInvoice(ctx, userName, inv)
	if err != nil {
		return nil, err
	}
	if len(c.Invoices) == 0 {
		return &inv, nil
	}
	last := c.Invoices[len(c.Invoices)-1]
	if last.LineItems == nil {
		last.LineItems = []domain.LineItem{}
	}
	return &last, nil
}

// Invoices lists the customer's invoices in insertion order.
func (s *Service) Invoices(ctx context.Context, userName string) ([]domain.Invoice, error) {
	c, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Invoice, 0, len(c.Invoices))
	for _, inv := range c.Invoices {
		if inv.LineItems == nil {
			inv.LineItems = []domain.LineItem{}
		}
		out = append(out, inv)
	}
	return out, nil
}

func normalizeInvoice(inv domain.Invoice) (domain.Invoice, error) {
	switch {
	case blank(inv.DateCreated):
		return inv, domain.NewValidationError("dateCreated", "is required")
	case inv.Subtotal < 0:
		return inv, domain.NewValidationError("subtotal", "must not be negative")
	case inv.Tax < 0:
		return inv, domain.NewValidationError("tax", "must not be negative")
	}

	items := make([]domain.LineItem, 0, len(inv.LineItems))
	for i, li := range inv.LineItems {
		switch {
		case blank(li.Name):
			return inv, domain.NewValidationError(fmt.Sprintf("lineItems[%d].name", i), "is required")
		case li.Price < 0:
			return inv, domain.NewValidationError(fmt.Sprintf("lineItems[%d].price", i), "must not be negative")
		case li.Quantity < 0:
			return inv, domain.NewValidationError(fmt.Sprintf("lineItems[%d].quantity", i), "must not be negative")
		}
		items = append(items, li)
	}
	inv.LineItems = items
	return inv, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
