package customer

import (
	"context"

	"records-api/internal/domain"
)

// Repository persists customers and their embedded invoices.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Customer, error)
	AddInvoice(ctx context.Context, userName string, inv domain.Invoice) (*domain.Customer, error)
}
