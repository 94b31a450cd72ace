package cart

import (
	"context"
	"errors"

	"eventify/models"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart      = errors.New("your cart is empty")
	ErrInvalidService = errors.New("service id and name are required")
)

// CartStore persists one cart per user.
type CartStore interface {
	Load(ctx context.Context, userID string) ([]models.Service, error)
	Save(ctx context.Context, userID string, items []models.Service) error
	Delete(ctx context.Context, userID string) error
}

// PaymentGateway charges a cart total.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// CartService is the checkout screen's backend.
type CartService interface {
	Get(ctx context.Context, userID string) ([]models.Service, error)
	CheckoutPackage(ctx context.Context, userID string, items []models.Service) ([]models.Service, error)
	Add(ctx context.Context, userID string, svc models.Service) ([]models.Service, error)
	Remove(ctx context.Context, userID, serviceID string) ([]models.Service, error)
	Clear(ctx context.Context, userID string) error
	Total(items []models.Service) decimal.Decimal
	Pay(ctx context.Context, userID string) (*models.Invoice, error)
}
