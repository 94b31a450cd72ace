package cart

import (
	"context"
	"fmt"
	"strings"

	"eventify/models"
	"eventify/services/recommend"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultCartService implements CartService on top of a CartStore.
type DefaultCartService struct {
	Store    CartStore
	Payments PaymentGateway
	Currency string
	Logger   *zap.Logger
}

func NewCartService(store CartStore, payments PaymentGateway, currency string, logger *zap.Logger) *DefaultCartService {
	return &DefaultCartService{Store: store, Payments: payments, Currency: currency, Logger: logger}
}

func (s *DefaultCartService) Get(ctx context.Context, userID string) ([]models.Service, error) {
	items, err := s.Store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return items, nil
}

// CheckoutPackage replaces the cart with the items of a recommended package.
func (s *DefaultCartService) CheckoutPackage(ctx context.Context, userID string, items []models.Service) ([]models.Service, error) {
	cart := make([]models.Service, 0, len(items))
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
		if !contains(cart, item.ID) {
			cart = append(cart, item)
		}
	}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Add appends svc unless a service with the same id is already in the cart.
func (s *DefaultCartService) Add(ctx context.Context, userID string, svc models.Service) ([]models.Service, error) {
	if err := validateItem(svc); err != nil {
		return nil, err
	}
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if contains(cart, svc.ID) {
		return cart, nil
	}
	cart = append(cart, svc)
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *DefaultCartService) Remove(ctx context.Context, userID, serviceID string) ([]models.Service, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := cart[:0]
	for _, item := range cart {
		if item.ID != serviceID {
			kept = append(kept, item)
		}
	}
	if err := s.save(ctx, userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *DefaultCartService) Clear(ctx context.Context, userID string) error {
	if err := s.Store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Total sums the numeric prices of items.
func (s *DefaultCartService) Total(items []models.Service) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromInt(recommend.ParsePrice(item.Price)))
	}
	return total
}

// Pay opens a payment for the cart total and empties the cart once the
// gateway accepts it.
func (s *DefaultCartService) Pay(ctx context.Context, userID string) (*models.Invoice, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	total := s.Total(cart)
	names := make([]string, 0, len(cart))
	for _, item := range cart {
		names = append(names, item.Name)
	}
	invoice, err := s.Payments.CreatePayment(ctx, models.PaymentRequest{
		UserID:      userID,
		AmountCents: total.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency:    s.Currency,
		Description: "Event package: " + strings.Join(names, ", "),
		Metadata:    map[string]string{"items": fmt.Sprint(len(cart))},
	})
	if err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}
	invoice.Items = cart

	if err := s.Clear(ctx, userID); err != nil {
		s.Logger.Warn("cart not cleared after payment", zap.String("userID", userID), zap.Error(err))
	}
	return invoice, nil
}

func (s *DefaultCartService) save(ctx context.Context, userID string, items []models.Service) error {
	if err := s.Store.Save(ctx, userID, items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func validateItem(svc models.Service) error {
	if strings.TrimSpace(svc.ID) == "" || strings.TrimSpace(svc.Name) == "" {
		return ErrInvalidService
	}
	return nil
}

func contains(items []models.Service, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}
