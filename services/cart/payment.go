package cart

import (
	"context"
	"fmt"
	"time"

	"eventify/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway creates payment intents; the client confirms them with the
// returned client secret. stripe.Key must be set at startup.
type StripeGateway struct {
	logger *zap.Logger
}

func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

func (g *StripeGateway) CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %d", req.AmountCents)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.AmountCents),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("userID", req.UserID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error("stripe payment intent failed", zap.String("userID", req.UserID), zap.Error(err))
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	g.logger.Info("payment intent created", zap.String("userID", req.UserID), zap.String("paymentID", pi.ID))
	return &models.Invoice{
		InvoiceID:    uuid.New().String(),
		UserID:       req.UserID,
		Amount:       decimal.New(req.AmountCents, -2).StringFixed(2),
		Currency:     req.Currency,
		PaymentID:    pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		CreatedAt:    time.Now(),
	}, nil
}
