package service

import (
	"context"
	"math"

	"scholarstream/internal/apperror"
	"scholarstream/internal/payment"
)

// PaymentService starts card payments for application fees.
type PaymentService interface {
	// CreateIntent converts price to cents and returns the gateway's client secret.
	CreateIntent(ctx context.Context, price *float64) (string, error)
}

type paymentService struct {
	gateway  payment.Gateway
	currency string
}

// NewPaymentService returns a PaymentService. A nil gateway means payments
// are not configured and every call fails as misconfigured.
func NewPaymentService(gateway payment.Gateway, currency string) PaymentService {
	return &paymentService{gateway: gateway, currency: currency}
}

func (s *paymentService) CreateIntent(ctx context.Context, price *float64) (string, error) {
	if price == nil || *price <= 0 || math.IsNaN(*price) || math.IsInf(*price, 0) {
		return "", apperror.BadRequest("Invalid price amount")
	}
	// Amounts must fit in int64 cents.
	amount := math.Round(*price * 100)
	if amount >= math.MaxInt64 {
		return "", apperror.BadRequest("Invalid price amount")
	}
	if s.gateway == nil {
		return "", apperror.Misconfigured("Server error: STRIPE_SECRET_KEY not configured")
	}

	cents := int64(amount)
	secret, err := s.gateway.CreateIntent(ctx, cents, s.currency)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return secret, nil
}
