// Package payment creates payment intents with an external gateway.
package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Gateway creates a payment intent for an amount in minor currency units and
// returns the client secret the browser uses to complete the payment.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// Stripe is a Gateway backed by the Stripe API.
type Stripe struct {
	api *client.API
}

// NewStripe builds a Stripe client whose HTTP calls are traced and whose
// library logs go through log.
func NewStripe(secretKey string, log zerolog.Logger) *Stripe {
	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	// GetBackendWithConfig fills in the config, so each backend needs its own.
	backend := func(t stripe.SupportedBackend) stripe.Backend {
		return stripe.GetBackendWithConfig(t, &stripe.BackendConfig{
			HTTPClient:    httpClient,
			LeveledLogger: &leveledLogger{log: log},
		})
	}
	backends := &stripe.Backends{
		API:     backend(stripe.APIBackend),
		Connect: backend(stripe.ConnectBackend),
		Uploads: backend(stripe.UploadsBackend),
	}
	return &Stripe{api: client.New(secretKey, backends)}
}

var _ Gateway = (*Stripe)(nil)

func (s *Stripe) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) && se.Msg != "" {
			return "", errors.New(se.Msg)
		}
		return "", err
	}
	return pi.ClientSecret, nil
}

// leveledLogger adapts zerolog to stripe.LeveledLoggerInterface.
type leveledLogger struct {
	log zerolog.Logger
}

func (l *leveledLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
func (l *leveledLogger) Infof(format string, v ...interface{})  { l.log.Info().Msgf(format, v...) }
func (l *leveledLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l *leveledLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
