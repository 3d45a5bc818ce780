package settlement

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
)

const (
	defaultPollInterval    = 2 * time.Second
	defaultMaxPollAttempts = 10

	requirementsMimeType = "application/json"
)

// Ledger reads settlement transaction state from the payment network.
type Ledger interface {
	// ConfirmTransaction reports whether ref identifies a finalized,
	// successful transaction. A ref that is not yet visible returns
	// (false, nil) so the caller can poll again.
	ConfirmTransaction(c ctx.Ctx, ref string) (bool, error)
}

// Config carries the payment rail identity shared by every adapter.
type Config struct {
	// Network is the x402 network id, e.g. "solana".
	Network string

	// Asset is the settlement token mint address.
	Asset string

	// PollInterval and MaxPollAttempts bound the ledger confirmation
	// loop. The loop always runs a fixed number of fixed-interval
	// attempts and then gives up.
	PollInterval    time.Duration
	MaxPollAttempts int
}

func (cfg *Config) pollInterval() time.Duration {
	if cfg.PollInterval <= 0 {
		return defaultPollInterval
	}
	return cfg.PollInterval
}

func (cfg *Config) maxPollAttempts() int {
	if cfg.MaxPollAttempts <= 0 {
		return defaultMaxPollAttempts
	}
	return cfg.MaxPollAttempts
}

// makePaymentRequirements renders the x402 requirements for a price.
// The amount is the exact integer base-unit rendering of the price.
func makePaymentRequirements(cfg *Config, params *domain.CreatePaymentRequirementsParams) *domain.PaymentRequirements {
	return &domain.PaymentRequirements{
		Scheme:            domain.PaymentSchemeExact,
		Network:           cfg.Network,
		MaxAmountRequired: domain.UsdcBaseUnits(params.PriceUSDC),
		Resource:          params.Resource,
		Description:       params.Description,
		MimeType:          requirementsMimeType,
		PayTo:             string(params.SellerWallet),
		MaxTimeoutSeconds: domain.PaymentMaxTimeoutSeconds,
		Asset:             cfg.Asset,
	}
}

// decodePaymentHeader parses the base64 encoded X-Payment header value.
func decodePaymentHeader(header string) (*domain.PaymentPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return nil, domain.ErrInvalidPayment.WithCause(err)
	}
	payload := &domain.PaymentPayload{}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, domain.ErrInvalidPayment.WithCause(err)
	}
	return payload, nil
}
