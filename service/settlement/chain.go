package settlement

import (
	"github.com/tradeloot/goapi/base/backoff"
	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
)

// chainImpl verifies x402 payment proofs against a real ledger. The
// proof fields are validated locally first; only a proof that matches
// the expected amount, recipient and asset reaches the ledger poll.
type chainImpl struct {
	cfg    *Config
	ledger Ledger
}

func NewChain(cfg *Config, ledger Ledger) domain.PaymentAdapter {
	return &chainImpl{cfg: cfg, ledger: ledger}
}

func (im *chainImpl) CreatePaymentRequirements(c ctx.Ctx, params *domain.CreatePaymentRequirementsParams) (*domain.PaymentRequirements, error) {
	return makePaymentRequirements(im.cfg, params), nil
}

func (im *chainImpl) VerifyPayment(c ctx.Ctx, params *domain.VerifyPaymentParams) (*domain.VerifyPaymentResult, error) {
	payload, err := decodePaymentHeader(params.PaymentHeader)
	if err != nil {
		c.WithField("err", err).Warn("failed to decode payment header")
		return nil, err
	}

	if payload.Scheme != domain.PaymentSchemeExact {
		return nil, domain.ErrInvalidPayment.WithMessagef("unsupported payment scheme %q", payload.Scheme)
	}
	if im.cfg.Network != "" && payload.Network != im.cfg.Network {
		return nil, domain.ErrInvalidPayment.WithMessagef("unsupported payment network %q", payload.Network)
	}

	proof := payload.Payload
	if proof.Signature == "" {
		return nil, domain.ErrInvalidPayment.WithMessagef("missing settlement signature")
	}
	if expected := domain.UsdcBaseUnits(params.ExpectedAmount); proof.Amount != expected {
		return nil, domain.ErrPaymentFailed.WithMessagef("amount %s does not match required %s", proof.Amount, expected)
	}
	if !params.ExpectedRecipient.IsEmpty() && !params.ExpectedRecipient.Equals(domain.WalletAddress(proof.To)) {
		return nil, domain.ErrPaymentFailed.WithMessagef("recipient %s does not match seller wallet", proof.To)
	}
	if im.cfg.Asset != "" && proof.Mint != im.cfg.Asset {
		return nil, domain.ErrPaymentFailed.WithMessagef("asset %s is not the settlement token", proof.Mint)
	}

	if err := im.awaitConfirmation(c, proof.Signature); err != nil {
		return nil, err
	}

	return &domain.VerifyPaymentResult{
		TxHash:    domain.TxHash(proof.Signature),
		NetworkId: payload.Network,
	}, nil
}

// awaitConfirmation polls the ledger a fixed number of times at a fixed
// interval. Transient ledger errors count as a failed attempt rather
// than aborting the loop.
func (im *chainImpl) awaitConfirmation(c ctx.Ctx, ref string) error {
	attempts := im.cfg.maxPollAttempts()
	bo := backoff.NewConstant(im.cfg.pollInterval())

	for attempt := 0; attempt < attempts; attempt++ {
		confirmed, err := im.ledger.ConfirmTransaction(c, ref)
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"ref":     ref,
				"attempt": attempt,
			}).Warn("ledger confirmation attempt failed")
		} else if confirmed {
			return nil
		}

		if attempt < attempts-1 {
			if err := bo.Backoff(c); err != nil {
				return domain.ErrPaymentFailed.WithCause(err)
			}
		}
	}
	return domain.ErrPaymentFailed.WithMessagef("transaction %s not confirmed after %d attempts", ref, attempts)
}
