package settlement

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
)

var timeNow = time.Now

// mockImpl is the development payment adapter. Every verification
// succeeds and settles against a synthetic transaction hash, which
// keeps the full purchase flow exercisable with no payment rail.
type mockImpl struct {
	cfg *Config
}

func NewMock(cfg *Config) domain.PaymentAdapter {
	return &mockImpl{cfg: cfg}
}

func (im *mockImpl) CreatePaymentRequirements(c ctx.Ctx, params *domain.CreatePaymentRequirementsParams) (*domain.PaymentRequirements, error) {
	return makePaymentRequirements(im.cfg, params), nil
}

func (im *mockImpl) VerifyPayment(c ctx.Ctx, params *domain.VerifyPaymentParams) (*domain.VerifyPaymentResult, error) {
	txHash := newMockTxHash()
	c.WithFields(log.Fields{
		"txHash": txHash,
		"amount": params.ExpectedAmount,
	}).Info("mock payment verified")
	return &domain.VerifyPaymentResult{
		TxHash:    txHash,
		NetworkId: im.cfg.Network,
	}, nil
}

func newMockTxHash() domain.TxHash {
	rnd := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return domain.TxHash(fmt.Sprintf("mock-tx-%d-%s", timeNow().UnixMilli(), rnd))
}
