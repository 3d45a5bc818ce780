package settlement

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/service/settlement/mocks"
)

func makeHeader(t *testing.T, payload domain.PaymentPayload) string {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func validPayload() domain.PaymentPayload {
	return domain.PaymentPayload{
		X402Version: 1,
		Scheme:      domain.PaymentSchemeExact,
		Network:     "base",
		Payload: domain.ExactPaymentProof{
			Signature: "0xabc123",
			From:      "0xBuyer",
			To:        "0xseller",
			Amount:    "10250000",
			Mint:      "0xusdc",
		},
	}
}

func chainConfig() *Config {
	return &Config{
		Network:         "base",
		Asset:           "0xusdc",
		PollInterval:    time.Millisecond,
		MaxPollAttempts: 3,
	}
}

func verifyParams() *domain.VerifyPaymentParams {
	return &domain.VerifyPaymentParams{
		ExpectedAmount:    decimal.NewFromFloat(10.25),
		ExpectedRecipient: "0xSeller",
	}
}

func TestChainVerifyPayment(t *testing.T) {
	ledger := &mocks.Ledger{}
	ledger.On("ConfirmTransaction", mock.Anything, "0xabc123").Return(true, nil).Once()

	im := NewChain(chainConfig(), ledger)

	params := verifyParams()
	params.PaymentHeader = makeHeader(t, validPayload())
	res, err := im.VerifyPayment(mockCtx, params)
	require.NoError(t, err)
	require.Equal(t, domain.TxHash("0xabc123"), res.TxHash)
	require.Equal(t, "base", res.NetworkId)
	ledger.AssertExpectations(t)
}

func TestChainVerifyPaymentEventualConfirmation(t *testing.T) {
	ledger := &mocks.Ledger{}
	ledger.On("ConfirmTransaction", mock.Anything, "0xabc123").Return(false, nil).Twice()
	ledger.On("ConfirmTransaction", mock.Anything, "0xabc123").Return(true, nil).Once()

	im := NewChain(chainConfig(), ledger)

	params := verifyParams()
	params.PaymentHeader = makeHeader(t, validPayload())
	res, err := im.VerifyPayment(mockCtx, params)
	require.NoError(t, err)
	require.Equal(t, domain.TxHash("0xabc123"), res.TxHash)
	ledger.AssertExpectations(t)
}

func TestChainVerifyPaymentNeverConfirmed(t *testing.T) {
	ledger := &mocks.Ledger{}
	ledger.On("ConfirmTransaction", mock.Anything, "0xabc123").Return(false, nil).Times(3)

	im := NewChain(chainConfig(), ledger)

	params := verifyParams()
	params.PaymentHeader = makeHeader(t, validPayload())
	_, err := im.VerifyPayment(mockCtx, params)
	require.ErrorIs(t, err, domain.ErrPaymentFailed)
	ledger.AssertExpectations(t)
}

func TestChainVerifyPaymentBadHeader(t *testing.T) {
	im := NewChain(chainConfig(), &mocks.Ledger{})

	params := verifyParams()
	params.PaymentHeader = "not-base64!!!"
	_, err := im.VerifyPayment(mockCtx, params)
	require.ErrorIs(t, err, domain.ErrInvalidPayment)
}

func TestChainVerifyPaymentWrongScheme(t *testing.T) {
	im := NewChain(chainConfig(), &mocks.Ledger{})

	payload := validPayload()
	payload.Scheme = "stream"
	params := verifyParams()
	params.PaymentHeader = makeHeader(t, payload)
	_, err := im.VerifyPayment(mockCtx, params)
	require.ErrorIs(t, err, domain.ErrInvalidPayment)
}

func TestChainVerifyPaymentAmountMismatch(t *testing.T) {
	im := NewChain(chainConfig(), &mocks.Ledger{})

	payload := validPayload()
	payload.Payload.Amount = "10240000"
	params := verifyParams()
	params.PaymentHeader = makeHeader(t, payload)
	_, err := im.VerifyPayment(mockCtx, params)
	require.ErrorIs(t, err, domain.ErrPaymentFailed)
}

func TestChainVerifyPaymentWrongRecipient(t *testing.T) {
	im := NewChain(chainConfig(), &mocks.Ledger{})

	payload := validPayload()
	payload.Payload.To = "0xSomeoneElse"
	params := verifyParams()
	params.PaymentHeader = makeHeader(t, payload)
	_, err := im.VerifyPayment(mockCtx, params)
	require.ErrorIs(t, err, domain.ErrPaymentFailed)
}

func TestChainVerifyPaymentWrongAsset(t *testing.T) {
	im := NewChain(chainConfig(), &mocks.Ledger{})

	payload := validPayload()
	payload.Payload.Mint = "0xother"
	params := verifyParams()
	params.PaymentHeader = makeHeader(t, payload)
	_, err := im.VerifyPayment(mockCtx, params)
	require.ErrorIs(t, err, domain.ErrPaymentFailed)
}
