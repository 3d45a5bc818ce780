package settlement

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
)

var mockCtx = ctx.Background()

func TestCreatePaymentRequirements(t *testing.T) {
	im := NewMock(&Config{Network: "base", Asset: "0xusdc"})

	cases := []struct {
		price  string
		amount string
	}{
		{"10.25", "10250000"},
		{"0.10", "100000"},
		{"0.000001", "1"},
		{"1", "1000000"},
		{"0.0000019", "1"},
	}
	for _, tc := range cases {
		price, err := decimal.NewFromString(tc.price)
		require.NoError(t, err)

		reqs, err := im.CreatePaymentRequirements(mockCtx, &domain.CreatePaymentRequirementsParams{
			PriceUSDC:    price,
			SellerWallet: "0xSeller",
			Resource:     "/api/listings/abc/purchase",
			Description:  "Purchase sword",
		})
		require.NoError(t, err)
		require.Equal(t, tc.amount, reqs.MaxAmountRequired, "price %s", tc.price)
		require.Equal(t, domain.PaymentSchemeExact, reqs.Scheme)
		require.Equal(t, "base", reqs.Network)
		require.Equal(t, "0xusdc", reqs.Asset)
		require.Equal(t, "0xSeller", reqs.PayTo)
		require.Equal(t, domain.PaymentMaxTimeoutSeconds, reqs.MaxTimeoutSeconds)
		require.Equal(t, "/api/listings/abc/purchase", reqs.Resource)
	}
}

func TestMockVerifyPayment(t *testing.T) {
	im := NewMock(&Config{Network: "base"})

	res, err := im.VerifyPayment(mockCtx, &domain.VerifyPaymentParams{
		ExpectedAmount:    decimal.NewFromFloat(10.25),
		ExpectedRecipient: "0xSeller",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(res.TxHash), "mock-tx-"))
	require.Equal(t, "base", res.NetworkId)

	// hashes are unique per settlement
	res2, err := im.VerifyPayment(mockCtx, &domain.VerifyPaymentParams{
		ExpectedAmount: decimal.NewFromFloat(10.25),
	})
	require.NoError(t, err)
	require.NotEqual(t, res.TxHash, res2.TxHash)
}
