package domain

import (
	"github.com/shopspring/decimal"

	"github.com/tradeloot/goapi/base/ctx"
)

const (
	// PaymentSchemeExact is the only supported x402 payment scheme.
	PaymentSchemeExact = "exact"

	// PaymentMaxTimeoutSeconds is the fixed x402 payment window.
	PaymentMaxTimeoutSeconds = 300

	// UsdcDecimals is the fixed-point precision of the settlement asset.
	UsdcDecimals = 6
)

// PaymentRequirements is the machine-readable x402 payload returned with
// a 402 response.
type PaymentRequirements struct {
	Scheme            string `json:"scheme"`
	Network           string `json:"network"`
	MaxAmountRequired string `json:"maxAmountRequired"`
	Resource          string `json:"resource"`
	Description       string `json:"description"`
	MimeType          string `json:"mimeType"`
	PayTo             string `json:"payTo"`
	MaxTimeoutSeconds int    `json:"maxTimeoutSeconds"`
	Asset             string `json:"asset"`
}

// PaymentPayload is the decoded X-Payment header body.
type PaymentPayload struct {
	X402Version int               `json:"x402Version"`
	Scheme      string            `json:"scheme"`
	Network     string            `json:"network"`
	Payload     ExactPaymentProof `json:"payload"`
}

// ExactPaymentProof carries the scheme="exact" settlement proof fields.
type ExactPaymentProof struct {
	Signature string `json:"signature"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Mint      string `json:"mint"`
}

type CreatePaymentRequirementsParams struct {
	PriceUSDC    decimal.Decimal
	SellerWallet WalletAddress
	Resource     string
	Description  string
}

type VerifyPaymentParams struct {
	PaymentHeader     string
	ExpectedAmount    decimal.Decimal
	ExpectedRecipient WalletAddress
}

type VerifyPaymentResult struct {
	TxHash    TxHash `json:"txHash"`
	NetworkId string `json:"networkId"`
}

// PaymentAdapter produces payment requirements and verifies submitted
// payment proofs. A stand-in implementation that always succeeds is a
// conformant replacement for the on-chain one in every environment.
type PaymentAdapter interface {
	CreatePaymentRequirements(c ctx.Ctx, params *CreatePaymentRequirementsParams) (*PaymentRequirements, error)
	VerifyPayment(c ctx.Ctx, params *VerifyPaymentParams) (*VerifyPaymentResult, error)
}

// UsdcBaseUnits renders a USDC price as an integer string in the
// smallest currency unit, i.e. floor(price * 10^6). The conversion is
// exact for every price representable as a decimal.
func UsdcBaseUnits(price decimal.Decimal) string {
	return price.Shift(UsdcDecimals).Floor().String()
}
