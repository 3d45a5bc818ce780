package settlement

import (
	"errors"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/tradeloot/goapi/base/ctx"
)

// evmLedger confirms settlement transactions by receipt lookup on an
// EVM rpc endpoint.
type evmLedger struct {
	client *ethclient.Client
}

func NewEvmLedger(rawurl string) (Ledger, error) {
	client, err := ethclient.Dial(rawurl)
	if err != nil {
		return nil, xerrors.Errorf("dial %s: %w", rawurl, err)
	}
	return &evmLedger{client: client}, nil
}

func (l *evmLedger) ConfirmTransaction(c ctx.Ctx, ref string) (bool, error) {
	receipt, err := l.client.TransactionReceipt(c, common.HexToHash(ref))
	if errors.Is(err, ethereum.NotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return receipt.Status == types.ReceiptStatusSuccessful, nil
}
