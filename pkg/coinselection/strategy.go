package coinselection

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mgharebaghi/cc-transaction/pkg/common"
	"github.com/mgharebaghi/cc-transaction/pkg/keys"
)

var (
	// ErrInsufficientFunds is returned by strict strategies when the
	// supplied UTXO set cannot cover the requested value plus fee.
	ErrInsufficientFunds = errors.New("not enough unspent value")

	// ErrNoInputs is returned when the ledger supplied no UTXOs at all.
	ErrNoInputs = errors.New("no utxos supplied")
)

// OutputStrategy decides the output side of a transaction. The UTXO
// set is not selected here from a larger pool - it is whatever the
// ledger already returned for the requested value; a strategy only
// shapes the produced outputs (payment and, when warranted, change).
type OutputStrategy interface {
	SelectOutputs(
		utxos []*common.UTXO,
		value decimal.Decimal,
		fee decimal.Decimal,
		sender keys.PublicKey,
		recipient keys.PublicKey,
	) ([]*common.Unspent, error)
}

// NeedsChange reports whether the UTXO set carries more value than the
// requested amount plus fee, i.e. whether a change output is due.
func NeedsChange(utxos []*common.UTXO, value decimal.Decimal, fee decimal.Decimal) bool {
	return common.SumUTXOs(utxos).GreaterThan(value.Add(fee))
}
