package coinselection

import (
	"github.com/shopspring/decimal"

	"github.com/mgharebaghi/cc-transaction/pkg/common"
	"github.com/mgharebaghi/cc-transaction/pkg/keys"
	"github.com/mgharebaghi/cc-transaction/pkg/utils"
)

// NaiveSelector reproduces the network's reference output shaping: if
// the inputs carry more than value plus fee, a change output back to
// the sender precedes the payment output; otherwise a single payment
// output is produced WITHOUT verifying that the inputs actually cover
// value plus fee. The shortfall case is left to server-side validation
// on purpose - rejecting it here would diverge from deployed clients.
// Use StrictSelector to reject it locally instead.
type NaiveSelector struct {
	Random utils.RandomSource
}

// SelectOutputs shapes the output set for the given inputs.
func (s NaiveSelector) SelectOutputs(
	utxos []*common.UTXO,
	value decimal.Decimal,
	fee decimal.Decimal,
	sender keys.PublicKey,
	recipient keys.PublicKey,
) ([]*common.Unspent, error) {
	if len(utxos) == 0 {
		return nil, ErrNoInputs
	}

	var unspents []*common.Unspent
	if NeedsChange(utxos, value, fee) {
		change := common.SumUTXOs(utxos).Sub(value).Sub(fee)
		changeOut, err := common.NewUnspent(s.Random, sender, change)
		if err != nil {
			return nil, err
		}
		unspents = append(unspents, changeOut)
	}

	payment, err := common.NewUnspent(s.Random, recipient, value)
	if err != nil {
		return nil, err
	}
	unspents = append(unspents, payment)

	return unspents, nil
}

// StrictSelector behaves like NaiveSelector but fails with
// ErrInsufficientFunds when the inputs cannot cover value plus fee,
// instead of constructing an unbalanced transaction.
type StrictSelector struct {
	Random utils.RandomSource
}

// SelectOutputs shapes the output set, rejecting underfunded requests.
func (s StrictSelector) SelectOutputs(
	utxos []*common.UTXO,
	value decimal.Decimal,
	fee decimal.Decimal,
	sender keys.PublicKey,
	recipient keys.PublicKey,
) ([]*common.Unspent, error) {
	if common.SumUTXOs(utxos).LessThan(value.Add(fee)) {
		return nil, ErrInsufficientFunds
	}

	return NaiveSelector(s).SelectOutputs(utxos, value, fee, sender, recipient)
}
