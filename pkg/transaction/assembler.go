package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mgharebaghi/cc-transaction/pkg/common"
	"github.com/mgharebaghi/cc-transaction/pkg/hashing"
)

// DateFormat is the wire form of a transaction timestamp, whole
// seconds only.
const DateFormat = time.RFC3339

// Assembler derives the canonical hashes of a transaction. All
// methods are pure computation; hashes are recomputed from the
// contained sequences on every call, never cached.
type Assembler struct {
	// Now supplies the transaction date. Defaults to time.Now.
	Now func() time.Time
}

// BuildInput packages the consumed UTXO sequence. The hash covers the
// serialized sequence in the order it was fetched.
func (a Assembler) BuildInput(utxos []*common.UTXO) (*common.Input, error) {
	serialized, err := common.MarshalUTXOs(utxos)
	if err != nil {
		return nil, err
	}

	return &common.Input{
		Hash:   hashing.Sum(serialized),
		Number: len(utxos),
		UTXOs:  utxos,
	}, nil
}

// BuildOutput packages the produced unspent sequence.
func (a Assembler) BuildOutput(unspents []*common.Unspent) (*common.Output, error) {
	serialized, err := common.MarshalUnspents(unspents)
	if err != nil {
		return nil, err
	}

	return &common.Output{
		Hash:     hashing.Sum(serialized),
		Number:   len(unspents),
		Unspents: unspents,
	}, nil
}

// DeriveHash computes the transaction hash from exactly the input and
// output hashes, in that order. The two hex strings are concatenated
// as-is and reduced; no other transaction field participates.
func (a Assembler) DeriveHash(input *common.Input, output *common.Output) string {
	return hashing.Root([]string{input.Hash, output.Hash})
}

// Assemble builds the full unsigned transaction for the given sides.
// The signature sequence is left empty for the signer to fill.
func (a Assembler) Assemble(
	utxos []*common.UTXO,
	unspents []*common.Unspent,
	value decimal.Decimal,
	fee decimal.Decimal,
) (*common.Transaction, error) {
	input, err := a.BuildInput(utxos)
	if err != nil {
		return nil, err
	}

	output, err := a.BuildOutput(unspents)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	return &common.Transaction{
		Hash:   a.DeriveHash(input, output),
		Input:  *input,
		Output: *output,
		Value:  value.Truncate(common.DecimalScale),
		Fee:    fee.Truncate(common.DecimalScale),
		Script: common.ScriptSingle,
		Date:   now().UTC().Truncate(time.Second).Format(DateFormat),
	}, nil
}
