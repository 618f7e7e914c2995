package common

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/mgharebaghi/cc-transaction/pkg/keys"
)

// DecimalScale is the number of fractional digits the network carries
// for every amount. All decimals are truncated to this scale before
// they enter a hashed payload.
const DecimalScale = 12

// UTXO references a previously produced, not yet consumed output as
// returned by the ledger. The record is immutable; the client only
// reads it and packages it into an Input.
type UTXO struct {
	Block       uint64          `json:"block"`
	TrxHash     string          `json:"trxHash"`
	OutputHash  string          `json:"outputHash"`
	UnspentHash string          `json:"unspentHash"`
	Unspent     decimal.Decimal `json:"unspent"`
}

// UnspentData is the hashed content of a newly produced output. The
// salt keeps two outputs of equal wallet and value from colliding.
type UnspentData struct {
	Wallet keys.PublicKey  `json:"wallet"`
	Salt   uint32          `json:"salt"`
	Value  decimal.Decimal `json:"value"`
}

// Unspent is a freshly created output destined to become a UTXO once
// the ledger accepts the transaction.
type Unspent struct {
	Hash string      `json:"hash"`
	Data UnspentData `json:"data"`
}

// Input is the consumed side of a transaction. Hash covers the
// serialized UTXO sequence in fetch order.
type Input struct {
	Hash   string  `json:"hash"`
	Number int     `json:"number"`
	UTXOs  []*UTXO `json:"utxos"`
}

// Output is the produced side of a transaction. Hash covers the
// serialized unspent sequence in construction order.
type Output struct {
	Hash     string     `json:"hash"`
	Number   int        `json:"number"`
	Unspents []*Unspent `json:"unspents"`
}

// Sign binds a signature to the signer's public key so the network can
// verify it later.
type Sign struct {
	Signature keys.Signature `json:"signature"`
	Key       keys.PublicKey `json:"key"`
}

// Transaction is the fully assembled record submitted to the ledger.
// Hash is derived from the input and output hashes only; value, fee,
// script, signatures and date travel alongside but are not part of the
// signed hash.
type Transaction struct {
	Hash      string          `json:"hash"`
	Input     Input           `json:"input"`
	Output    Output          `json:"output"`
	Value     decimal.Decimal `json:"value"`
	Fee       decimal.Decimal `json:"fee"`
	Script    Script          `json:"script"`
	Signature []*Sign         `json:"signature"`
	Date      string          `json:"date"`
}

// SumUTXOs returns the total spendable value of a UTXO sequence.
func SumUTXOs(utxos []*UTXO) decimal.Decimal {
	sum := decimal.Zero
	for _, utxo := range utxos {
		sum = sum.Add(utxo.Unspent)
	}

	return sum
}

// SumUnspents returns the total produced value of an unspent sequence.
func SumUnspents(unspents []*Unspent) decimal.Decimal {
	sum := decimal.Zero
	for _, unspent := range unspents {
		sum = sum.Add(unspent.Data.Value)
	}

	return sum
}

// MarshalUTXOs produces the canonical byte form of a UTXO sequence,
// the preimage of Input.Hash. Order is significant and preserved.
func MarshalUTXOs(utxos []*UTXO) ([]byte, error) {
	data, err := json.Marshal(utxos)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize utxos")
	}

	return data, nil
}

// MarshalUnspents produces the canonical byte form of an unspent
// sequence, the preimage of Output.Hash.
func MarshalUnspents(unspents []*Unspent) ([]byte, error) {
	data, err := json.Marshal(unspents)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize unspents")
	}

	return data, nil
}
