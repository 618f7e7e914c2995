package transaction

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgharebaghi/cc-transaction/pkg/common"
	"github.com/mgharebaghi/cc-transaction/pkg/hashing"
	"github.com/mgharebaghi/cc-transaction/pkg/keys"
	"github.com/mgharebaghi/cc-transaction/pkg/utils"
)

func fixedKey(t *testing.T, fill byte) keys.PublicKey {
	t.Helper()

	raw := make([]byte, keys.PublicKeySize)
	for i := range raw {
		raw[i] = fill
	}

	key, err := keys.NewPublicKey(raw)
	require.NoError(t, err)
	return key
}

func sampleUTXOs() []*common.UTXO {
	return []*common.UTXO{
		{
			Block:       10,
			TrxHash:     hashing.SumString("trx-a"),
			OutputHash:  hashing.SumString("out-a"),
			UnspentHash: hashing.SumString("unspent-a"),
			Unspent:     decimal.RequireFromString("100.5"),
		},
		{
			Block:       12,
			TrxHash:     hashing.SumString("trx-b"),
			OutputHash:  hashing.SumString("out-b"),
			UnspentHash: hashing.SumString("unspent-b"),
			Unspent:     decimal.RequireFromString("49.5"),
		},
	}
}

func TestBuildInputHashCoversSerializedSequence(t *testing.T) {
	utxos := sampleUTXOs()

	input, err := Assembler{}.BuildInput(utxos)

	require.NoError(t, err)
	assert.Equal(t, 2, input.Number)

	serialized, err := common.MarshalUTXOs(utxos)
	require.NoError(t, err)
	assert.Equal(t, hashing.Sum(serialized), input.Hash)
}

func TestBuildInputIsOrderSensitive(t *testing.T) {
	utxos := sampleUTXOs()
	reversed := []*common.UTXO{utxos[1], utxos[0]}

	forward, err := Assembler{}.BuildInput(utxos)
	require.NoError(t, err)
	backward, err := Assembler{}.BuildInput(reversed)
	require.NoError(t, err)

	assert.NotEqual(t, forward.Hash, backward.Hash)
}

func TestBuildOutputHashCoversSerializedSequence(t *testing.T) {
	src := &utils.FixedSource{Salts: []uint32{11, 12}}
	first, err := common.NewUnspent(src, fixedKey(t, 0x01), decimal.NewFromInt(49))
	require.NoError(t, err)
	second, err := common.NewUnspent(src, fixedKey(t, 0x02), decimal.NewFromInt(100))
	require.NoError(t, err)
	unspents := []*common.Unspent{first, second}

	output, err := Assembler{}.BuildOutput(unspents)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Number)

	serialized, err := common.MarshalUnspents(unspents)
	require.NoError(t, err)
	assert.Equal(t, hashing.Sum(serialized), output.Hash)
}

func TestDeriveHashConcatenatesInOrder(t *testing.T) {
	input := &common.Input{Hash: hashing.SumString("input-side")}
	output := &common.Output{Hash: hashing.SumString("output-side")}

	derived := Assembler{}.DeriveHash(input, output)

	assert.Equal(t, hashing.SumString(input.Hash+output.Hash), derived)
	assert.NotEqual(t, hashing.SumString(output.Hash+input.Hash), derived)
}

func TestAssemble(t *testing.T) {
	date := time.Date(2024, 5, 17, 9, 30, 15, half(), time.UTC)
	assembler := Assembler{Now: func() time.Time { return date }}
	src := &utils.FixedSource{Salts: []uint32{21, 22}}

	change, err := common.NewUnspent(src, fixedKey(t, 0x0a), decimal.NewFromInt(49))
	require.NoError(t, err)
	payment, err := common.NewUnspent(src, fixedKey(t, 0x0b), decimal.NewFromInt(100))
	require.NoError(t, err)

	trx, err := assembler.Assemble(
		sampleUTXOs(),
		[]*common.Unspent{change, payment},
		decimal.NewFromInt(100),
		decimal.NewFromInt(1))

	require.NoError(t, err)
	assert.Equal(t, hashing.SumString(trx.Input.Hash+trx.Output.Hash), trx.Hash)
	assert.Equal(t, common.ScriptSingle, trx.Script)
	assert.Empty(t, trx.Signature)
	// sub-second precision is dropped from the date
	assert.Equal(t, "2024-05-17T09:30:15Z", trx.Date)
}

// half returns half a second of nanoseconds, used to prove rounding.
func half() int {
	return int(time.Second) / 2
}

func TestTransactionJSONRoundTrip(t *testing.T) {
	assembler := Assembler{Now: func() time.Time {
		return time.Date(2024, 5, 17, 9, 30, 15, 0, time.UTC)
	}}
	src := &utils.FixedSource{Salts: []uint32{31, 32}}

	payment, err := common.NewUnspent(src, fixedKey(t, 0x0c), decimal.RequireFromString("100.000000000001"))
	require.NoError(t, err)

	trx, err := assembler.Assemble(
		sampleUTXOs(),
		[]*common.Unspent{payment},
		decimal.RequireFromString("100.000000000001"),
		decimal.RequireFromString("1.00000000000001"), // truncated to scale 12
	)
	require.NoError(t, err)

	sig, err := keys.NewSignature(append(make([]byte, keys.SignatureSize-1), 0x5a))
	require.NoError(t, err)
	trx.Signature = []*common.Sign{{Signature: sig, Key: fixedKey(t, 0x0c)}}

	data, err := json.Marshal(trx)
	require.NoError(t, err)

	var decoded common.Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, trx.Hash, decoded.Hash)
	assert.Equal(t, trx.Input.Hash, decoded.Input.Hash)
	assert.Equal(t, trx.Output.Hash, decoded.Output.Hash)
	assert.Equal(t, trx.Date, decoded.Date)
	assert.Equal(t, trx.Script, decoded.Script)
	require.Len(t, decoded.Signature, 1)
	assert.Equal(t, trx.Signature[0].Signature, decoded.Signature[0].Signature)
	assert.True(t, trx.Value.Equal(decoded.Value))
	assert.Equal(t, "1", decoded.Fee.String())
	require.Len(t, decoded.Output.Unspents, 1)
	assert.True(t, trx.Output.Unspents[0].Data.Value.Equal(decoded.Output.Unspents[0].Data.Value))
}
