package common

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/mgharebaghi/cc-transaction/pkg/hashing"
	"github.com/mgharebaghi/cc-transaction/pkg/keys"
	"github.com/mgharebaghi/cc-transaction/pkg/utils"
)

// NewUnspent creates a spendable output of value for wallet. The salt
// is drawn fresh from src on every call and never reused, so equal
// wallet/value pairs still hash to distinct outputs.
func NewUnspent(src utils.RandomSource, wallet keys.PublicKey, value decimal.Decimal) (*Unspent, error) {
	salt, err := src.Salt()
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw unspent salt")
	}

	data := UnspentData{
		Wallet: wallet,
		Salt:   salt,
		Value:  value.Truncate(DecimalScale),
	}

	serialized, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize unspent data")
	}

	return &Unspent{
		Hash: hashing.Sum(serialized),
		Data: data,
	}, nil
}
