package pipeline

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mgharebaghi/cc-transaction/pkg/coinselection"
	"github.com/mgharebaghi/cc-transaction/pkg/common"
	"github.com/mgharebaghi/cc-transaction/pkg/keys"
	"github.com/mgharebaghi/cc-transaction/pkg/ledger"
	"github.com/mgharebaghi/cc-transaction/pkg/signer"
	"github.com/mgharebaghi/cc-transaction/pkg/transaction"
	"github.com/mgharebaghi/cc-transaction/pkg/utils"
)

// State names the stages of a transaction build.
type State string

const (
	StateValidating State = "Validating"
	StateFetching   State = "Fetching"
	StateAssembling State = "Assembling"
	StateSigning    State = "Signing"
	StateSubmitting State = "Submitting"
	StateAccepted   State = "Accepted"
	StateRejected   State = "Rejected"
)

// DefaultFeeRate is the network fee as a fraction of the transferred
// value.
var DefaultFeeRate = decimal.RequireFromString("0.01")

// SendRequest carries the caller-supplied inputs of a transfer. All
// fields are strings as received from a user interface; the pipeline
// parses and validates them before anything else happens.
type SendRequest struct {
	// Sender is the sender's address in canonical string form.
	Sender string
	// Private is the sender's private key material, passed through to
	// the signer and never inspected or stored.
	Private string
	// Recipient is the recipient's address in canonical string form.
	Recipient string
	// Value is the amount to transfer as a decimal string.
	Value string
}

// Result reports an accepted or rejected build.
type Result struct {
	State       State
	Hash        string
	Description string
	Transaction *common.Transaction
}

// Pipeline coordinates one transaction build: validate inputs, fetch
// UTXOs, shape outputs, assemble, sign, submit, classify the answer.
// A Pipeline is stateless between calls; concurrent Sends on the same
// instance are independent and share only the pooled HTTP client
// underneath the ledger client.
type Pipeline struct {
	ledger    ledger.Client
	signer    signer.Signer
	selector  coinselection.OutputStrategy
	assembler transaction.Assembler
	feeRate   decimal.Decimal
	logger    *zap.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithSelector overrides the default NaiveSelector, e.g. with
// coinselection.StrictSelector to reject underfunded requests locally.
func WithSelector(s coinselection.OutputStrategy) Option {
	return func(p *Pipeline) {
		p.selector = s
	}
}

// WithFeeRate overrides the default 1% fee rate.
func WithFeeRate(rate decimal.Decimal) Option {
	return func(p *Pipeline) {
		p.feeRate = rate
	}
}

// WithAssembler overrides the assembler, mainly to pin the clock in
// tests.
func WithAssembler(a transaction.Assembler) Option {
	return func(p *Pipeline) {
		p.assembler = a
	}
}

// New creates a transaction pipeline.
func New(client ledger.Client, sgn signer.Signer, random utils.RandomSource, logger *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		ledger:   client,
		signer:   sgn,
		selector: coinselection.NaiveSelector{Random: random},
		feeRate:  DefaultFeeRate,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Send runs one build end to end. Every failure is terminal for the
// attempt; the caller re-invokes from scratch, which re-fetches UTXOs.
func (p *Pipeline) Send(ctx context.Context, req SendRequest) (*Result, error) {
	// Validating. Both addresses and the amount must parse before any
	// network call is issued.
	p.transition(StateValidating, "")
	sender, recipient, value, err := p.validate(req)
	if err != nil {
		return nil, err
	}

	// Fetching. The UTXO set is bound to this request and never reused.
	p.transition(StateFetching, "")
	utxos, err := p.ledger.FetchUTXOs(ctx, sender, value)
	if err != nil {
		return nil, classifyExchange("fetch utxos", err)
	}

	// Assembling.
	p.transition(StateAssembling, "")
	fee := value.Mul(p.feeRate).Truncate(common.DecimalScale)
	unspents, err := p.selector.SelectOutputs(utxos, value, fee, sender, recipient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to shape outputs")
	}

	trx, err := p.assembler.Assemble(utxos, unspents, value, fee)
	if err != nil {
		return nil, errors.Wrap(err, "failed to assemble transaction")
	}

	// Signing.
	p.transition(StateSigning, trx.Hash)
	sig, err := p.signer.Sign(req.Private, trx.Hash)
	if err != nil {
		return nil, &SigningError{Err: err}
	}
	trx.Signature = []*common.Sign{{Signature: sig, Key: sender}}

	// Submitting.
	p.transition(StateSubmitting, trx.Hash)
	ack, err := p.ledger.Submit(ctx, trx)
	if err != nil {
		return nil, classifyExchange("submit transaction", err)
	}

	if ack.Status != ledger.StatusSuccess {
		p.transition(StateRejected, trx.Hash)
		return nil, &BusinessError{
			Op:          "submit transaction",
			Status:      ack.Status,
			Description: ack.Description,
		}
	}

	p.transition(StateAccepted, trx.Hash)
	return &Result{
		State:       StateAccepted,
		Hash:        trx.Hash,
		Description: ack.Description,
		Transaction: trx,
	}, nil
}

// validate parses the request fields, failing fast with InputError so
// no partially constructed transaction ever leaves this stage.
func (p *Pipeline) validate(req SendRequest) (keys.PublicKey, keys.PublicKey, decimal.Decimal, error) {
	var zero decimal.Decimal

	sender, err := keys.ParsePublicKey(strings.TrimSpace(req.Sender))
	if err != nil {
		return keys.PublicKey{}, keys.PublicKey{}, zero, &InputError{Field: "sender address", Err: err}
	}

	recipient, err := keys.ParsePublicKey(strings.TrimSpace(req.Recipient))
	if err != nil {
		return keys.PublicKey{}, keys.PublicKey{}, zero, &InputError{Field: "recipient address", Err: err}
	}

	value, err := decimal.NewFromString(strings.TrimSpace(req.Value))
	if err != nil {
		return keys.PublicKey{}, keys.PublicKey{}, zero, &InputError{Field: "value", Err: err}
	}
	if !value.IsPositive() {
		return keys.PublicKey{}, keys.PublicKey{}, zero,
			&InputError{Field: "value", Err: errors.Errorf("%s is not a positive amount", value)}
	}

	return sender, recipient, value.Truncate(common.DecimalScale), nil
}

// classifyExchange maps ledger client failures onto the error
// taxonomy: transport loss, unparseable response, or server refusal.
func classifyExchange(op string, err error) error {
	if transport, ok := ledger.IsTransport(err); ok {
		return &NetworkError{Op: op, Err: transport.Err}
	}
	if decode, ok := ledger.IsDecode(err); ok {
		return &ProtocolError{Op: op, Body: decode.Body, Err: decode.Err}
	}
	if status, ok := ledger.IsStatus(err); ok {
		return &BusinessError{Op: op, Status: status.Status, Description: status.Description}
	}

	return err
}

func (p *Pipeline) transition(state State, hash string) {
	if hash != "" {
		p.logger.Debug("pipeline state", zap.String("state", string(state)), zap.String("hash", hash))
		return
	}

	p.logger.Debug("pipeline state", zap.String("state", string(state)))
}
