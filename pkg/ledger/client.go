package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mgharebaghi/cc-transaction/pkg/common"
	"github.com/mgharebaghi/cc-transaction/pkg/keys"
	"github.com/mgharebaghi/cc-transaction/pkg/utils"
)

const (
	utxoPath   = "/jrpc/utxo"
	submitPath = "/jrpc/trx"

	// StatusSuccess is the only acknowledgment status that means the
	// server accepted the exchange.
	StatusSuccess = "success"
)

// Client performs the two network exchanges of a transaction build:
// fetching spendable outputs and submitting the signed transaction.
type Client interface {
	FetchUTXOs(ctx context.Context, address keys.PublicKey, value decimal.Decimal) ([]*common.UTXO, error)
	Submit(ctx context.Context, trx *common.Transaction) (*SubmitResponse, error)
}

// UTXORequest is the wire form of a spendable-output query.
type UTXORequest struct {
	PublicKey string          `json:"publicKey"`
	Request   string          `json:"request"`
	Value     decimal.Decimal `json:"value"`
}

// UTXOResponse is the wire form of a spendable-output answer.
type UTXOResponse struct {
	PublicKey   string         `json:"publicKey"`
	UTXOData    []*common.UTXO `json:"utxoData"`
	Status      string         `json:"status"`
	Description string         `json:"description"`
}

// SubmitResponse is the server acknowledgment of a submitted
// transaction.
type SubmitResponse struct {
	Hash        string `json:"hash"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Config holds the ledger endpoint settings. Environment variables use
// the CENTICHAIN_ prefix (CENTICHAIN_NODE_URL, CENTICHAIN_HTTP_TIMEOUT).
type Config struct {
	NodeURL     string        `envconfig:"NODE_URL" default:"https://centichain.org"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// ConfigFromEnv loads the ledger configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	err := envconfig.Process("centichain", &cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to load ledger config")
	}

	return cfg, nil
}

// HTTPClient talks JSON over HTTP to a Centichain node. The embedded
// http.Client pools connections and is safe to share across concurrent
// pipelines.
type HTTPClient struct {
	baseURL *url.URL
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient creates a ledger client for the configured node.
func NewHTTPClient(cfg Config, logger *zap.Logger) (*HTTPClient, error) {
	base, err := url.Parse(cfg.NodeURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse node URL")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("node URL %q has no scheme or host", cfg.NodeURL)
	}

	return &HTTPClient{
		baseURL: base,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
		logger:  logger,
	}, nil
}

// FetchUTXOs queries the node for spendable outputs covering value.
// A non-"success" status aborts with the server's description.
func (c *HTTPClient) FetchUTXOs(ctx context.Context, address keys.PublicKey, value decimal.Decimal) ([]*common.UTXO, error) {
	request := UTXORequest{
		PublicKey: address.String(),
		Request:   "utxo",
		Value:     value,
	}

	var response UTXOResponse
	err := c.post(ctx, "fetch utxos", utxoPath, request, &response)
	if err != nil {
		return nil, err
	}

	if response.Status != StatusSuccess {
		return nil, &StatusError{
			Op:          "fetch utxos",
			Status:      response.Status,
			Description: response.Description,
		}
	}

	c.logger.Debug("fetched utxos",
		zap.String("address", request.PublicKey),
		zap.Int("count", len(response.UTXOData)))

	return response.UTXOData, nil
}

// Submit posts the fully populated transaction to the node. A
// non-"success" status in the acknowledgment is returned as a
// StatusError; the caller decides whether that is a rejection.
func (c *HTTPClient) Submit(ctx context.Context, trx *common.Transaction) (*SubmitResponse, error) {
	var response SubmitResponse
	err := c.post(ctx, "submit transaction", submitPath, trx, &response)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("submitted transaction",
		zap.String("hash", trx.Hash),
		zap.String("status", response.Status))

	return &response, nil
}

// post sends one JSON request and decodes one JSON response.
func (c *HTTPClient) post(ctx context.Context, op string, path string, body interface{}, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "%s: failed to encode request", op)
	}

	target := c.baseURL.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(encoded))
	if err != nil {
		return errors.Wrapf(err, "%s: failed to create request", op)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer utils.IgnoreErrorOn(res.Body.Close)

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	err = json.Unmarshal(raw, out)
	if err != nil {
		return &DecodeError{Op: op, Body: raw, Err: err}
	}

	return nil
}
