package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mgharebaghi/cc-transaction/pkg/common"
	"github.com/mgharebaghi/cc-transaction/pkg/keys"
)

func testAddress(t *testing.T) keys.PublicKey {
	t.Helper()

	raw := make([]byte, keys.PublicKeySize)
	raw[0] = 0xc1
	key, err := keys.NewPublicKey(raw)
	require.NoError(t, err)
	return key
}

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(Config{NodeURL: server.URL, HTTPTimeout: 5 * time.Second}, zap.NewNop())
	require.NoError(t, err)
	return client, server
}

func TestFetchUTXOs(t *testing.T) {
	address := testAddress(t)
	utxos := []*common.UTXO{
		{Block: 7, TrxHash: "aa", OutputHash: "bb", UnspentHash: "cc",
			Unspent: decimal.RequireFromString("150.000000000000")},
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/jrpc/utxo", r.URL.Path)

		var request UTXORequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, address.String(), request.PublicKey)
		assert.Equal(t, "utxo", request.Request)
		assert.Equal(t, "100", request.Value.String())

		require.NoError(t, json.NewEncoder(w).Encode(UTXOResponse{
			PublicKey: request.PublicKey,
			UTXOData:  utxos,
			Status:    StatusSuccess,
		}))
	}))

	got, err := client.FetchUTXOs(context.Background(), address, decimal.NewFromInt(100))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(7), got[0].Block)
	assert.True(t, utxos[0].Unspent.Equal(got[0].Unspent))
}

func TestFetchUTXOsNonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(UTXOResponse{
			Status:      "error",
			Description: "address has no spendable outputs",
		}))
	}))

	_, err := client.FetchUTXOs(context.Background(), testAddress(t), decimal.NewFromInt(100))

	statusErr, ok := IsStatus(err)
	require.True(t, ok)
	assert.Equal(t, "error", statusErr.Status)
	assert.Equal(t, "address has no spendable outputs", statusErr.Description)
}

func TestFetchUTXOsTransportFailure(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := client.FetchUTXOs(context.Background(), testAddress(t), decimal.NewFromInt(1))

	_, ok := IsTransport(err)
	assert.True(t, ok)
}

func TestSubmit(t *testing.T) {
	trx := &common.Transaction{
		Hash:  "deadbeef",
		Value: decimal.NewFromInt(100),
		Fee:   decimal.NewFromInt(1),
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jrpc/trx", r.URL.Path)

		var received common.Transaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, trx.Hash, received.Hash)
		assert.True(t, trx.Value.Equal(received.Value))

		require.NoError(t, json.NewEncoder(w).Encode(SubmitResponse{
			Hash:   received.Hash,
			Status: StatusSuccess,
		}))
	}))

	res, err := client.Submit(context.Background(), trx)

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, trx.Hash, res.Hash)
}

func TestSubmitMalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("<html>bad gateway</html>"))
		require.NoError(t, err)
	}))

	_, err := client.Submit(context.Background(), &common.Transaction{Hash: "x"})

	decodeErr, ok := IsDecode(err)
	require.True(t, ok)
	// the raw body is kept for diagnosis
	assert.Contains(t, string(decodeErr.Body), "bad gateway")
}

func TestSubmitRespectsContext(t *testing.T) {
	blocked := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	t.Cleanup(func() { close(blocked) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Submit(ctx, &common.Transaction{Hash: "x"})

	_, ok := IsTransport(err)
	assert.True(t, ok)
}

func TestNewHTTPClientRejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient(Config{NodeURL: "::not-a-url"}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewHTTPClient(Config{NodeURL: "no-scheme.example"}, zap.NewNop())
	assert.Error(t, err)
}
