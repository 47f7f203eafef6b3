package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/external"
	applogger "github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/logger"
	timeAdapter "github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observedCall struct {
	operation string
	err       error
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observedCall
}

func (o *recordingObserver) ObserveLedgerCall(operation string, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, observedCall{operation: operation, err: err})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingObserver) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	observer := &recordingObserver{}
	client := NewClient(Config{
		BaseURL: server.URL + "/",
		Timeout: 2 * time.Second,
		APIKey:  "secret",
	}, observer, timeAdapter.NewRealTimeProvider(), applogger.NewNoopLogger())
	return client, observer
}

func testTransfer() external.TransferRequest {
	return external.TransferRequest{
		Contract: "eosio.token",
		From:     "safekeep",
		To:       "alice",
		Quantity: entity.Quantity{Amount: 1000000, Symbol: entity.Symbol{Precision: 4, Code: "TOK"}},
		Memo:     entity.WithdrawMemo,

		IdempotencyKey: "withdraw/alice/1700000000",
	}
}

func TestTransfer(t *testing.T) {
	t.Run("posts the transfer body", func(t *testing.T) {
		var got transferBody
		client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/transfers", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get(apiKeyHeader))
			assert.Equal(t, "req-1", r.Header.Get(requestIDHeader))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "withdraw/alice/1700000000", r.Header.Get(idempotencyKeyHeader))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		})

		ctx := applogger.ContextWithRequestID(context.Background(), "req-1")
		err := client.Transfer(ctx, testTransfer())

		require.NoError(t, err)
		assert.Equal(t, transferBody{
			Contract: "eosio.token",
			From:     "safekeep",
			To:       "alice",
			Quantity: "100.0000 TOK",
			Memo:     "withdraw token",
		}, got)
		require.Len(t, observer.calls, 1)
		assert.Equal(t, opTransfer, observer.calls[0].operation)
		assert.NoError(t, observer.calls[0].err)
	})

	t.Run("repeated payout carries the same key", func(t *testing.T) {
		var mu sync.Mutex
		var keys []string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			keys = append(keys, r.Header.Get(idempotencyKeyHeader))
			mu.Unlock()
			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, client.Transfer(context.Background(), testTransfer()))
		require.NoError(t, client.Transfer(context.Background(), testTransfer()))

		assert.Equal(t, []string{"withdraw/alice/1700000000", "withdraw/alice/1700000000"}, keys)
	})

	t.Run("no key header without a key", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, present := r.Header[idempotencyKeyHeader]
			assert.False(t, present)
			w.WriteHeader(http.StatusOK)
		})

		req := testTransfer()
		req.IdempotencyKey = ""
		require.NoError(t, client.Transfer(context.Background(), req))
	})

	t.Run("rejected transfer", func(t *testing.T) {
		client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("overdrawn balance"))
		})

		err := client.Transfer(context.Background(), testTransfer())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
		assert.Contains(t, err.Error(), "overdrawn balance")
		require.Len(t, observer.calls, 1)
		assert.ErrorIs(t, observer.calls[0].err, errs.ErrLedgerUnavailable)
	})

	t.Run("unreachable ledger", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := NewClient(Config{BaseURL: url, Timeout: time.Second}, nil,
			timeAdapter.NewRealTimeProvider(), applogger.NewNoopLogger())

		err := client.Transfer(context.Background(), testTransfer())
		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
	})

	t.Run("canceled context", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := client.Transfer(ctx, testTransfer())
		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
	})
}

func TestAccountExists(t *testing.T) {
	client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/v1/accounts/eosio.token":
			w.WriteHeader(http.StatusOK)
		case "/v1/accounts/ghost":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	exists, err := client.AccountExists(context.Background(), "eosio.token")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.AccountExists(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.AccountExists(context.Background(), "broken")
	assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
	assert.False(t, exists)

	require.Len(t, observer.calls, 3)
	for _, call := range observer.calls {
		assert.Equal(t, opAccountExists, call.operation)
	}
}
