package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsumer(url string) *Consumer {
	return &Consumer{apiURL: url, apiKey: "secret", httpClient: http.DefaultClient}
}

func TestConsumer_handle(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		status    int
		wantCalls int32
		wantErr   bool
	}{
		{
			name:      "success cancels order",
			body:      `{"order_id":42,"variant_id":1,"warehouse_id":2,"qty":3}`,
			status:    http.StatusOK,
			wantCalls: 1,
		},
		{
			name:      "already final order is acked",
			body:      `{"order_id":42}`,
			status:    http.StatusConflict,
			wantCalls: 1,
		},
		{
			name:      "server error is redelivered",
			body:      `{"order_id":42}`,
			status:    http.StatusBadGateway,
			wantCalls: 1,
			wantErr:   true,
		},
		{
			name:      "malformed body is dropped",
			body:      `{not json`,
			status:    http.StatusOK,
			wantCalls: 0,
		},
		{
			name:      "missing order id is dropped",
			body:      `{"variant_id":1}`,
			status:    http.StatusOK,
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/internal/v1/order/42/cancel", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestConsumer(srv.URL).handle(context.Background(), []byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}
