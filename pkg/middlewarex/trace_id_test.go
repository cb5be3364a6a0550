package middlewarex_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enfash/PrintSwift-sub000/pkg/contextx"
	"github.com/enfash/PrintSwift-sub000/pkg/logx"
	"github.com/enfash/PrintSwift-sub000/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	testCases := []struct {
		name    string
		header  string
		checkID func(rq *require.Assertions, traceID string)
	}{
		{
			name:   "Header passed through",
			header: "client-trace",
			checkID: func(rq *require.Assertions, traceID string) {
				rq.Equal("client-trace", traceID)
			},
		},
		{
			name: "Generated",
			checkID: func(rq *require.Assertions, traceID string) {
				rq.Len(traceID, 20)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var buf bytes.Buffer

			base := slog.New(slog.NewJSONHandler(&buf, nil))

			var fromContext contextx.TraceID

			handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				var err error

				fromContext, err = contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				contextx.LoggerFromContextOrDefault(r.Context()).Info("inside")
			}))

			req := httptest.NewRequestWithContext(
				contextx.WithLogger(context.Background(), base),
				http.MethodGet, "/v1/quotes", http.NoBody,
			)
			if tc.header != "" {
				req.Header.Set("X-Trace-Id", tc.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			traceID := rec.Header().Get("X-Trace-Id")
			tc.checkID(rq, traceID)
			rq.Equal(traceID, fromContext.String())
			rq.Contains(buf.String(), `"`+logx.FieldTraceID+`":"`+traceID+`"`)
		})
	}
}
