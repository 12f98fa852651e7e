package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	provider, err := NewProvider("linguahub_test")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, provider.Shutdown(context.Background())) })
	return provider
}

// scrape returns the exposition text served by provider.
func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

// assertSample matches a sample line regardless of the otel scope labels the exporter adds.
func assertSample(t *testing.T, output, name, labels, value string) {
	t.Helper()
	assert.Regexp(t, name+`\{[^}]*`+labels+`[^}]*\} `+value, output)
}

func TestBusinessMetrics_Exported(t *testing.T) {
	provider := newTestProvider(t)
	bm, err := NewBusinessMetrics(provider.MeterProvider(), "linguahub_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "auth", "gate_evaluate", "forwarded")
	bm.RecordOperation(ctx, "auth", "gate_evaluate", "forwarded")
	bm.RecordOperation(ctx, "auth", "gate_evaluate", "forbidden")
	bm.RecordOperation(ctx, "account", "account_create", StatusSuccess)
	bm.RecordDuration(ctx, "auth", "gate_evaluate", 3*time.Millisecond, "forwarded")
	bm.RecordDuration(ctx, "auth", "gate_evaluate", 5*time.Millisecond, "forwarded")
	bm.RecordDuration(ctx, "auth", "login", 40*time.Millisecond, StatusError)

	output := scrape(t, provider)

	assertSample(t, output, "linguahub_test_operations_total",
		`domain="auth".*operation="gate_evaluate".*status="forwarded"`, "2")
	assertSample(t, output, "linguahub_test_operations_total",
		`domain="auth".*operation="gate_evaluate".*status="forbidden"`, "1")
	assertSample(t, output, "linguahub_test_operations_total",
		`domain="account".*operation="account_create".*status="success"`, "1")
	assertSample(t, output, "linguahub_test_operation_duration_seconds_count",
		`domain="auth".*operation="gate_evaluate".*status="forwarded"`, "2")
	assertSample(t, output, "linguahub_test_operation_duration_seconds_count",
		`domain="auth".*operation="login".*status="error"`, "1")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()
	assert.IsType(t, &NoOpBusinessMetrics{}, bm)

	assert.NotPanics(t, func() {
		bm.RecordOperation(context.Background(), "auth", "login", StatusSuccess)
		bm.RecordDuration(context.Background(), "auth", "login", time.Millisecond, StatusSuccess)
	})
}
