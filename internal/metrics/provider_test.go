package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("linguahub_test")
	require.NoError(t, err)
	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_ShutdownWithoutMeterProvider(t *testing.T) {
	assert.NoError(t, (&Provider{}).Shutdown(context.Background()))
}

func TestProvider_TargetInfoCarriesNamespace(t *testing.T) {
	provider := newTestProvider(t)
	bm, err := NewBusinessMetrics(provider.MeterProvider(), "linguahub_test")
	require.NoError(t, err)
	bm.RecordOperation(context.Background(), "auth", "login", StatusSuccess)

	assert.Regexp(t, `target_info\{[^}]*service_name="linguahub_test"`, scrape(t, provider))
}
