package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("PG_URL", "postgres://localhost:5432/openpay")
	t.Setenv("SERVICE_BASE_URL", "https://gateway.example.com")
	t.Setenv("STOREFRONT_BASE_URL", "https://shop.example.com")

	c, err := New()

	require.NoError(t, err)
	assert.Equal(t, 3000, c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 20*time.Second, c.HTTPOpenPayClientTimeout)
	// reconciliation tasks run daily unless overridden
	assert.Equal(t, 24*time.Hour, c.TaskInterval)
	assert.Equal(t, "sync", c.CallbackMode)
	assert.False(t, c.CallbackDeferred())
	assert.Equal(t, "payments.callbacks", c.KafkaCallbacksTopic)
}

func TestConfig_CallbackDeferred(t *testing.T) {
	t.Setenv("PG_URL", "postgres://localhost:5432/openpay")
	t.Setenv("SERVICE_BASE_URL", "https://gateway.example.com")
	t.Setenv("STOREFRONT_BASE_URL", "https://shop.example.com")
	t.Setenv("CALLBACK_MODE", "kafka")

	c, err := New()

	require.NoError(t, err)
	assert.True(t, c.CallbackDeferred())
}
