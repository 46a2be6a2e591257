package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// ServiceBaseURL is the public base URL of this service. OpenPay sends
	// the customer back to it after the payment journey.
	ServiceBaseURL string `env:"SERVICE_BASE_URL" required:"true"`
	// StorefrontBaseURL is where customers are redirected after the
	// callback is processed (order details page or the home page).
	StorefrontBaseURL string `env:"STOREFRONT_BASE_URL" required:"true"`

	HTTPOpenPayClientTimeout time.Duration `env:"HTTP_OPENPAY_CLIENT_TIMEOUT" envDefault:"20s"`

	// Customer name resolution for orders placed by customers whose
	// shipping address carries no name.
	CustomerFirstNameEnabled bool `env:"CUSTOMER_FIRST_NAME_ENABLED" envDefault:"true"`
	CustomerLastNameEnabled  bool `env:"CUSTOMER_LAST_NAME_ENABLED" envDefault:"true"`
	CustomerUsernamesEnabled bool `env:"CUSTOMER_USERNAMES_ENABLED" envDefault:"false"`

	// Background task scheduling (limits sync, stale order sweep). The
	// reconciliation cadence is daily unless overridden.
	TaskInterval time.Duration `env:"TASK_INTERVAL" envDefault:"24h"`

	// Audit event sink. When disabled, gateway events are only logged.
	OpensearchEnabled     bool     `env:"OPENSEARCH_ENABLED" envDefault:"false"`
	OpensearchUrls        []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexEvents string   `env:"OPENSEARCH_INDEX_EVENTS" envDefault:"openpay-gateway-events"`

	// Callback processing mode: "sync" (in-request) or "kafka" (deferred
	// via the callbacks topic).
	CallbackMode string `env:"CALLBACK_MODE" envDefault:"sync"`

	// Kafka configuration
	KafkaBrokers                []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaCallbacksTopic         string   `env:"KAFKA_CALLBACKS_TOPIC" envDefault:"payments.callbacks"`
	KafkaCallbacksDLQTopic      string   `env:"KAFKA_CALLBACKS_DLQ_TOPIC" envDefault:"payments.callbacks.dlq"`
	KafkaCallbacksConsumerGroup string   `env:"KAFKA_CALLBACKS_CONSUMER_GROUP" envDefault:"openpay-gateway-callbacks"`
}

// CallbackDeferred reports whether callbacks go through Kafka instead of
// being processed inside the HTTP request.
func (c Config) CallbackDeferred() bool {
	return c.CallbackMode == "kafka"
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
