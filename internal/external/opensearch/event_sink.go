package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"openpay-gateway/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"
)

var _ payment.EventSink = (*EventSink)(nil)

// EventSink indexes payment audit events into OpenSearch. Indexing failures
// are reported to the caller; the orchestration logs and carries on.
type EventSink struct {
	client *opensearch.Client
	index  string
}

func NewEventSink(ctx context.Context, urls []string, index string) (*EventSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &EventSink{client: client, index: index}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *EventSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"event_id":         map[string]any{"type": "keyword"},
				"kind":             map[string]any{"type": "keyword"},
				"store_id":         map[string]any{"type": "long"},
				"order_id":         map[string]any{"type": "keyword"},
				"gateway_order_id": map[string]any{"type": "keyword"},
				"detail":           map[string]any{"type": "text"},
				"created_at":       map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type eventDoc struct {
	EventID        string            `json:"event_id"`
	Kind           payment.EventKind `json:"kind"`
	StoreID        int64             `json:"store_id"`
	OrderID        string            `json:"order_id,omitempty"`
	GatewayOrderID string            `json:"gateway_order_id,omitempty"`
	Detail         string            `json:"detail,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

func (s *EventSink) Record(ctx context.Context, event payment.Event) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := eventDoc{
		EventID:        uuid.NewString(),
		Kind:           event.Kind,
		StoreID:        event.StoreID,
		OrderID:        event.OrderID,
		GatewayOrderID: event.GatewayOrderID,
		Detail:         event.Detail,
		CreatedAt:      createdAt.UTC(),
	}
	payload, _ := json.Marshal(doc)

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(doc.EventID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index event: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index event error: %s", res.String())
	}
	return nil
}
