package openpay

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"sync"

	"openpay-gateway/internal/domain/payment"
)

// Factory builds and caches API clients keyed by the credential-relevant
// part of a settings snapshot. Stores sharing environment, region and token
// share one client and its transport.
type Factory struct {
	mu      sync.Mutex
	clients map[uint64]*Client
	http    *http.Client
}

func NewFactory(httpClient *http.Client) *Factory {
	return &Factory{
		clients: make(map[uint64]*Client),
		http:    httpClient,
	}
}

func (f *Factory) ClientFor(settings payment.Settings) (payment.API, error) {
	region, ok := settings.Region()
	if !ok {
		return nil, fmt.Errorf("no OpenPay region for country %q (sandbox=%t)", settings.RegionTwoLetterISOCode, settings.UseSandbox)
	}

	key := clientKey(settings.UseSandbox, region.TwoLetterISOCode, settings.APIToken)

	f.mu.Lock()
	defer f.mu.Unlock()

	if client, ok := f.clients[key]; ok {
		return client, nil
	}

	client := NewClient(region, settings.APIToken, f.http)
	f.clients[key] = client
	return client, nil
}

func clientKey(sandbox bool, iso, token string) uint64 {
	h := fnv.New64a()
	if sandbox {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	h.Write([]byte(iso))
	h.Write([]byte{0})
	h.Write([]byte(token))
	return h.Sum64()
}
