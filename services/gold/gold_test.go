package gold

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestService(handler http.HandlerFunc) (*Impl, *httptest.Server) {
	server := httptest.NewServer(handler)
	service := &Impl{client: server.Client(), endpoint: server.URL}
	return service, server
}

func TestFetchSpotPrice(t *testing.T) {
	service, server := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[1770000000, 2931.50], [1769913600, 2925.10]]`))
	})
	defer server.Close()

	price, err := service.FetchSpotPrice(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price.PriceUSD != 2931.50 {
		t.Fatalf("unexpected price: %f", price.PriceUSD)
	}
	if !price.Timestamp.Equal(time.Unix(1770000000, 0)) {
		t.Fatalf("unexpected timestamp: %v", price.Timestamp)
	}
}

func TestFetchSpotPriceMalformedPayload(t *testing.T) {
	service, server := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "maintenance"}`))
	})
	defer server.Close()

	if _, err := service.FetchSpotPrice(context.Background()); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestFetchSpotPriceRejectsNonPositive(t *testing.T) {
	service, server := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[1770000000, 0]]`))
	})
	defer server.Close()

	if _, err := service.FetchSpotPrice(context.Background()); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestFetchSpotPriceNotConfigured(t *testing.T) {
	service := &Impl{client: http.DefaultClient, endpoint: ""}
	if _, err := service.FetchSpotPrice(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
