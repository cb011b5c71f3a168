package gold

import (
	"ainews-digest/models/entities"
	"context"
	"errors"
	"net/http"
	"time"
)

const clientHTTPTimeout = 20 * time.Second

var (
	ErrNotConfigured  = errors.New("gold price endpoint is not configured")
	ErrInvalidPayload = errors.New("gold price payload is malformed")
)

type Service interface {
	FetchSpotPrice(ctx context.Context) (*entities.GoldPrice, error)
}

type Impl struct {
	client   *http.Client
	endpoint string
}
