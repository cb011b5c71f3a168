package gold

import (
	"ainews-digest/models/constants"
	"ainews-digest/models/entities"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

func New() *Impl {
	return &Impl{
		client:   &http.Client{Timeout: clientHTTPTimeout},
		endpoint: viper.GetString(constants.GoldAPIURL),
	}
}

// FetchSpotPrice reads the spot price endpoint, which answers with a JSON
// array of [unixSeconds, priceUsd] pairs. Only the first pair is used.
func (service *Impl) FetchSpotPrice(ctx context.Context) (*entities.GoldPrice, error) {
	if service.endpoint == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, service.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := service.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gold price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gold price request failed with status: %d", resp.StatusCode)
	}

	var quotes [][]float64
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	if len(quotes) == 0 || len(quotes[0]) < 2 {
		return nil, ErrInvalidPayload
	}

	price := quotes[0][1]
	if price <= 0 {
		return nil, fmt.Errorf("%w: price %f", ErrInvalidPayload, price)
	}

	return &entities.GoldPrice{
		PriceUSD:  price,
		Timestamp: time.Unix(int64(quotes[0][0]), 0),
	}, nil
}
