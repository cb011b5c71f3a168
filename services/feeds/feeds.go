package feeds

import (
	"ainews-digest/models/constants"
	"ainews-digest/models/entities"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(sources []constants.NewsSource) *Impl {
	timeout := time.Duration(viper.GetInt(constants.RSSTimeout)) * time.Second
	return &Impl{
		client:    &http.Client{Timeout: timeout},
		timeout:   timeout,
		userAgent: viper.GetString(constants.UserAgent),
		sources:   sources,
	}
}

// FetchAll reads every configured source concurrently and returns one item
// slice per source, in source order. A source that fails to respond, returns
// a non-2xx status or cannot be parsed contributes an empty slice; it never
// aborts the other fetches.
func (service *Impl) FetchAll(ctx context.Context) [][]entities.FeedItem {
	results := make([][]entities.FeedItem, len(service.sources))

	var wg sync.WaitGroup
	for i, source := range service.sources {
		wg.Add(1)
		go func(slot int, source constants.NewsSource) {
			defer wg.Done()
			items, err := service.fetchSource(ctx, source)
			if err != nil {
				log.Warn().Err(err).
					Str(constants.LogFeedSource, source.Name).
					Str(constants.LogFeedURL, source.URL).
					Msgf("Cannot read feed source, ignored for this digest")
				return
			}
			results[slot] = items
			log.Info().
				Str(constants.LogFeedSource, source.Name).
				Int(constants.LogItemNumber, len(items)).
				Msgf("Feed source read")
		}(i, source)
	}
	wg.Wait()

	return results
}

func (service *Impl) fetchSource(ctx context.Context, source constants.NewsSource) ([]entities.FeedItem, error) {
	ctx, cancel := context.WithTimeout(ctx, service.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", service.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := service.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("feed request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return Parse(body, source.Name)
}
