package feeds

import (
	"ainews-digest/models/constants"
	"ainews-digest/models/entities"
	"context"
	"errors"
	"net/http"
	"time"
)

var ErrUnknownFeedFormat = errors.New("document is neither an RSS channel nor an Atom feed")

type Service interface {
	FetchAll(ctx context.Context) [][]entities.FeedItem
}

type Impl struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	sources   []constants.NewsSource
}
