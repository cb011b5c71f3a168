package digest

import (
	"ainews-digest/pkg/observer"
	"ainews-digest/services/feeds"
	"ainews-digest/services/gold"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// At most this many items make it into one digest.
	maxDigestItems = 12

	// Items older than this are filtered out; undated items are kept.
	freshnessWindow = 24 * time.Hour

	cacheKeyLatest = "latest_digest"
)

const (
	newsHeader       = "📰 Новости ИИ за сутки"
	goldHeader       = "🥇 Золото, спот-цена"
	goldSourceNote   = "Источник: биржевые котировки"
	unknownDateLabel = "дата неизвестна"
)

type Service interface {
	RegisterObserver(o observer.Observer)
	BuildAndPublish()
	LatestDigest() (string, bool)
}

type Impl struct {
	feedService feeds.Service
	goldService gold.Service
	location    *time.Location
	keywords    []string
	cache       *cache.Cache
	observers   map[observer.Observer]struct{}
}
