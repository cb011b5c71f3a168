package digest

import (
	"ainews-digest/models/constants"
	"ainews-digest/models/entities"
	"ainews-digest/pkg/observer"
	"ainews-digest/services/feeds"
	"ainews-digest/services/gold"
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler, feedService feeds.Service, goldService gold.Service,
	location *time.Location) (*Impl, error) {
	service := &Impl{
		feedService: feedService,
		goldService: goldService,
		location:    location,
		keywords:    constants.GetRelevanceKeywords(),
		cache:       cache.New(25*time.Hour, 2*time.Hour),
		observers:   map[observer.Observer]struct{}{},
	}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.DigestCronTab), true),
		gocron.NewTask(func() { service.BuildAndPublish() }),
		gocron.WithName("Build daily digest"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

func (service *Impl) notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}

// LatestDigest returns the most recently built digest, if any run produced
// one since startup.
func (service *Impl) LatestDigest() (string, bool) {
	if message, found := service.cache.Get(cacheKeyLatest); found {
		return message.(string), true
	}
	return "", false
}

// BuildAndPublish runs one digest cycle: fetch every source, filter and rank
// the items, append the gold snapshot when available, render and hand the
// message to the registered observers. When there is nothing to say, nothing
// is published.
func (service *Impl) BuildAndPublish() {
	log.Info().Msg("Building daily digest...")
	ctx := context.Background()

	perSource := service.feedService.FetchAll(ctx)
	var items []entities.FeedItem
	for _, sourceItems := range perSource {
		items = append(items, sourceItems...)
	}

	now := time.Now().In(service.location)
	selected := selectRelevant(items, now.Add(-freshnessWindow), service.keywords, maxDigestItems)

	goldPrice, errGold := service.goldService.FetchSpotPrice(ctx)
	if errGold != nil {
		log.Warn().Err(errGold).Msg("Gold price unavailable, digest goes out without it")
		goldPrice = nil
	}

	if len(selected) == 0 && goldPrice == nil {
		log.Info().Msg("No relevant news and no gold price, skipping this digest")
		return
	}

	message := formatDigest(selected, goldPrice, now, service.location)
	service.cache.Set(cacheKeyLatest, message, cache.DefaultExpiration)

	log.Info().Int(constants.LogItemNumber, len(selected)).Msg("Digest built")
	service.notify(observer.NewDigestEvent(message))
}
