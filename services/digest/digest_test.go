package digest

import (
	"ainews-digest/models/constants"
	"ainews-digest/models/entities"
	"ainews-digest/pkg/observer"
	"ainews-digest/services/gold"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

type fakeFeedService struct {
	results [][]entities.FeedItem
}

func (f *fakeFeedService) FetchAll(ctx context.Context) [][]entities.FeedItem {
	return f.results
}

type fakeGoldService struct {
	price *entities.GoldPrice
	err   error
}

func (f *fakeGoldService) FetchSpotPrice(ctx context.Context) (*entities.GoldPrice, error) {
	return f.price, f.err
}

type captureObserver struct {
	events []observer.Event
}

func (c *captureObserver) OnNotify(e observer.Event) {
	c.events = append(c.events, e)
}

func newTestService(feedService *fakeFeedService, goldService *fakeGoldService) (*Impl, *captureObserver) {
	service := &Impl{
		feedService: feedService,
		goldService: goldService,
		location:    time.UTC,
		keywords:    constants.GetRelevanceKeywords(),
		cache:       cache.New(cache.NoExpiration, cache.NoExpiration),
		observers:   map[observer.Observer]struct{}{},
	}
	capture := &captureObserver{}
	service.RegisterObserver(capture)
	return service, capture
}

func TestBuildAndPublishEndToEnd(t *testing.T) {
	now := time.Now()
	fresh1 := now.Add(-1 * time.Hour)
	fresh2 := now.Add(-2 * time.Hour)
	fresh3 := now.Add(-3 * time.Hour)
	stale := now.Add(-30 * time.Hour)

	feedService := &fakeFeedService{results: [][]entities.FeedItem{
		{
			{Title: "OpenAI announces a launch", Link: "https://a/1", Published: &fresh2, Source: "OpenAI"},
			{Title: "GPT gets an update", Link: "https://a/2", Published: &fresh1, Source: "OpenAI"},
			{Title: "Anthropic story from last week", Link: "https://a/3", Published: &stale, Source: "OpenAI"},
		},
		{
			{Title: "Gemini release notes", Link: "https://b/1", Published: &fresh3, Source: "Google AI"},
		},
	}}
	goldService := &fakeGoldService{err: gold.ErrInvalidPayload}

	service, capture := newTestService(feedService, goldService)
	service.BuildAndPublish()

	if len(capture.events) != 1 {
		t.Fatalf("expected exactly one published digest, got %d", len(capture.events))
	}
	message := capture.events[0].Digest

	for _, missing := range []string{"GPT gets an update", "OpenAI announces a launch", "Gemini release notes"} {
		if !strings.Contains(message, missing) {
			t.Fatalf("digest lacks %q:\n%s", missing, message)
		}
	}
	if strings.Contains(message, "last week") {
		t.Fatalf("stale item leaked into the digest:\n%s", message)
	}
	if strings.Contains(message, "USD/oz") {
		t.Fatalf("failed gold fetch must not produce a price section:\n%s", message)
	}

	first := strings.Index(message, "GPT gets an update")
	second := strings.Index(message, "OpenAI announces a launch")
	third := strings.Index(message, "Gemini release notes")
	if !(first < second && second < third) {
		t.Fatalf("entries not ordered newest first:\n%s", message)
	}

	if cached, found := service.LatestDigest(); !found || cached != message {
		t.Fatal("published digest should be cached as the latest one")
	}
}

func TestBuildAndPublishSkipsEmptyRun(t *testing.T) {
	feedService := &fakeFeedService{results: [][]entities.FeedItem{{}, {}}}
	goldService := &fakeGoldService{err: gold.ErrInvalidPayload}

	service, capture := newTestService(feedService, goldService)
	service.BuildAndPublish()

	if len(capture.events) != 0 {
		t.Fatalf("nothing to say, yet %d digests were published", len(capture.events))
	}
	if _, found := service.LatestDigest(); found {
		t.Fatal("no digest should be cached for an empty run")
	}
}

func TestBuildAndPublishGoldOnly(t *testing.T) {
	feedService := &fakeFeedService{results: nil}
	goldService := &fakeGoldService{price: &entities.GoldPrice{PriceUSD: 2931.5, Timestamp: time.Now()}}

	service, capture := newTestService(feedService, goldService)
	service.BuildAndPublish()

	if len(capture.events) != 1 {
		t.Fatalf("expected a gold-only digest, got %d events", len(capture.events))
	}
	if !strings.Contains(capture.events[0].Digest, "USD/oz") {
		t.Fatalf("gold section missing:\n%s", capture.events[0].Digest)
	}
}
