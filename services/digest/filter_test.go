package digest

import (
	"ainews-digest/models/entities"
	"testing"
	"time"
)

var filterKeywords = []string{"gpt", "openai", "нейросет"}

func itemAt(title string, published *time.Time) entities.FeedItem {
	return entities.FeedItem{Title: title, Link: "https://example.com", Published: published, Source: "Test"}
}

func ts(t time.Time) *time.Time { return &t }

func TestSelectRelevantDropsItemsWithoutKeyword(t *testing.T) {
	now := time.Now()
	items := []entities.FeedItem{
		itemAt("Weather report for tomorrow", ts(now.Add(-time.Hour))),
		itemAt("GPT benchmark results", ts(now.Add(-time.Hour))),
	}

	kept := selectRelevant(items, now.Add(-freshnessWindow), filterKeywords, maxDigestItems)
	if len(kept) != 1 || kept[0].Title != "GPT benchmark results" {
		t.Fatalf("unexpected selection: %+v", kept)
	}
}

func TestSelectRelevantDropsStaleItemsEvenWithKeyword(t *testing.T) {
	now := time.Now()
	items := []entities.FeedItem{
		itemAt("OpenAI opens an office", ts(now.Add(-30 * time.Hour))),
	}

	kept := selectRelevant(items, now.Add(-freshnessWindow), filterKeywords, maxDigestItems)
	if len(kept) != 0 {
		t.Fatalf("stale item survived: %+v", kept)
	}
}

func TestSelectRelevantKeepsUndatedItemsLast(t *testing.T) {
	now := time.Now()
	items := []entities.FeedItem{
		itemAt("Нейросеть без даты", nil),
		itemAt("OpenAI fresh story", ts(now.Add(-2 * time.Hour))),
		itemAt("GPT fresher story", ts(now.Add(-time.Hour))),
	}

	kept := selectRelevant(items, now.Add(-freshnessWindow), filterKeywords, maxDigestItems)
	if len(kept) != 3 {
		t.Fatalf("expected 3 items, got %d", len(kept))
	}
	if kept[0].Title != "GPT fresher story" || kept[1].Title != "OpenAI fresh story" {
		t.Fatalf("dated items out of order: %+v", kept)
	}
	if kept[2].Published != nil {
		t.Fatalf("undated item must rank last: %+v", kept)
	}
}

func TestSelectRelevantOrderingAndTruncation(t *testing.T) {
	now := time.Now()
	var items []entities.FeedItem
	for i := 0; i < 20; i++ {
		items = append(items, itemAt("GPT story", ts(now.Add(-time.Duration(i)*time.Minute))))
	}

	kept := selectRelevant(items, now.Add(-freshnessWindow), filterKeywords, maxDigestItems)
	if len(kept) != maxDigestItems {
		t.Fatalf("expected %d items, got %d", maxDigestItems, len(kept))
	}
	for i := 1; i < len(kept); i++ {
		if publishedOrZero(kept[i]).After(publishedOrZero(kept[i-1])) {
			t.Fatalf("items not sorted newest first at index %d", i)
		}
	}
}

func TestSelectRelevantIsPure(t *testing.T) {
	now := time.Now()
	items := []entities.FeedItem{
		itemAt("GPT one", ts(now.Add(-time.Hour))),
		itemAt("GPT two", ts(now.Add(-2 * time.Hour))),
		itemAt("no match", ts(now.Add(-time.Hour))),
	}
	cutoff := now.Add(-freshnessWindow)

	first := selectRelevant(items, cutoff, filterKeywords, maxDigestItems)
	second := selectRelevant(items, cutoff, filterKeywords, maxDigestItems)
	if len(first) != len(second) {
		t.Fatalf("two identical calls differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("two identical calls differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	if items[0].Title != "GPT one" || items[2].Title != "no match" {
		t.Fatalf("input mutated: %+v", items)
	}
}

func TestMatchesKeywordsLooksAtSummaryToo(t *testing.T) {
	item := entities.FeedItem{Title: "Industry update", Summary: "OpenAI raised a new round"}
	if !matchesKeywords(item, filterKeywords) {
		t.Fatal("keyword in summary was not matched")
	}
}
