package digest

import (
	"ainews-digest/models/entities"
	"sort"
	"strings"
	"time"
)

// selectRelevant keeps items that are fresh (published on or after cutoff, or
// undated) and match at least one keyword in title+summary, newest first and
// truncated to maxCount. Undated items are kept unconditionally but ranked
// below every dated item.
func selectRelevant(items []entities.FeedItem, cutoff time.Time, keywords []string, maxCount int) []entities.FeedItem {
	kept := make([]entities.FeedItem, 0, len(items))
	for _, item := range items {
		if item.Published != nil && item.Published.Before(cutoff) {
			continue
		}
		if !matchesKeywords(item, keywords) {
			continue
		}
		kept = append(kept, item)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return publishedOrZero(kept[i]).After(publishedOrZero(kept[j]))
	})

	if len(kept) > maxCount {
		kept = kept[:maxCount]
	}
	return kept
}

func matchesKeywords(item entities.FeedItem, keywords []string) bool {
	haystack := strings.ToLower(item.Title + " " + item.Summary)
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

func publishedOrZero(item entities.FeedItem) time.Time {
	if item.Published == nil {
		return time.Time{}
	}
	return *item.Published
}
