package entities

import "time"

// FeedItem is one normalized entry of an RSS or Atom document. Published is
// nil when the source document carried no parseable date.
type FeedItem struct {
	Title     string
	Link      string
	Published *time.Time
	Summary   string
	Source    string
}
