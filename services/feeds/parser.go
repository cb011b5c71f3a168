package feeds

import (
	"ainews-digest/models/entities"
	"encoding/xml"
	"strings"
	"time"
)

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Links     []atomLink `xml:"link"`
	Published string     `xml:"published"`
	Updated   string     `xml:"updated"`
	Summary   string     `xml:"summary"`
	Content   string     `xml:"content"`
}

type feedDocument struct {
	XMLName xml.Name
	Channel *struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
	Entries []atomEntry `xml:"entry"`
}

// Parse normalizes a raw RSS 2.0 or Atom 1.0 document into feed items. A
// channel element under the root selects the RSS mapping, an Atom feed root
// selects the entry mapping. Items whose title is blank are dropped; a date
// that does not parse leaves Published unset instead of failing the document.
func Parse(raw []byte, sourceName string) ([]entities.FeedItem, error) {
	var doc feedDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	var items []entities.FeedItem
	switch {
	case doc.Channel != nil:
		for _, item := range doc.Channel.Items {
			items = appendItem(items, entities.FeedItem{
				Title:     item.Title,
				Link:      item.Link,
				Published: parseFeedDate(item.PubDate),
				Summary:   item.Description,
				Source:    sourceName,
			})
		}
	case doc.XMLName.Local == "feed":
		for _, entry := range doc.Entries {
			items = appendItem(items, entities.FeedItem{
				Title:     entry.Title,
				Link:      firstLink(entry.Links),
				Published: parseFeedDate(firstNonEmpty(entry.Published, entry.Updated)),
				Summary:   firstNonEmpty(entry.Summary, entry.Content),
				Source:    sourceName,
			})
		}
	default:
		return nil, ErrUnknownFeedFormat
	}

	return items, nil
}

func appendItem(items []entities.FeedItem, item entities.FeedItem) []entities.FeedItem {
	if strings.TrimSpace(item.Title) == "" {
		return items
	}
	return append(items, item)
}

func firstLink(links []atomLink) string {
	for _, link := range links {
		if link.Href != "" {
			return link.Href
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseFeedDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	layouts := []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822, time.RFC3339}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
