package digest

import (
	"ainews-digest/models/entities"
	"ainews-digest/utils/dates"
	"ainews-digest/utils/markdown"
	"fmt"
	"strings"
	"time"
)

// formatDigest renders the selected items and the optional gold snapshot as
// one MarkdownV2 message. Empty sections are omitted; non-empty sections are
// separated by a single blank line. Links are inserted verbatim, everything
// else is escaped.
func formatDigest(items []entities.FeedItem, goldPrice *entities.GoldPrice, now time.Time, location *time.Location) string {
	var sections []string
	if len(items) > 0 {
		sections = append(sections, formatNewsSection(items, now, location))
	}
	if goldPrice != nil {
		sections = append(sections, formatGoldSection(goldPrice, location))
	}
	return strings.Join(sections, "\n\n")
}

func formatNewsSection(items []entities.FeedItem, now time.Time, location *time.Location) string {
	var builder strings.Builder
	builder.WriteString(markdown.Escape(fmt.Sprintf("%s: %s", newsHeader, dates.FormatInLocation(now, location))))

	for i, item := range items {
		published := unknownDateLabel
		if item.Published != nil {
			published = dates.FormatInLocation(*item.Published, location)
		}

		builder.WriteString("\n")
		builder.WriteString(markdown.Escape(fmt.Sprintf("%d. [%s] %s", i+1, item.Source, item.Title)))
		builder.WriteString("\n")
		builder.WriteString(markdown.Escape(fmt.Sprintf("    %s | ", published)))
		builder.WriteString(item.Link)
	}

	return builder.String()
}

func formatGoldSection(price *entities.GoldPrice, location *time.Location) string {
	lines := []string{
		markdown.Escape(goldHeader),
		markdown.Escape(fmt.Sprintf("%.2f USD/oz", price.PriceUSD)),
		markdown.Escape(dates.FormatInLocation(price.Timestamp, location)),
		markdown.Escape(goldSourceNote),
	}
	return strings.Join(lines, "\n")
}
