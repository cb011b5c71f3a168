package markdown

import "strings"

// Characters Telegram MarkdownV2 treats as markup when left unescaped.
const escapedChars = "_*[]()~`>#+-=|{}.!"

// Escape prefixes every MarkdownV2 markup character with a backslash. All
// other characters pass through unchanged.
func Escape(text string) string {
	if text == "" {
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(escapedChars, r) {
			builder.WriteByte('\\')
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// Split cuts a message into chunks of at most maxLength bytes, never inside
// a line. A single line longer than maxLength is emitted as one oversized
// chunk rather than cut mid-line.
func Split(message string, maxLength int) []string {
	if len(message) <= maxLength {
		return []string{message}
	}

	var chunks []string
	var builder strings.Builder
	for _, line := range strings.Split(message, "\n") {
		if builder.Len() > 0 && builder.Len()+1+len(line) > maxLength {
			chunks = append(chunks, strings.TrimRight(builder.String(), " \t\n"))
			builder.Reset()
		}
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(line)
	}
	if builder.Len() > 0 {
		chunks = append(chunks, strings.TrimRight(builder.String(), " \t\n"))
	}
	return chunks
}
