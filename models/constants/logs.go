package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogFeedURL       = "feedURL"
	LogFeedSource    = "feedSource"
	LogItemNumber    = "itemNumber"
	LogChunkNumber   = "chunkNumber"
	LogChatID        = "chatID"
	LogCommand       = "cmd"
	LogUsername      = "username"
	LogLevelFallback = zerolog.InfoLevel
)
