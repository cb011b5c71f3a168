package constants

import (
	"github.com/rs/zerolog"
)

const (
	ExternalName = "ainews-digest"
	Version      = "1.0.0"

	ConfigFileName = ".env"

	// TELEGRAM BOT
	TelegramBotToken = "TELEGRAM_BOT_TOKEN"

	// Chat the daily digest is pushed to, in addition to subscribers.
	TelegramChatID = "TELEGRAM_CHAT_ID"

	// Chat receiving the daily subscriber report. 0 disables it.
	TelegramAdminID = "TELEGRAM_ADMIN_ID"

	// IANA time zone used for scheduling and digest timestamps.
	DigestTimezone = "DIGEST_TIMEZONE"

	// Cron tab for the daily digest push.
	DigestCronTab = "DIGEST_CRON_TAB"

	// Cron tab for the admin subscriber report.
	AdminReportCronTab = "ADMIN_REPORT_CRON_TAB"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// Gold spot price endpoint returning [[unixSeconds, priceUsd], ...].
	// Empty disables the gold section of the digest.
	GoldAPIURL = "GOLD_API_URL"

	// Per-feed HTTP timeout in seconds.
	RSSTimeout = "RSS_TIMEOUT"

	// User agent sent on feed requests.
	UserAgent = "USER_AGENT"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	defaultTelegramBotToken   = ""
	defaultTelegramChatID     = int64(0)
	defaultTelegramAdminID    = int64(0)
	defaultDigestTimezone     = "Europe/Moscow"
	defaultDigestCronTab      = "0 9 * * *"
	defaultAdminReportCronTab = "0 14 * * *"
	defaultHealthCronTab      = "0 * * * *"
	defaultGoldAPIURL         = ""
	defaultRSSTimeout         = 20
	defaultUserAgent          = ExternalName + "/" + Version
	defaultSqliteURL          = "ainews-digest.db"
	defaultLogLevel           = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		TelegramBotToken:   defaultTelegramBotToken,
		TelegramChatID:     defaultTelegramChatID,
		TelegramAdminID:    defaultTelegramAdminID,
		DigestTimezone:     defaultDigestTimezone,
		DigestCronTab:      defaultDigestCronTab,
		AdminReportCronTab: defaultAdminReportCronTab,
		HealthCronTab:      defaultHealthCronTab,
		GoldAPIURL:         defaultGoldAPIURL,
		RSSTimeout:         defaultRSSTimeout,
		UserAgent:          defaultUserAgent,
		SqliteURL:          defaultSqliteURL,
		LogLevel:           defaultLogLevel.String(),
	}
}
