package telegram

import (
	subscriberRepo "ainews-digest/repositories/subscribers"
	digestService "ainews-digest/services/digest"
	"errors"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
)

const (
	// Telegram caps a single message at this many characters.
	maxMessageLength = 4096

	parseModeMarkdownV2 = "MarkdownV2"
)

var (
	ErrTokenIsMissing         = errors.New("telegram token is missing")
	ErrBotNotInitialized      = errors.New("telegram bot is not ready yet")
	ErrFailedToStartListening = errors.New("telegram bot can't start to listen command")
	ErrDeliveryFailed         = errors.New("digest delivery failed after plain-text retry")
)

type Service interface {
	ListenAndDispatch() error
}

// messageSender is the slice of gotgbot.Bot the notifier needs; tests swap in
// a fake.
type messageSender interface {
	SendMessage(chatID int64, text string, opts *gotgbot.SendMessageOpts) (*gotgbot.Message, error)
}

type Impl struct {
	bot            *gotgbot.Bot
	sender         messageSender
	updater        *ext.Updater
	subscriberRepo subscriberRepo.Repository
	digestService  digestService.Service
	chatID         int64
	adminChatID    int64
}
