package telegram

import (
	"ainews-digest/models/constants"
	"ainews-digest/models/entities"
	"ainews-digest/pkg/observer"
	subscriberRepo "ainews-digest/repositories/subscribers"
	digestSvc "ainews-digest/services/digest"
	"ainews-digest/utils/markdown"
	"fmt"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/dustin/go-humanize"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler, token string, subscribers subscriberRepo.Repository,
	digestService digestSvc.Service) (*Impl, error) {

	if token == "" {
		return &Impl{}, ErrTokenIsMissing
	}

	b, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return &Impl{}, ErrBotNotInitialized
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Warn().Msg("an error occurred while handling update")
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})

	service := Impl{
		bot:            b,
		sender:         b,
		subscriberRepo: subscribers,
		digestService:  digestService,
		chatID:         viper.GetInt64(constants.TelegramChatID),
		adminChatID:    viper.GetInt64(constants.TelegramAdminID),
	}
	dispatcher.AddHandler(handlers.NewCommand("start", service.startCmd))
	dispatcher.AddHandler(handlers.NewCommand("help", service.helpCmd))
	dispatcher.AddHandler(handlers.NewCommand("digest", service.digestCmd))
	dispatcher.AddHandler(handlers.NewCommand("subscribe", service.subscribeCmd))
	dispatcher.AddHandler(handlers.NewCommand("unsubscribe", service.unsubscribeCmd))
	dispatcher.AddHandler(handlers.NewCommand("", service.unknownCmd))

	service.updater = ext.NewUpdater(dispatcher, nil)

	_, errAdminJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.AdminReportCronTab), true),
		gocron.NewTask(func() { service.dailyAdminReport() }),
		gocron.WithName("Send daily report to admin"),
	)
	if errAdminJob != nil {
		return nil, errAdminJob
	}

	return &service, nil
}

func (service *Impl) ListenAndDispatch() error {
	err := service.updater.StartPolling(service.bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return ErrFailedToStartListening
	}

	service.updater.Idle()

	return nil
}

// OnNotify receives the freshly built digest and broadcasts it.
func (service *Impl) OnNotify(e observer.Event) {
	if e.E != observer.DigestEvent {
		return
	}
	if err := service.broadcastDigest(e.Digest); err != nil {
		log.Error().Err(err).Msg("Digest run failed, remaining deliveries abandoned")
	}
}

// broadcastDigest pushes the digest to the configured chat and every
// subscriber. A chunk that fails both the MarkdownV2 attempt and the
// plain-text retry aborts the whole broadcast; chunks already delivered stay
// delivered.
func (service *Impl) broadcastDigest(message string) error {
	chunks := markdown.Split(message, maxMessageLength)

	recipients := make(map[int64]struct{})
	if service.chatID != 0 {
		recipients[service.chatID] = struct{}{}
	}
	users, err := service.subscriberRepo.FetchAll()
	if err != nil {
		log.Error().Err(err).Msg("Cannot list subscribers, pushing to the configured chat only")
	} else {
		for _, user := range users {
			recipients[user.ChatID] = struct{}{}
		}
	}

	for chatID := range recipients {
		log.Info().Int64(constants.LogChatID, chatID).Int(constants.LogChunkNumber, len(chunks)).Msg("Sending digest")
		if errDeliver := service.deliverChunks(chatID, chunks); errDeliver != nil {
			return errDeliver
		}
	}
	return nil
}

func (service *Impl) deliverChunks(chatID int64, chunks []string) error {
	for _, chunk := range chunks {
		_, err := service.sender.SendMessage(chatID, chunk, &gotgbot.SendMessageOpts{
			ParseMode:          parseModeMarkdownV2,
			LinkPreviewOptions: &gotgbot.LinkPreviewOptions{IsDisabled: true},
		})
		if err == nil {
			continue
		}

		log.Warn().Err(err).Int64(constants.LogChatID, chatID).Msg("Rich-text delivery rejected, retrying as plain text")
		_, errPlain := service.sender.SendMessage(chatID, chunk, &gotgbot.SendMessageOpts{
			LinkPreviewOptions: &gotgbot.LinkPreviewOptions{IsDisabled: true},
		})
		if errPlain != nil {
			log.Error().Err(errPlain).Int64(constants.LogChatID, chatID).Msg("Plain-text retry failed too")
			return fmt.Errorf("%w: %s", ErrDeliveryFailed, errPlain)
		}
	}
	return nil
}

func (service *Impl) dailyAdminReport() {
	if service.adminChatID == 0 {
		return
	}
	count := service.subscriberRepo.Count()
	msg := "📢 *Daily subscriber report* 📊\n\n"
	msg += fmt.Sprintf("👥 *Subscribers:* `%s`\n", humanize.Comma(count))

	service.sender.SendMessage(service.adminChatID, msg, &gotgbot.SendMessageOpts{ParseMode: "Markdown"})
}

func (service *Impl) startCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "start").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeWelcome), &gotgbot.SendMessageOpts{ParseMode: "Markdown"})
	return nil
}

func (service *Impl) helpCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "help").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeHelp), &gotgbot.SendMessageOpts{ParseMode: "Markdown"})
	return nil
}

func (service *Impl) digestCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "digest").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")

	message, found := service.digestService.LatestDigest()
	if !found {
		service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeNoDigest), &gotgbot.SendMessageOpts{ParseMode: "Markdown"})
		return nil
	}

	if err := service.deliverChunks(ctx.EffectiveChat.Id, markdown.Split(message, maxMessageLength)); err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("Cannot send digest on demand")
	}
	return nil
}

func (service *Impl) subscribeCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "subscribe").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	err := service.subscriberRepo.SaveOrUpdate(entities.TelegramUser{ChatID: ctx.EffectiveChat.Id, Name: ctx.EffectiveChat.Username})
	if err != nil {
		log.Error().Err(err).Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("error on saved")
	}
	service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeSubscribe), &gotgbot.SendMessageOpts{ParseMode: "Markdown"})
	return nil
}

func (service *Impl) unsubscribeCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "unsubscribe").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	err := service.subscriberRepo.Delete(entities.TelegramUser{ChatID: ctx.EffectiveChat.Id})
	if err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("error on deleted")
	}
	service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeUnsubscribe), &gotgbot.SendMessageOpts{ParseMode: "Markdown"})
	return nil
}

func (service *Impl) unknownCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "unknown").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeUnknown), &gotgbot.SendMessageOpts{ParseMode: "Markdown"})
	return nil
}
