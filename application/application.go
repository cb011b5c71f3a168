package application

import (
	"ainews-digest/models/constants"
	"ainews-digest/models/entities"
	subscriberRepo "ainews-digest/repositories/subscribers"
	digestService "ainews-digest/services/digest"
	"ainews-digest/services/feeds"
	"ainews-digest/services/gold"
	"ainews-digest/services/health"
	telegramService "ainews-digest/services/telegram"
	"ainews-digest/utils/databases"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() (*Impl, error) {
	// Credentials are checked before any network or storage work happens.
	token := viper.GetString(constants.TelegramBotToken)
	if token == "" {
		return nil, telegramService.ErrTokenIsMissing
	}

	db := databases.New()
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.TelegramUser{})
	if errMigration != nil {
		return nil, errMigration
	}

	location, errLocation := time.LoadLocation(viper.GetString(constants.DigestTimezone))
	if errLocation != nil {
		log.Warn().Err(errLocation).Msgf("Unknown time zone, falling back to UTC")
		location = time.UTC
	}

	scheduler, errScheduler := gocron.NewScheduler(gocron.WithLocation(location))
	if errScheduler != nil {
		return nil, errScheduler
	}

	subscribers := subscriberRepo.New(db)
	feedService := feeds.New(constants.GetNewsSources())
	goldService := gold.New()

	digestSvc, errDigest := digestService.New(scheduler, feedService, goldService, location)
	if errDigest != nil {
		return nil, errDigest
	}

	healthService, errHealth := health.New(scheduler)
	if errHealth != nil {
		return nil, errHealth
	}

	telegramSvc, errTg := telegramService.New(scheduler, token, subscribers, digestSvc)
	if errTg != nil {
		return nil, errTg
	}

	digestSvc.RegisterObserver(telegramSvc)

	return &Impl{
		scheduler:       scheduler,
		healthService:   healthService,
		digestService:   digestSvc,
		telegramService: telegramSvc,
		db:              db,
	}, nil
}

func (app *Impl) Run() {
	app.scheduler.Start()
	go app.telegramService.ListenAndDispatch()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
