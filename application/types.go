package application

import (
	digestService "ainews-digest/services/digest"
	"ainews-digest/services/health"
	telegramService "ainews-digest/services/telegram"
	"ainews-digest/utils/databases"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler       gocron.Scheduler
	healthService   health.Service
	digestService   digestService.Service
	telegramService telegramService.Service
	db              databases.SqlConnection
}
