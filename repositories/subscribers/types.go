package subscribers

import (
	"ainews-digest/models/entities"
	"ainews-digest/utils/databases"
)

type Repository interface {
	SaveOrUpdate(user entities.TelegramUser) error
	Delete(user entities.TelegramUser) error
	FetchAll() ([]entities.TelegramUser, error)
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
