package database

import (
	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей.
// Уникальные составные индексы (отклики, избранное) создаются здесь же
// через теги моделей - на них опирается защита от дублей.
func AutoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 для первичных ключей
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.JobApplication{},
		&models.Favorite{},
		&models.Report{},
	)
}
