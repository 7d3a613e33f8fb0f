package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitstudio_backend/internals/seeds/studio"
)

// RunAllSeeds loads the sample studio data into an empty database.
func RunAllSeeds(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	log.Info("seeding sample data")
	if err := studio.NewSeeder(db, log).Seed(ctx); err != nil {
		return err
	}
	log.Info("sample data ready")
	return nil
}
