package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	feedapp "github.com/shopfeed/backend/internal/application/feed"
	"github.com/shopfeed/backend/internal/infrastructure/config"
	"github.com/shopfeed/backend/internal/infrastructure/logger"
	"github.com/shopfeed/backend/internal/infrastructure/media"
	"github.com/shopfeed/backend/internal/infrastructure/persistence"
	"github.com/shopfeed/backend/internal/infrastructure/pricing"
	"github.com/shopfeed/backend/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("feed export failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database,
		logger.NewGormLogger(log, gormlogger.Warn))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	settings := feedapp.Settings{
		CurrencyCode:             cfg.Feed.Currency,
		DefaultTaxonomy:          cfg.Feed.DefaultGoogleCategory,
		PricesConsiderPromotions: cfg.Feed.PricesConsiderPromotions,
		PictureSize:              cfg.Feed.ProductPictureSize,
		ExpirationDays:           cfg.Feed.ExpirationDays,
		SanitizeEncodedHTML:      cfg.Feed.SanitizeEncodedHTML,
	}

	products := persistence.NewGormProductRepository(db.DB)
	overrides := persistence.NewGormOverrideRepository(db.DB)
	tierPrices := persistence.NewGormTierPriceRepository(db.DB)
	calculator := pricing.NewCalculator(tierPrices, decimal.NewFromFloat(cfg.Feed.TaxRate))

	mapper := feedapp.NewMapper(
		persistence.NewGormLocalizedValueRepository(db.DB),
		persistence.NewGormCategoryRepository(db.DB),
		persistence.NewGormPictureRepository(db.DB),
		persistence.NewGormBrandRepository(db.DB),
		calculator,
		calculator,
		media.NewPictureResolver(),
		settings,
		log,
	)
	service := feedapp.NewService(
		persistence.NewGormStoreRepository(db.DB),
		persistence.NewGormCurrencyRepository(db.DB),
		feedapp.NewResolver(products, overrides),
		mapper,
		settings,
		log,
	)

	publisher, err := buildPublisher(cfg, log)
	if err != nil {
		return err
	}

	// Stage the feed next to the target so the final rename stays on
	// one filesystem
	staged, err := os.CreateTemp(filepath.Dir(cfg.Feed.OutputPath), ".feed-*.xml")
	if err != nil {
		return err
	}
	stagedPath := staged.Name()

	exportErr := service.Generate(ctx, feedapp.ExportRequest{
		StoreID: cfg.Feed.StoreUUID(),
		Sink:    staged,
	})
	if closeErr := staged.Close(); exportErr == nil {
		exportErr = closeErr
	}
	if exportErr != nil {
		_ = os.Remove(stagedPath)
		return exportErr
	}

	location, err := publisher.Publish(ctx, stagedPath)
	if err != nil {
		_ = os.Remove(stagedPath)
		return err
	}

	log.Info("feed published", zap.String("location", location))
	return nil
}

// buildPublisher selects the S3 publisher when object storage is
// enabled, otherwise the atomic file publisher
func buildPublisher(cfg *config.Config, log *zap.Logger) (feedapp.Publisher, error) {
	if cfg.Storage.Enabled {
		return storage.NewS3Publisher(&cfg.Storage, storage.WithLogger(log))
	}
	return storage.NewFilePublisher(cfg.Feed.OutputPath)
}
