package router

import (
	listsvc "essenteil-backend/internal/application/listings"
	"essenteil-backend/internal/config"
	"essenteil-backend/internal/infrastructure/database"
	"essenteil-backend/internal/infrastructure/geo"
	"essenteil-backend/internal/infrastructure/storage"
	healthhandler "essenteil-backend/internal/interfaces/handlers/health"
	listhandler "essenteil-backend/internal/interfaces/handlers/listings"
	"essenteil-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app: global middleware, both stores, and the
// listing routes. The geo index client is lazy, so construction succeeds even
// when Redis is down — searches then run without the geo filter.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *geo.Index, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	geoIndex := geo.New(cfg.RedisURL)
	store := &storage.Client{
		BaseURL:   cfg.SupabaseURL,
		SecretKey: cfg.SupabaseSecretKey,
		Bucket:    cfg.StorageBucket,
	}

	// db may be nil if no DATABASE_URL is set (e.g. in tests that build their own app)
	if db != nil {
		listingsService := &listsvc.Service{DB: db, Geo: geoIndex, Storage: store}
		listingsHandlers := &listhandler.Handlers{Service: listingsService}
		app.Get("/listings", listingsHandlers.GetListings)
		app.Post("/listings", listingsHandlers.CreateListing)
		app.Delete("/listings", listingsHandlers.DeleteListing)
	}

	healthHandlers := &healthhandler.Handlers{
		Rdb: geoIndex,
		DB:  &gormDBPinger{db: db},
	}
	app.Get("/health/json", healthHandlers.JSON)

	return app, db, geoIndex, nil
}
