package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizDraft/config"
	"github.com/lshigami/QuizDraft/database"
	_ "github.com/lshigami/QuizDraft/docs" // Swagger docs
	"github.com/lshigami/QuizDraft/internal/composer"
	authorctrl "github.com/lshigami/QuizDraft/internal/controller/author"
	bankctrl "github.com/lshigami/QuizDraft/internal/controller/bank"
	"github.com/lshigami/QuizDraft/internal/logger"
	"github.com/lshigami/QuizDraft/internal/mathml"
	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/lshigami/QuizDraft/internal/remote"
	"github.com/lshigami/QuizDraft/internal/render"
	"github.com/lshigami/QuizDraft/internal/repository"
	"github.com/lshigami/QuizDraft/internal/service"
	"github.com/lshigami/QuizDraft/internal/store"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizDraft API
// @version 1.0
// @description Question authoring with rich text and typeset formulas, plus the question bank it syncs to.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewDomainRepository,
			repository.NewSubjectRepository,
			repository.NewQuestionRecordRepository,
			repository.NewSlotRepository,
		),

		// Authoring core: storage slot, renderer, composer and bank sync
		fx.Provide(
			NewQuestionStore,
			NewContentRenderer,
			NewBankClient,
			NewSyncer,
			NewQuestionSyncer,
			NewComposer,
		),

		// Services Layer
		fx.Provide(
			service.NewComposerService,
			service.NewQuestionService,
			service.NewEditorService,
			func(client *remote.Client) service.CatalogService {
				return service.NewCatalogService(client)
			},
			NewTextGenerator,
			service.NewExplanationService,
			service.NewBankService,
			service.NewCatalogSeeder,
		),

		// API Controllers Layer
		fx.Provide(
			authorctrl.NewQuestionController,
			authorctrl.NewEditorController,
			bankctrl.NewBankController,
		),

		fx.Invoke(ConfigureLogging),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedCatalog),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func ConfigureLogging(cfg *config.Config) {
	level := logger.SetLevel(cfg.Log.Level)
	log.Info().Str("level", level.String()).Msg("Log level configured")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	// Requests are logged through zerolog; the formatter returns "" so gin
	// does not write its own line.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewQuestionStore(cfg *config.Config, slots repository.SlotRepository) (service.QuestionStore, error) {
	ctx := context.Background()
	slot, err := store.OpenSlot(ctx, store.Options{
		Backend: cfg.Store.Backend,
		SlotKey: cfg.Store.SlotKey,
		FileDir: cfg.Store.FileDir,
		S3: store.S3Options{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		},
	}, slots)
	if err != nil {
		return nil, err
	}
	log.Info().Str("backend", cfg.Store.Backend).Str("slot", cfg.Store.SlotKey).Msg("Question store slot opened")
	return store.NewQuestionStore(ctx, slot), nil
}

func NewContentRenderer(cfg *config.Config) (service.ContentRenderer, error) {
	return render.NewRenderer(mathml.NewTypesetter(), cfg.Render.CacheSize)
}

func NewBankClient(cfg *config.Config) *remote.Client {
	return remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)
}

// NewSyncer returns nil when sync is disabled.
func NewSyncer(cfg *config.Config, client *remote.Client) *remote.Syncer {
	if !cfg.Remote.SyncEnabled {
		log.Info().Msg("Bank sync disabled; questions are kept locally only")
		return nil
	}
	log.Info().Str("base_url", cfg.Remote.BaseURL).Msg("Bank sync enabled")
	return remote.NewSyncer(client, cfg.Remote.Timeout)
}

// NewQuestionSyncer keeps a disabled syncer a nil interface rather than an
// interface holding a nil pointer.
func NewQuestionSyncer(s *remote.Syncer) service.QuestionSyncer {
	if s == nil {
		return nil
	}
	return s
}

// NewComposer seeds the id generator with the stored ids so new ids never
// repeat them, even if the clock moved back across a restart.
func NewComposer(cfg *config.Config, questions service.QuestionStore) *composer.Composer {
	return composer.New(cfg.Remote.SyncEnabled, service.SeededIDGenerator(questions, nil))
}

func NewTextGenerator(lc fx.Lifecycle, cfg *config.Config) (service.TextGenerator, error) {
	gen, err := service.NewGeminiGenerator(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := gen.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return gen, nil
}

func SeedCatalog(cfg *config.Config, seeder *service.CatalogSeeder) error {
	if err := seeder.SeedFile(context.Background(), cfg.Catalog.SeedFile); err != nil {
		log.Error().Err(err).Str("file", cfg.Catalog.SeedFile).Msg("Catalog seeding failed")
		return err
	}
	return nil
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	questionCtrl *authorctrl.QuestionController,
	editorCtrl *authorctrl.EditorController,
	bankCtrl *bankctrl.BankController,
	syncer *remote.Syncer,
) {
	apiV1 := router.Group("/api/v1")
	authorctrl.RegisterRoutes(apiV1, questionCtrl, editorCtrl)
	bankCtrl.RegisterRoutes(apiV1.Group("/bank"))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizDraft server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if syncer != nil {
				if err := syncer.Wait(shutdownCtx); err != nil {
					log.Warn().Err(err).Msg("Pending bank syncs abandoned")
				}
			}
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Domain{},
		&model.Subject{},
		&model.QuestionRecord{},
		&model.StorageSlot{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
