package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"clinica/config"
	_ "clinica/docs"
	"clinica/internal/repository"
	"clinica/internal/service"
	"clinica/internal/storage"
	"clinica/internal/transport/rest"
	"clinica/pkg/database"
	applogger "clinica/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// @title Clinica API
// @version 1.0
// @description API для планирования консультаций в клинике

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	logger, err := applogger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatal("Не удалось загрузить конфигурацию", zap.Error(err))
	}

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Запуск миграций базы данных")
	if err := database.RunMigrations(db, "./migrations", logger); err != nil {
		logger.Fatal("Ошибка при выполнении миграций", zap.Error(err))
	}
	logger.Info("Миграции успешно выполнены")

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, logger)
		if err != nil {
			logger.Fatal("Не удалось инициализировать S3 хранилище", zap.Error(err))
		}
		fileStorage = s3Storage
		logger.Info("S3 хранилище успешно инициализировано", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		logger.Warn("S3 хранилище не настроено, вложения консультаций будут недоступны")
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      logger,
		Config:      cfg,
		FileStorage: fileStorage,
	})

	var sweeper *cron.Cron
	if cfg.Sweep.Enabled {
		sweeper = cron.New()
		_, err := sweeper.AddFunc(cfg.Sweep.Cron, func() {
			marked, err := services.Consultation.MarkOverdueNoShows(context.Background())
			if err != nil {
				logger.Error("Ошибка пометки неявок", zap.Error(err))
				return
			}
			if marked > 0 {
				logger.Info("Просроченные консультации помечены как неявки", zap.Int64("count", marked))
			}
		})
		if err != nil {
			logger.Fatal("Неверное cron-выражение для пометки неявок", zap.String("cron", cfg.Sweep.Cron), zap.Error(err))
		}
		sweeper.Start()
		logger.Info("Фоновая пометка неявок запущена", zap.String("cron", cfg.Sweep.Cron))
	}

	handler := rest.NewHandler(services, logger, cfg)

	router := gin.Default()

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	router.GET("/swagger.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "application/json", []byte(doc))
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	logger.Info("Сервер запущен", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Выключение сервера...")

	if sweeper != nil {
		sweeper.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Ошибка при остановке сервера", zap.Error(err))
	}

	logger.Info("Сервер успешно остановлен")
}
