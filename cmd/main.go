package main

import (
	"context"
	"log"

	"github.com/1716001473/ZhiJieHealth/config"
	"github.com/1716001473/ZhiJieHealth/controllers"
	"github.com/1716001473/ZhiJieHealth/routes"
	"github.com/1716001473/ZhiJieHealth/services"
	"github.com/1716001473/ZhiJieHealth/storage"
	"github.com/1716001473/ZhiJieHealth/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger(settings)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if settings.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(settings)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	store := storage.NewGormStore(db)

	var uploader services.ImageUploader
	if settings.ImagesEnabled() {
		s3u, err := utils.NewS3Uploader(context.Background(), settings.S3Region, settings.S3Bucket, settings.CloudfrontURL)
		if err != nil {
			logger.Fatalw("failed to initialize S3", "error", err)
		}
		uploader = s3u
	} else {
		logger.Infow("S3 not configured, meal images disabled")
	}

	hub := services.NewRealtimeHub()
	alerts := services.NewAlertBus(db, hub, logger)
	tracker := services.NewTrackerService(store)
	plans := services.NewPlanService(db, store)
	users := services.NewUserService(db, plans, logger)
	foods := services.NewFoodService(db)
	meals := services.NewMealService(db, foods, tracker, alerts, hub, uploader, logger)
	auth := services.NewAuthService(db, settings.JWTSecret)

	r := routes.SetupRouter(routes.Deps{
		JWTSecret: []byte(settings.JWTSecret),
		Auth:      controllers.NewAuthController(auth),
		Meals:     controllers.NewMealController(meals, tracker),
		Foods:     controllers.NewFoodController(foods),
		Users:     controllers.NewUserController(users, tracker),
		Plans:     controllers.NewPlanController(plans),
		Reports:   controllers.NewReportController(),
		Realtime:  controllers.NewRealtimeController(hub, alerts),
	})

	logger.Infow("server starting", "port", settings.Port, "env", settings.Env)
	if err := r.Run(":" + settings.Port); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
