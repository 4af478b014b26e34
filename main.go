package main

import (
	"os"
	"os/signal"
	"syscall"

	"leave_manager/config"
	"leave_manager/database"
	"leave_manager/handler"
	"leave_manager/helper"
	"leave_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	config.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	rdb := database.ConnectRedis()
	cld := helper.InitCloudinary()

	handler.Init(db, rdb, cld)

	digest := helper.NewAccrualDigest(db, rdb)
	helper.StartAccrualScheduler(digest)
	defer helper.StopAccrualScheduler()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		helper.StopAccrualScheduler()
		if err := app.Shutdown(); err != nil {
			log.Errorf("server shutdown: %v", err)
		}
		database.Shutdown(db)
		if err := rdb.Close(); err != nil {
			log.Errorf("redis shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + config.ConfigOr("PORT", "8002")); err != nil {
		log.Fatal(err)
	}
}
