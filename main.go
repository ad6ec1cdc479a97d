package main

import (
	"invest/config"
	"invest/database"
	adminRoutes "invest/routers/adminRoutes"
	authRoutes "invest/routers/authRoutes"
	investmentRoutes "invest/routers/investmentRoutes"
	supportRoutes "invest/routers/supportRoutes"
	userRoutes "invest/routers/userRoutes"
	walletRoutes "invest/routers/walletRoutes"
	"invest/scheduler"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.ConnectRedis()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	investmentRoutes.SetupInvestmentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	scheduler.InitializeReturnScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
