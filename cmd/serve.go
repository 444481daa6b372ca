package cmd

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"

	"studyvault/backend/config"
	"studyvault/backend/middleware"
	"studyvault/backend/routes"
	"studyvault/backend/utils"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Study Vault API server",
	Run: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		// Use PORT env var if set, otherwise use flag value
		if envPort := os.Getenv("PORT"); envPort != "" && port == "8080" {
			port = envPort
		}
		cfg.ServerPort = port

		// Initialize database
		db, err := utils.InitDB(cfg)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}

		// Initialize logger
		logger := utils.InitLogger()

		// Create Fiber app
		app := fiber.New(fiber.Config{
			AppName: "Study Vault",
		})

		// Middleware
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-Key",
		}))
		app.Use(middleware.LoggingMiddleware(logger))

		// Setup routes
		routes.SetupRoutes(app, db, cfg, logger)

		// Start server
		log.Fatal(app.Listen(":" + cfg.ServerPort))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
