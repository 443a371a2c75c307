package main

import (
	"log"

	"share-a-bite-backend/cmd/config"
	migration "share-a-bite-backend/cmd/database/migrate"
	"share-a-bite-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	// A database that cannot be reached at startup is fatal; the server
	// must not begin accepting connections.
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Database handle unavailable: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}
	defer sqlDB.Close()

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App setup failed: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
