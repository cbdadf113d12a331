package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/viejosabroso/restaurant-orders/config"
	"github.com/viejosabroso/restaurant-orders/database"
	"github.com/viejosabroso/restaurant-orders/realtime"
	"github.com/viejosabroso/restaurant-orders/router"
	"github.com/viejosabroso/restaurant-orders/storage"
	"github.com/viejosabroso/restaurant-orders/store"
	"github.com/viejosabroso/restaurant-orders/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	s := store.New(db)
	if err := s.AutoMigrate(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if os.Getenv("SEED_DB") == "true" {
		if err := database.SeedMenuItems(s); err != nil {
			utils.ErrorLogger.Printf("Error seeding menu: %v", err)
		}
	}

	// Realtime plumbing: mirrors for the request handlers, hub for the
	// websocket clients.
	hub := realtime.NewHub()
	menuMirror := realtime.NewMenuMirror(s)
	defer menuMirror.Close()
	orderMirror := realtime.NewOrderMirror(s)
	defer orderMirror.Close()
	detach := realtime.AttachHub(s, hub)
	defer detach()

	images := storage.NewImageStore(cfg.UploadDir, cfg.BaseURL)

	r := router.SetupRouter(router.Deps{
		Store:       s,
		Hub:         hub,
		MenuMirror:  menuMirror,
		OrderMirror: orderMirror,
		Images:      images,
		UploadDir:   cfg.UploadDir,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
