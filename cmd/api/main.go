package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Aellun/AirBnB-clone-v3/internal/database"
	"github.com/Aellun/AirBnB-clone-v3/internal/middleware"
	"github.com/Aellun/AirBnB-clone-v3/internal/modules/events"
	"github.com/Aellun/AirBnB-clone-v3/internal/modules/place"
	"github.com/Aellun/AirBnB-clone-v3/internal/modules/review"
	"github.com/Aellun/AirBnB-clone-v3/internal/modules/status"
	"github.com/Aellun/AirBnB-clone-v3/internal/modules/user"
	"github.com/Aellun/AirBnB-clone-v3/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hbnb.db"
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	hub := events.NewHub()
	defer hub.Close()

	reviewService := review.NewService(reviewRepo, placeRepo, userRepo, hub)
	reviewHandler := review.NewHandler(reviewService)

	placeService := place.NewService(placeRepo)
	placeHandler := place.NewHandler(placeService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	statusHandler := status.NewHandler(placeRepo, reviewRepo, userRepo)
	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		statusHandler.RegisterRoutes(v1)
		userHandler.RegisterRoutes(v1)
		placeHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
		eventsHandler.RegisterRoutes(v1)
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
