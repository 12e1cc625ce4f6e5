package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Aellun/AirBnB-clone-v3/internal/database"
	"github.com/Aellun/AirBnB-clone-v3/internal/domain"
	"github.com/Aellun/AirBnB-clone-v3/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	ctx := context.Background()

	db, err := database.Connect("hbnb.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM places")
	db.Exec("DELETE FROM users")

	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	users := []domain.User{}
	emails := []string{"alice@hbnb.io", "bob@hbnb.io", "carol@hbnb.io"}
	for i, email := range emails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			FirstName:    fmt.Sprintf("Demo%d", i+1),
			LastName:     "User",
		}
		if err := userRepo.Create(ctx, &u); err != nil {
			log.Fatal("user create failed:", err)
		}
		users = append(users, u)
		log.Println("User created:", email, "/ demo123")
	}

	// ================== PLACES ==================
	log.Println("Creating places...")

	places := []domain.Place{
		{UserID: users[0].ID, Name: "Sunny Loft", Description: "Bright loft downtown", City: "San Francisco", Latitude: 37.7749, Longitude: -122.4194, PriceByNight: 120},
		{UserID: users[1].ID, Name: "Beach Cottage", Description: "Two minutes from the shore", City: "Santa Cruz", Latitude: 36.9741, Longitude: -122.0308, PriceByNight: 95},
	}
	for i := range places {
		if err := placeRepo.Create(ctx, &places[i]); err != nil {
			log.Fatal("place create failed:", err)
		}
		log.Println("Place created:", places[i].Name)
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	reviews := []domain.Review{
		{PlaceID: places[0].ID, UserID: users[1].ID, Text: "Great stay, would come back"},
		{PlaceID: places[0].ID, UserID: users[2].ID, Text: "A bit noisy but well located"},
		{PlaceID: places[1].ID, UserID: users[0].ID, Text: "Perfect weekend getaway"},
	}
	for i := range reviews {
		if err := reviewRepo.Create(ctx, &reviews[i]); err != nil {
			log.Fatal("review create failed:", err)
		}
	}

	log.Println("Seed complete.")
}
