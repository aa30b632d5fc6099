package main

import (
	"flag"
	"log"

	"github.com/Rounit002/citylibrary/app/config"
	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"
	"github.com/Rounit002/citylibrary/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "user password")
	firstName := flag.String("first", "Admin", "first name")
	lastName := flag.String("last", "User", "last name")
	role := flag.String("role", "admin", "role name (admin or staff)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: adduser -email <email> -password <password> [-first X -last Y -role admin]")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migrations failed:", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	if err := database.CreateUser(db, user, hashed, *role); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Printf("User %s created with id %s and role %s", user.Email, user.ID, *role)
}
