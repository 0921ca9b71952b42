// Command seeduser creates an operator account directly in the local
// database, for bootstrapping a fresh station before anyone can log in.
package main

import (
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/hemolabs/labelstock/internal/db"
	"github.com/hemolabs/labelstock/internal/models"
	"github.com/hemolabs/labelstock/internal/repo"
)

func main() {
	dbPath := flag.String("db", "labelstock.db", "path to the database file")
	username := flag.String("username", "", "username to create")
	password := flag.String("password", "", "password for the new user")
	role := flag.String("role", "admin", "role for the new user")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal("could not open database:", err)
	}
	defer database.Close()

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("could not hash password:", err)
	}

	users := repo.NewSqliteUserRepository(database)
	user, err := users.CreateUser(models.User{
		Username:     *username,
		PasswordHash: string(hashed),
		Role:         *role,
	})
	if err != nil {
		log.Fatal("could not create user:", err)
	}

	log.Printf("created user %q (id %d, role %s)", user.Username, user.ID, user.Role)
}
