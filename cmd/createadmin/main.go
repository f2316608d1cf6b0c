package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-blog-api/config"
	"go-blog-api/repositories"
	"go-blog-api/services"

	"github.com/joho/godotenv"
)

// createadmin promotes the user matching -email or -username to admin,
// creating the account when none exists. Safe to run repeatedly.
func main() {
	var (
		email    = flag.String("email", "", "admin account email")
		username = flag.String("username", "", "admin account username")
		password = flag.String("password", "", "admin account password")
	)
	flag.Parse()

	if *email == "" || *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "createadmin: -email, -username and -password are required")
		flag.Usage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.InitDB()

	adminService := services.NewAdminService(repositories.NewUserRepository(db))

	outcome, user, err := adminService.EnsureAdmin(*email, *username, *password)
	if err != nil {
		log.Fatalf("createadmin: %v", err)
	}

	switch outcome {
	case services.BootstrapAlreadyAdmin:
		fmt.Printf("user %q is already an admin\n", user.Username)
	case services.BootstrapPromoted:
		fmt.Printf("user %q promoted to admin\n", user.Username)
	case services.BootstrapCreated:
		fmt.Printf("admin user %q created\n", user.Username)
	}
}
