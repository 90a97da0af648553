package main

import (
	"fmt"
	"os"

	"github.com/stadtwache/stadtwache-api/api"
)

// Quick utility to generate a bcrypt hash for an admin password
// Usage: go run scripts/hash_admin_password.go <username> <password>
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/hash_admin_password.go <username> <password>")
		fmt.Println("Example: go run scripts/hash_admin_password.go admin n3ues-passwort")
		os.Exit(1)
	}

	username, password := os.Args[1], os.Args[2]

	hashedPassword, err := api.HashPassword(password)
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bcrypt Hash: %s\n", hashedPassword)
	fmt.Printf("\nTo update in MongoDB, run:\n")
	fmt.Printf("db.admin_users.updateOne(\n")
	fmt.Printf("  {\"username\": %q},\n", username)
	fmt.Printf("  {$set: {\"password_hash\": %q}}\n", hashedPassword)
	fmt.Printf(")\n")
}
