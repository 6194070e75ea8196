package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/franciscosanchezn/pizza-factory/internal/auth"
	"github.com/franciscosanchezn/pizza-factory/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	role := flag.String("role", "admin", "Token role (admin or staff)")
	subject := flag.String("subject", "dev-admin", "Token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	// Share the server's secret when a .env file is present
	_ = godotenv.Load()
	// Same default as the server configuration
	secret := config.GetEnvWithDefault("JWT_SECRET", "secret")

	token, err := auth.NewTokenGenerator([]byte(secret)).Token(*subject, *role, *ttl)
	if err != nil {
		log.Fatal("Failed to sign token:", err)
	}

	fmt.Printf("✓ Development token created for role '%s' (expires in %s)\n", *role, *ttl)
	fmt.Println(token)
	fmt.Println("\nUse it to delete a receipt:")
	fmt.Printf("curl -X DELETE http://localhost:8080/api/v1/protected/admin/orders/<order-id> \\\n")
	fmt.Printf("  -H 'Authorization: Bearer %s'\n", token)
}
