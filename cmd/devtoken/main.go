// Command devtoken mints an access token for local development and testing.
// Production deployments receive tokens from the household identity
// provider; this tool only exists so curl sessions can talk to the API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/auth"
	"github.com/feelhome/feelhome-backend/internal/config"
)

func main() {
	role := flag.String("role", "user", "role claim: user or admin")
	subject := flag.String("subject", "", "user id (uuid); random when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	userID := uuid.New()
	if *subject != "" {
		userID, err = uuid.Parse(*subject)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse subject: %v\n", err)
			os.Exit(1)
		}
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := manager.GenerateAccessToken(userID, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
