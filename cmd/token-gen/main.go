package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"talentpact.backend/internal/config"
	"talentpact.backend/pkg/jwt"
	"talentpact.backend/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	user := flag.String("user", "", "user id (UUID) the token acts for")
	username := flag.String("username", "", "optional username claim")
	flag.Parse()

	if err := run(os.Stdout, config.Load().JWT, *user, *username); err != nil {
		log.Fatalf("token-gen: %v", err)
	}
}

func run(out io.Writer, cfg config.JWTConfig, rawUser, username string) error {
	userID, err := utils.ParseUUID("user", rawUser)
	if err != nil {
		return err
	}

	svc := jwt.NewJWTService(cfg.Secret, cfg.AccessExpiry, cfg.RefreshExpiry)
	token, err := svc.GenerateAccessToken(userID, username)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintf(out, "ACCESS_TOKEN=%s\n", token)
	fmt.Fprintf(out, "EXPIRES_IN=%s\n", cfg.AccessExpiry)
	return nil
}
