// Command token mints a bearer token for local development and manual
// testing of the authenticated endpoints.
//
// Usage:
//
//	token [--user=<uuid>] [--ttl=1h]
//
// A random user ID is generated when --user is omitted. Requires
// AUTH_JWT_SECRET (or a config file) to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mknhm1/itemproject/internal/auth"
	"github.com/mknhm1/itemproject/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "user ID (uuid) to issue the token for")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *userFlag != "" {
		userID, err = uuid.Parse(*userFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --user %q: %v\n", *userFlag, err)
			os.Exit(1)
		}
	}

	ttl := cfg.Auth.AccessTokenTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl)
	token, err := jwt.GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user %s, expires in %s\n", userID, ttl.Round(time.Second))
	fmt.Println(token)
}
