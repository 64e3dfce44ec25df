// Command token mints a bearer token for the API using the configured
// secret.
//
// Usage:
//
//	token [--subject learner] [--ttl 720h]
//
// Requires AUTH_JWT_SECRET (or auth.jwt_secret in the config file).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dauchezhenri-coder/praxis-backend/internal/auth"
	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
)

func main() {
	subjectFlag := flag.String("subject", "learner", "token subject")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		log.Fatal("auth.jwt_secret is not set; the API accepts requests without a token")
	}

	ttl := cfg.Auth.AccessTokenTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(*subjectFlag)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(ttl).UTC().Format(time.RFC3339))
}
