//go:build ignore

// This script signs a development access token for the pricing API.
// Run with: JWT_SECRET_KEY=... go run scripts/issue_token.go -sub anna -roles economist
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/guttosm/bag-pricing-service/config"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

func main() {
	subject := flag.String("sub", "economist", "token subject")
	roles := flag.String("roles", "economist", "comma-separated roles")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_TOKEN_TTL)")
	flag.Parse()

	cfg := config.Load()
	if cfg.Auth.JWTSecretKey == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET_KEY is not set")
		os.Exit(1)
	}
	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	tokens, err := service.NewTokenService(service.TokenConfig{
		SecretKey: cfg.Auth.JWTSecretKey,
		TTL:       lifetime,
		Issuer:    cfg.Auth.JWTIssuer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating token service: %v\n", err)
		os.Exit(1)
	}

	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	token, err := tokens.Issue(*subject, roleList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error issuing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# expires %s\n", time.Now().Add(lifetime).Format(time.RFC3339))
	fmt.Printf("Authorization: Bearer %s\n", token)
}
