// Command catalogtoken prints a bearer token for the product write routes,
// signed with the server's JWT_SECRET.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"catalog/internal/config"
	"catalog/internal/services"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: catalogtoken <subject>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	token, err := issue(cfg, os.Args[1])
	if err != nil {
		logrus.WithError(err).Fatal("Failed to issue token")
	}
	fmt.Println(token)
}

func issue(cfg config.Config, subject string) (string, error) {
	if cfg.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET is empty, write routes are not guarded")
	}
	return services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL).IssueToken(subject)
}
