// Command servicetoken mints the service tokens marketplace backends use to
// call the bot API.
//
//	go run ./cmd/servicetoken -service marketplace -roles publisher,linker -ttl 720h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"marketbot/config"
	"marketbot/internal/domain/entity"
	"marketbot/internal/errors"
	"marketbot/internal/infra/auth"
)

func main() {
	serviceName := flag.String("service", "", "name of the calling service")
	roles := flag.String("roles", entity.RolePublisher.String(), "comma separated roles (publisher, linker)")
	ttl := flag.Duration("ttl", 0, "token lifetime; 0 uses secretKey.ttl")
	flag.Parse()

	token, err := mint(*serviceName, *roles, *ttl)
	if err != nil {
		slog.Error("Failed to mint service token", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println(token)
}

func mint(serviceName, rawRoles string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(serviceName) == "" {
		return "", errors.New("-service is required")
	}

	roles, err := entity.ParseRoles(rawRoles)
	if err != nil {
		return "", err
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", err
	}

	return tokenSvc.GenerateServiceToken(serviceName, roles.Claims(), ttl)
}
