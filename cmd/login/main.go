package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/samvad-hq/jsonfetch/internal/config"
	"github.com/samvad-hq/jsonfetch/internal/logger"
	"github.com/samvad-hq/jsonfetch/pkg/fetch"
	"github.com/samvad-hq/jsonfetch/pkg/jsonval"
)

// LoginResponse carries the access token issued by /auth/login.
type LoginResponse struct {
	AccessToken string
}

func decodeLogin(doc any) (LoginResponse, error) {
	if !jsonval.Has(doc, "accessToken") {
		return LoginResponse{}, fetch.Parsingf("'accessToken' field not found in json response")
	}
	token, err := jsonval.String(doc, "accessToken")
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{AccessToken: token}, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "login example failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	if err := fetch.LoadProfiles(cfg.ProfilesFile); err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	fetcher, err := fetch.NewFromProfile[LoginResponse](nil, "dummyjson")
	if err != nil {
		return fmt.Errorf("build fetcher: %w", err)
	}
	fetcher.Register("/auth/login", http.MethodPost, decodeLogin)

	resp, err := fetcher.Fetch(context.Background(), "/auth/login", fetch.Params{
		Headers: []string{"Content-Type: application/json"},
		Body:    `{"username": "emilys", "password": "emilyspass", "expiresInMins": 30}`,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	log.Infow("logged in", "access_token", resp.AccessToken)
	return nil
}
