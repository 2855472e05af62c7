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

// CatImage holds the URL of a random cat image.
type CatImage struct {
	URL string
}

// decodeCatImage guards the lookup itself: the search endpoint returns an
// array, and a missing url field is a semantic rejection.
func decodeCatImage(doc any) (CatImage, error) {
	first, err := jsonval.At(doc, 0)
	if err != nil {
		return CatImage{}, fetch.Parsingf("empty image search response: %v", err)
	}
	if !jsonval.Has(first, "url") {
		return CatImage{}, fetch.Parsingf("'url' field not found in json response")
	}
	url, err := jsonval.String(first, "url")
	if err != nil {
		return CatImage{}, err
	}
	return CatImage{URL: url}, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "catimage example failed: %v\n", err)
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

	fetcher, err := fetch.NewFromProfile[CatImage](nil, "thecatapi")
	if err != nil {
		return fmt.Errorf("build fetcher: %w", err)
	}
	fetcher.Register("/v1/images/search", http.MethodGet, decodeCatImage)

	image, err := fetcher.Fetch(context.Background(), "/v1/images/search", fetch.Params{
		Query: map[string]string{"mime_types": "jpg"},
	})
	if err != nil {
		return fmt.Errorf("fetch cat image: %w", err)
	}

	log.Infow("fetched random cat image", "url", image.URL)
	return nil
}
