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

// Product is the domain type produced from the /products/{id} response.
type Product struct {
	ID    int64
	Title string
	Price float64
}

func decodeProduct(doc any) (Product, error) {
	id, err := jsonval.Int(doc, "id")
	if err != nil {
		return Product{}, err
	}
	title, err := jsonval.String(doc, "title")
	if err != nil {
		return Product{}, err
	}
	price, err := jsonval.Float(doc, "price")
	if err != nil {
		return Product{}, err
	}
	return Product{ID: id, Title: title, Price: price}, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "products example failed: %v\n", err)
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

	fetcher, err := fetch.NewFromProfile[Product](nil, "dummyjson")
	if err != nil {
		return fmt.Errorf("build fetcher: %w", err)
	}
	fetcher.Register("/products/1", http.MethodGet, decodeProduct)

	product, err := fetcher.Fetch(context.Background(), "/products/1", fetch.Params{})
	if err != nil {
		return fmt.Errorf("fetch product: %w", err)
	}

	log.Infow("fetched product",
		"id", product.ID,
		"title", product.Title,
		"price", product.Price,
	)
	return nil
}
