package catalogrepo

import (
	"context"
	_ "embed"
	"fmt"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

type menuDocument struct {
	Products []menuItem `yaml:"products"`
}

type menuItem struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
}

// Seed adds the default menu to repo and returns the created products.
func Seed(ctx context.Context, repo *Repository, clock kernel.Clock) ([]*catalog.Product, error) {
	return SeedFrom(ctx, repo, clock, defaultMenu)
}

// SeedFrom adds every product of a YAML menu document. Products get fresh ids.
func SeedFrom(ctx context.Context, repo *Repository, clock kernel.Clock, document []byte) ([]*catalog.Product, error) {
	var menu menuDocument
	if err := yaml.Unmarshal(document, &menu); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	products := make([]*catalog.Product, 0, len(menu.Products))
	for i, item := range menu.Products {
		category, err := catalog.ParseCategory(item.Category)
		if err != nil {
			return nil, fmt.Errorf("menu item %d: %w", i, err)
		}

		amount, err := decimal.NewFromString(item.Price)
		if err != nil {
			return nil, fmt.Errorf("menu item %d: invalid price %q: %w", i, item.Price, err)
		}

		price, err := kernel.NewMoney(amount)
		if err != nil {
			return nil, fmt.Errorf("menu item %d: %w", i, err)
		}

		product, err := catalog.NewProduct(kernel.NewUUID(), item.Name, price, category, clock.Now())
		if err != nil {
			return nil, fmt.Errorf("menu item %d: %w", i, err)
		}

		if err = repo.Add(ctx, product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}
