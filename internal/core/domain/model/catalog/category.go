package catalog

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Category is a menu section. The zero value is Unknown and never valid.
type Category int

const (
	Unknown Category = iota
	Grelha
	Fritas
	Bebida
	Salada
)

// Categories lists the valid categories in display order.
func Categories() []Category {
	return []Category{Grelha, Fritas, Bebida, Salada}
}

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Unknown: "Unknown",
		Grelha:  "Grelha",
		Fritas:  "Fritas",
		Bebida:  "Bebida",
		Salada:  "Salada",
	}
}

// ParseCategory resolves a category name, ignoring case and surrounding whitespace.
//
// Returns a ValueIsRequiredError for a blank name and a ValueIsInvalidError listing
// the valid categories for anything else that does not match.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Unknown, errs.NewValueIsRequiredError("category")
	}

	for _, c := range Categories() {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("invalid category %q, valid categories are: %s", name, validCategoryNames()),
	)
}

// Validate rejects Unknown and out-of-range values.
func (c Category) Validate() error {
	if c <= Unknown || c > Salada {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

func validCategoryNames() string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
