// Package catalog holds the menu: products and the fixed set of categories they
// may belong to.
//
// Key business rules:
//   - Product names and categories are required
//   - Prices must be greater than zero
//   - Categories are Grelha, Fritas, Bebida and Salada, matched case-insensitively
package catalog
