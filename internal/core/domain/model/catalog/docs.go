// Package catalog holds the read-only menu items orders are priced against.
package catalog
