// Package catalog provides the use cases over the author/magazine/article
// graph: creating entities, moving articles between them, and the derived
// queries. Every operation is traced, counted and logged.
package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrAuthorNotFound indicates no author with the requested ID is registered.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates no magazine with the requested ID is registered.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrNoMagazines is returned by TopPublisher when the registry holds no magazine.
	ErrNoMagazines = errors.New("no magazines registered")
)
