package entity

import (
	"fmt"

	"byline/internal/utils/text"
)

// Attribute limits, counted in runes.
const (
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
	MinTitleLength        = 5
	MaxTitleLength        = 50

	// ContributingThreshold is the article count an author must exceed in a
	// magazine to be listed as a contributing author.
	ContributingThreshold = 2
)

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if text.IsBlank(name) {
		return &ValidationError{Field: "name", Message: "name must be a non-empty string"}
	}
	return nil
}

// ValidateMagazineName checks that a magazine name has 2 to 16 characters.
func ValidateMagazineName(name string) error {
	if !text.LengthBetween(name, MinMagazineNameLength, MaxMagazineNameLength) {
		return &ValidationError{
			Field: "name",
			Message: fmt.Sprintf("name must be between %d and %d characters",
				MinMagazineNameLength, MaxMagazineNameLength),
		}
	}
	return nil
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if text.IsBlank(category) {
		return &ValidationError{Field: "category", Message: "category must be a non-empty string"}
	}
	return nil
}

// ValidateTitle checks that an article title has 5 to 50 characters.
func ValidateTitle(title string) error {
	if !text.LengthBetween(title, MinTitleLength, MaxTitleLength) {
		return &ValidationError{
			Field: "title",
			Message: fmt.Sprintf("title must be between %d and %d characters",
				MinTitleLength, MaxTitleLength),
		}
	}
	return nil
}
