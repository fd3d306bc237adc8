package catalog

import (
	"encoding/json"

	"github.com/arthur-debert/reskin/pkg/errors"
)

// Theme is the part of a catalog document reskin understands
type Theme struct {
	ID          string `json:"$id"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
	// File is the storage id of the bundle
	File string `json:"file"`
}

// ThemeList is a collection listing
type ThemeList struct {
	Total  int     `json:"total"`
	Themes []Theme `json:"documents"`
}

// ParseThemes decodes a ListThemes response
func ParseThemes(raw json.RawMessage) (ThemeList, error) {
	var list ThemeList
	if err := json.Unmarshal(raw, &list); err != nil {
		return list, errors.Wrap(err, errors.ErrCatalog, "unexpected theme list format")
	}
	if list.Total == 0 {
		list.Total = len(list.Themes)
	}
	return list, nil
}

// ParseTheme decodes a GetTheme response
func ParseTheme(raw json.RawMessage) (Theme, error) {
	var theme Theme
	if err := json.Unmarshal(raw, &theme); err != nil {
		return theme, errors.Wrap(err, errors.ErrCatalog, "unexpected theme document format")
	}
	return theme, nil
}
