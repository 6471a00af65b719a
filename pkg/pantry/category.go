package pantry

import (
	"Crenza-Backend/domain"
	"strings"
)

const DefaultCategory = "Altro"

var DefaultCategories = Categories{
	"Pasta/Riso",
	"Pane/Farina",
	"Verdura",
	"Frutta",
	"Carne",
	"Pesce",
	"Latticini",
	"Bibite",
	"Dolci",
	"Conserve",
	"Surgelati",
	"Igiene",
	DefaultCategory,
}

// Categories is the configured category set. It always contains DefaultCategory.
type Categories []string

func NewCategories(names []string) Categories {
	seen := make(map[string]bool, len(names)+1)
	out := make(Categories, 0, len(names)+1)
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		return append(Categories(nil), DefaultCategories...)
	}
	if !seen[strings.ToLower(DefaultCategory)] {
		out = append(out, DefaultCategory)
	}
	return out
}

// Resolve maps a user supplied category to its canonical spelling. Blank
// input resolves to DefaultCategory.
func (c Categories) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultCategory, nil
	}
	for _, known := range c {
		if strings.EqualFold(known, name) {
			return known, nil
		}
	}
	return "", domain.ErrInvalidCategory
}
