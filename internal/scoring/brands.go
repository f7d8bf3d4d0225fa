package scoring

import "strings"

// BrandFamily groups pharmaceutical product names by therapeutic area.
type BrandFamily struct {
	Area   string
	Brands []string
}

// Taxonomy is the fixed brand table, in iteration order. The first family
// containing a brand mentioned in a text wins; only one match is ever
// counted per text. Extend the table here, not the scoring code.
var Taxonomy = []BrandFamily{
	{Area: "oncology", Brands: []string{"tagrisso", "kisqali", "brukinsa", "imfinzi"}},
	{Area: "cardio", Brands: []string{"lipitor", "caduet"}},
	{Area: "hiv", Brands: []string{"biktarvy", "descovy", "truvada"}},
	{Area: "rare_disease", Brands: []string{"banzel", "lucentis", "tecfidera", "lyrica"}},
	{Area: "mens_health", Brands: []string{"viagra"}},
}

// MentionedBrand returns the first taxonomy brand name appearing in the text
// (case-insensitive substring match), or "" when the text mentions none.
func MentionedBrand(text string) string {
	lower := strings.ToLower(text)
	for _, family := range Taxonomy {
		for _, brand := range family.Brands {
			if strings.Contains(lower, brand) {
				return brand
			}
		}
	}
	return ""
}

// familyBrands returns the brand list for a therapeutic area, or nil when
// the area is not in the taxonomy.
func familyBrands(area string) []string {
	for _, family := range Taxonomy {
		if family.Area == area {
			return family.Brands
		}
	}
	return nil
}

// containsAny reports whether the lowercased text mentions any of the brands.
func containsAny(lowerText string, brands []string) bool {
	for _, brand := range brands {
		if strings.Contains(lowerText, brand) {
			return true
		}
	}
	return false
}
