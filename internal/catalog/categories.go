package catalog

// categoryAliases maps the storefront's slug categories onto the display
// names the upstream stores. Unmapped categories pass through unchanged;
// products are matched against both spellings.
var categoryAliases = map[string]string{
	"kitchen-appliances":                  "Kitchen Appliances",
	"beauty-personal-care":                "Beauty & Personal Care",
	"photography-content-creation-tools":  "Photography & Content Creation Tools",
	"nail-supplies":                       "Nail Supplies",
	"kids-babies":                         "Kids & Babies",
	"home-essentials":                     "Home Essentials",
	"lighting-home-decor":                 "Lighting & Home Decor",
}

// MapCategory resolves a slug to the upstream display form, passing
// unknown values through unchanged.
func MapCategory(category string) string {
	if mapped, ok := categoryAliases[category]; ok {
		return mapped
	}
	return category
}
