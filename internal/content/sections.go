// Package content defines the site section documents and the service that
// persists them and keeps the generated page in sync.
package content

// Section keys. One JSON document is persisted per key.
const (
	SectionGeneral   = "general"
	SectionHeader    = "header"
	SectionHero      = "hero"
	SectionAbout     = "about"
	SectionPortfolio = "portfolio"
	SectionFuture    = "future"
	SectionContact   = "contact"
	SectionFooter    = "footer"
	SectionFeatures  = "features"
)

// required lists the sections seeded with defaults at startup, in seed
// order. After Seed runs, reads of these sections never miss.
var required = []string{
	SectionGeneral,
	SectionHeader,
	SectionHero,
	SectionAbout,
	SectionPortfolio,
	SectionFuture,
	SectionContact,
	SectionFooter,
	SectionFeatures,
}

// Required returns the section keys seeded at startup.
func Required() []string {
	out := make([]string, len(required))
	copy(out, required)
	return out
}

// IsRequired reports whether section belongs to the required set.
func IsRequired(section string) bool {
	for _, s := range required {
		if s == section {
			return true
		}
	}
	return false
}
