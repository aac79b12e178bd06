// Package content holds the static copy rendered by the front end: section
// text, feature cards and the impact figures the counters animate toward.
package content

// SectionID identifies one page section, in display order.
type SectionID int

const (
	SectionHero SectionID = iota
	SectionFeatures
	SectionImpact
	SectionCalculator
	SectionContact
	SectionCount
)

func (s SectionID) String() string {
	switch s {
	case SectionHero:
		return "Home"
	case SectionFeatures:
		return "Features"
	case SectionImpact:
		return "Impact"
	case SectionCalculator:
		return "Calculator"
	case SectionContact:
		return "Contact"
	default:
		return "?"
	}
}

// Feature is one card in the features section.
type Feature struct {
	Icon  string
	Title string
	Desc  string
}

// Stat is one animated counter in the impact section.
type Stat struct {
	Label  string
	Value  int
	Suffix string
}

// Site is the full page copy.
type Site struct {
	Brand        string
	HeroHeading  string
	HeroSubtext  string
	Playlist     []string
	Features     []Feature
	Stats        []Stat
	CalcIntro    string
	ContactIntro string
}

// Default returns the stock Verdant copy.
func Default() Site {
	return Site{
		Brand:       "VerdantGrid",
		HeroHeading: "Power that pays the planet back",
		HeroSubtext: "Rooftop solar, storage and smart-grid software for homes and businesses.",
		Playlist: []string{
			"Clean energy for everyone.",
			"Your roof is a power plant.",
			"Measure it. Then shrink it.",
			"The grid goes green with you.",
		},
		Features: []Feature{
			{Icon: "☀", Title: "Solar that fits", Desc: "Panel layouts designed around your actual roof and usage, not a brochure."},
			{Icon: "⚡", Title: "Storage built in", Desc: "Battery packs sized from a year of your consumption data."},
			{Icon: "⌂", Title: "Grid-aware homes", Desc: "Automatic load shifting toward the hours when the grid runs greenest."},
			{Icon: "✦", Title: "Honest reporting", Desc: "Real generation numbers, live, without the marketing gloss."},
		},
		Stats: []Stat{
			{Label: "Installations", Value: 12500, Suffix: "+"},
			{Label: "Tonnes CO2e avoided", Value: 48200, Suffix: ""},
			{Label: "MWh generated", Value: 96400, Suffix: ""},
			{Label: "Customer rating", Value: 97, Suffix: "%"},
		},
		CalcIntro:    "Estimate your household's annual footprint. Figures use blended national emission factors.",
		ContactIntro: "Tell us about your roof. We reply within two working days.",
	}
}
