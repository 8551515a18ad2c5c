package analysis

import (
	"strings"

	"stock-dashboard/src/models"
)

// InstrumentFilter narrows a list for the search box, the sector tabs and
// the favorites view. Empty fields match everything.
type InstrumentFilter struct {
	Query  string   // case-insensitive substring of Code or Name
	Sector string   // exact sector name, case-insensitive
	Codes  []string // watchlist codes
}

// FilterInstruments keeps upstream order
func FilterInstruments(list []models.MInstrument, f InstrumentFilter) []models.MInstrument {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var codes map[string]bool
	if len(f.Codes) > 0 {
		codes = make(map[string]bool, len(f.Codes))
		for _, c := range f.Codes {
			if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
				codes[c] = true
			}
		}
	}

	out := make([]models.MInstrument, 0, len(list))
	for _, in := range list {
		if query != "" &&
			!strings.Contains(strings.ToLower(in.Code), query) &&
			!strings.Contains(strings.ToLower(in.Name), query) {
			continue
		}
		if f.Sector != "" && !strings.EqualFold(in.SectorName, f.Sector) {
			continue
		}
		if codes != nil && !codes[strings.ToUpper(in.Code)] {
			continue
		}
		out = append(out, in)
	}
	return out
}

// FindInstrument looks up a code, ignoring case
func FindInstrument(list []models.MInstrument, code string) (models.MInstrument, bool) {
	for _, in := range list {
		if strings.EqualFold(in.Code, code) {
			return in, true
		}
	}
	return models.MInstrument{}, false
}
