package integrations

import "sort"

// ReaderProfile describes a target e-reader screen for exported comics.
type ReaderProfile struct {
	Name      string
	Width     int  // Screen width in pixels
	Height    int  // Screen height in pixels
	DPI       int  // Dots per inch
	Grayscale bool // E-ink panel without color
}

var ReaderProfiles = map[string]ReaderProfile{
	"kindle": {
		Name:      "Kindle",
		Width:     600,
		Height:    800,
		DPI:       167,
		Grayscale: true,
	},
	"kindle-paperwhite": {
		Name:      "Kindle Paperwhite",
		Width:     1236,
		Height:    1648,
		DPI:       300,
		Grayscale: true,
	},
	"kindle-colorsoft": {
		Name:   "Kindle Colorsoft",
		Width:  1264,
		Height: 1680,
		DPI:    300,
	},
	"kobo-clara": {
		Name:      "Kobo Clara",
		Width:     1072,
		Height:    1448,
		DPI:       300,
		Grayscale: true,
	},
	"kobo-libra-colour": {
		Name:   "Kobo Libra Colour",
		Width:  1264,
		Height: 1680,
		DPI:    300,
	},
	"tablet": {
		Name:   "Tablet",
		Width:  1536,
		Height: 2048,
		DPI:    264,
	},
}

func GetReaderProfile(id string) (ReaderProfile, bool) {
	profile, ok := ReaderProfiles[id]
	return profile, ok
}

// ListReaderProfiles returns "id: name" entries sorted by id.
func ListReaderProfiles() []string {
	ids := make([]string, 0, len(ReaderProfiles))
	for id := range ReaderProfiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id+": "+ReaderProfiles[id].Name)
	}
	return out
}

// OptimizationSettings defines how pages are processed for a reader.
type OptimizationSettings struct {
	MaxWidth  int
	MaxHeight int
	Quality   int     // JPEG quality (1-100)
	Grayscale bool
	Contrast  float64 // 1.0 = no change
	Gamma     float64 // 1.0 = no change
	Format    string  // "jpeg" or "png"
}

// OptimizationSettings returns recommended settings for the profile.
func (r ReaderProfile) OptimizationSettings() OptimizationSettings {
	settings := OptimizationSettings{
		MaxWidth:  r.Width,
		MaxHeight: r.Height,
		Quality:   85,
		Grayscale: r.Grayscale,
		Contrast:  1.0,
		Gamma:     1.0,
		Format:    "jpeg",
	}

	if r.DPI >= 300 {
		settings.Quality = 90
	}

	// e-ink renders line art better slightly darker and harder
	if r.Grayscale {
		settings.Contrast = 1.1
		settings.Gamma = 0.9
	}

	return settings
}
