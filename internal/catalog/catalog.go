// Package catalog loads star and planet records from NASA Exoplanet Archive
// CSV exports.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// StarRecord holds the host star fields of a catalog row, in catalog units.
type StarRecord struct {
	HostName    string  // hostname
	MassSolar   float64 // st_mass, solar masses
	RadiusSolar float64 // st_rad, solar radii
	TeffK       float64 // st_teff, Kelvin
}

// PlanetRecord holds the planet fields of a catalog row, in catalog units.
type PlanetRecord struct {
	Name        string  // pl_name
	PeriodDays  float64 // pl_orbper, days
	RadiusEarth float64 // pl_rade, earth radii
	MassEarth   float64 // pl_masse, earth masses
}

// Required exoplanet-archive column names.
var requiredColumns = []string{
	"hostname", "st_mass", "st_rad", "st_teff",
	"pl_name", "pl_orbper", "pl_rade", "pl_masse",
}

// Load reads a CSV export and returns the host star record plus one planet
// record per row. Every row repeats the host star columns; the first row's
// values win, matching the single-system assumption of the viewer.
func Load(r io.Reader) (StarRecord, []PlanetRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return StarRecord{}, nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return StarRecord{}, nil, fmt.Errorf("catalog missing column %q", name)
		}
	}

	var star StarRecord
	var planets []PlanetRecord

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return StarRecord{}, nil, fmt.Errorf("read catalog row %d: %w", row, err)
		}

		field := func(name string) string { return record[cols[name]] }
		num := func(name string) (float64, error) {
			v, err := strconv.ParseFloat(field(name), 64)
			if err != nil {
				return 0, fmt.Errorf("catalog row %d: column %q: %w", row, name, err)
			}
			return v, nil
		}

		if row == 1 {
			star.HostName = field("hostname")
			if star.MassSolar, err = num("st_mass"); err != nil {
				return StarRecord{}, nil, err
			}
			if star.RadiusSolar, err = num("st_rad"); err != nil {
				return StarRecord{}, nil, err
			}
			if star.TeffK, err = num("st_teff"); err != nil {
				return StarRecord{}, nil, err
			}
		}

		p := PlanetRecord{Name: field("pl_name")}
		if p.PeriodDays, err = num("pl_orbper"); err != nil {
			return StarRecord{}, nil, err
		}
		if p.RadiusEarth, err = num("pl_rade"); err != nil {
			return StarRecord{}, nil, err
		}
		if p.MassEarth, err = num("pl_masse"); err != nil {
			return StarRecord{}, nil, err
		}
		planets = append(planets, p)
	}

	if len(planets) == 0 {
		return StarRecord{}, nil, fmt.Errorf("catalog has no planet rows")
	}

	return star, planets, nil
}

// LoadFile opens and loads a CSV catalog from disk.
func LoadFile(path string) (StarRecord, []PlanetRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return StarRecord{}, nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in TRAPPIST-1 system, used when no catalog file
// is supplied. Values from the NASA Exoplanet Archive default parameter set.
func Default() (StarRecord, []PlanetRecord) {
	star := StarRecord{
		HostName:    "TRAPPIST-1",
		MassSolar:   0.12,
		RadiusSolar: 0.1192,
		TeffK:       2566,
	}
	planets := []PlanetRecord{
		{Name: "TRAPPIST-1 b", PeriodDays: 1.51087081, RadiusEarth: 1.086, MassEarth: 0.85},
		{Name: "TRAPPIST-1 c", PeriodDays: 2.4218233, RadiusEarth: 1.056, MassEarth: 1.38},
		{Name: "TRAPPIST-1 d", PeriodDays: 4.049610, RadiusEarth: 0.772, MassEarth: 0.41},
		{Name: "TRAPPIST-1 e", PeriodDays: 6.099615, RadiusEarth: 0.918, MassEarth: 0.62},
		{Name: "TRAPPIST-1 f", PeriodDays: 9.206690, RadiusEarth: 1.045, MassEarth: 0.68},
		{Name: "TRAPPIST-1 g", PeriodDays: 12.35294, RadiusEarth: 1.127, MassEarth: 1.34},
		{Name: "TRAPPIST-1 h", PeriodDays: 18.767, RadiusEarth: 0.755, MassEarth: 0.33},
	}
	return star, planets
}
