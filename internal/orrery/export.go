package orrery

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// SnapshotExport is the JSON-serializable representation of system state.
type SnapshotExport struct {
	GeneratedAt  time.Time    `json:"generated_at"`
	ScalePxPerAU float64      `json:"scale_px_per_au"`
	SimElapsedS  float64      `json:"sim_elapsed_seconds"`
	Bodies       []BodyExport `json:"bodies"`
}

// BodyExport is a JSON-friendly body representation.
type BodyExport struct {
	Name          string  `json:"name"`
	Kind          string  `json:"kind"`
	X             float64 `json:"x_px"`
	Y             float64 `json:"y_px"`
	DisplayRadius float64 `json:"display_radius_px"`
	OrbitRadius   float64 `json:"orbit_radius_px,omitempty"`
	OrbitAU       float64 `json:"orbit_au,omitempty"`
	MassKg        float64 `json:"mass_kg"`
	RadiusM       float64 `json:"radius_m"`
	PeriodSec     float64 `json:"period_seconds,omitempty"`
	TeffK         float64 `json:"teff_k,omitempty"`
}

// ExportSnapshot converts the system's current geometry to an exportable
// snapshot.
func ExportSnapshot(sys *System, generatedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{
		GeneratedAt:  generatedAt,
		ScalePxPerAU: sys.Scale(),
		SimElapsedS:  sys.Elapsed(),
	}

	for _, v := range sys.Views() {
		export.Bodies = append(export.Bodies, BodyExport{
			Name:          v.Name,
			Kind:          v.Kind.String(),
			X:             v.X,
			Y:             v.Y,
			DisplayRadius: v.DisplayRadius,
			OrbitRadius:   v.OrbitRadius,
			OrbitAU:       v.OrbitAU,
			MassKg:        v.MassKg,
			RadiusM:       v.RadiusM,
			PeriodSec:     v.PeriodSec,
			TeffK:         v.TeffK,
		})
	}

	return export
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummary writes a plain-text table of the system's bodies, one line
// per body, for the headless -summary mode.
func WriteSummary(w io.Writer, sys *System) {
	fmt.Fprintf(w, "%s  (scale %.4g px/AU, t+%s)\n",
		sys.Star().Name(), sys.Scale(), formatElapsed(sys.Elapsed()))
	fmt.Fprintf(w, "%-16s %-7s %12s %12s %12s\n", "BODY", "KIND", "ORBIT [AU]", "PERIOD [d]", "POS [px]")

	for _, v := range sys.Views() {
		orbit := "-"
		period := "-"
		if v.Kind == KindPlanet {
			orbit = fmt.Sprintf("%.4f", v.OrbitAU)
			period = fmt.Sprintf("%.3f", v.PeriodSec/86400)
		}
		fmt.Fprintf(w, "%-16s %-7s %12s %12s %6.0f,%-5.0f\n",
			v.Name, v.Kind, orbit, period, v.X, v.Y)
	}
}

func formatElapsed(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	switch {
	case d < time.Hour:
		return d.Round(time.Second).String()
	case d < 48*time.Hour:
		return d.Round(time.Minute).String()
	default:
		return fmt.Sprintf("%.1fd", d.Hours()/24)
	}
}
