package orrery

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/polar"
)

func TestExportSnapshotJSONRoundTrip(t *testing.T) {
	star, planets := catalog.Default()
	sys, err := NewSystem(polar.Point{X: 640, Y: 360}, star, planets, 100)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	sys.Advance(86400)

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	export := ExportSnapshot(sys, now)

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded SnapshotExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.ScalePxPerAU != 100 {
		t.Errorf("ScalePxPerAU = %v", decoded.ScalePxPerAU)
	}
	if decoded.SimElapsedS != 86400 {
		t.Errorf("SimElapsedS = %v", decoded.SimElapsedS)
	}
	if len(decoded.Bodies) != len(planets)+1 {
		t.Fatalf("%d bodies, want %d", len(decoded.Bodies), len(planets)+1)
	}
	if decoded.Bodies[0].Kind != "star" {
		t.Errorf("first body kind = %q, want star", decoded.Bodies[0].Kind)
	}

	views := sys.Views()
	for i, b := range decoded.Bodies {
		if b.Name != views[i].Name {
			t.Errorf("body %d name = %q, want %q", i, b.Name, views[i].Name)
		}
		if b.X != views[i].X || b.Y != views[i].Y {
			t.Errorf("body %q position %v,%v, want %v,%v", b.Name, b.X, b.Y, views[i].X, views[i].Y)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	star, planets := catalog.Default()
	sys, err := NewSystem(polar.Point{X: 640, Y: 360}, star, planets, 100)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	var buf bytes.Buffer
	WriteSummary(&buf, sys)
	out := buf.String()

	if !strings.Contains(out, "TRAPPIST-1") {
		t.Errorf("summary missing host name:\n%s", out)
	}
	for _, p := range planets {
		if !strings.Contains(out, p.Name) {
			t.Errorf("summary missing planet %q:\n%s", p.Name, out)
		}
	}

	// Header + star line + one line per planet.
	lines := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1
	want := 2 + 1 + len(planets)
	if lines != want {
		t.Errorf("summary has %d lines, want %d:\n%s", lines, want, out)
	}
}
