package storage

import (
	"bytes"
	"strings"
	"testing"
)

func testSamples() []Sample {
	return []Sample{
		{Frame: 1, Time: 0.0166, Displacement: 3.99, Velocity: 3.995, EMF: -4.99, Charge: 0.5, Particles: 3},
		{Frame: 2, Time: 0.0333, Displacement: 7.97, Velocity: 3.98, EMF: -4.97, Charge: 1.0, Particles: 6},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	metrics := map[string]float64{"peak_emf": 5.0}
	runID, err := st.Save(42, 60, 10.0, metrics, testSamples())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 || meta.FPS != 60 || meta.Frames != 2 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["peak_emf"] != 5.0 {
		t.Errorf("metrics not persisted: %+v", meta.Metrics)
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Frame != 1 || samples[1].Particles != 6 {
		t.Errorf("sample data mismatch: %+v", samples)
	}
	if samples[0].Velocity != 3.995 {
		t.Errorf("velocity = %v, want 3.995", samples[0].Velocity)
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(1, 30, 5.0, nil, testSamples()); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, testSamples()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,time,") {
		t.Errorf("bad header: %s", lines[0])
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := &RunMetadata{ID: "induction_1", Frames: 2}
	if err := ExportJSON(&buf, meta, testSamples()); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"induction_1"`) {
		t.Error("metadata missing from JSON export")
	}
	if !strings.Contains(buf.String(), `"samples"`) {
		t.Error("samples missing from JSON export")
	}
}
