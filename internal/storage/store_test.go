package storage

import (
	"math"
	"testing"

	"github.com/san-kum/helix/internal/chain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p := chain.DefaultParams()
	p.ExternalForce = chain.Vec3{X: 2.5}
	points := []chain.Vec3{{}, {X: 1.25, Y: -0.5}, {X: 2, Y: 0.5, Z: 1}}
	traces := []Trace{
		{Name: "end_to_end", Values: []float64{1.0, 1.5, 2.0}},
		{Name: "radius_of_gyration", Values: []float64{0.5, 0.6, 0.7}},
	}
	metricVals := map[string]float64{"end_to_end": 1.5}

	runID, err := st.Save(p, 0.01, 0.03, points, traces, metricVals)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Params.Length != p.Length {
		t.Errorf("length = %d, want %d", meta.Params.Length, p.Length)
	}
	if meta.Params.Force[0] != 2.5 {
		t.Errorf("force = %v", meta.Params.Force)
	}
	if meta.Frames != 3 {
		t.Errorf("frames = %d, want 3", meta.Frames)
	}

	loaded, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(points) {
		t.Fatalf("loaded %d points, want %d", len(loaded), len(points))
	}
	for i := range points {
		if math.Abs(loaded[i].X-points[i].X) > 1e-6 ||
			math.Abs(loaded[i].Y-points[i].Y) > 1e-6 ||
			math.Abs(loaded[i].Z-points[i].Z) > 1e-6 {
			t.Errorf("point %d = %v, want %v", i, loaded[i], points[i])
		}
	}

	times, loadedTraces, err := st.LoadTraces(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 3 {
		t.Errorf("loaded %d times, want 3", len(times))
	}
	if math.Abs(times[0]-0.01) > 1e-9 {
		t.Errorf("first time = %v, want 0.01", times[0])
	}
	if len(loadedTraces) != 2 || loadedTraces[0].Name != "end_to_end" {
		t.Fatalf("traces = %+v", loadedTraces)
	}
	if math.Abs(loadedTraces[1].Values[2]-0.7) > 1e-6 {
		t.Errorf("trace value = %v, want 0.7", loadedTraces[1].Values[2])
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/nonexistent")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListFindsRuns(t *testing.T) {
	st := New(t.TempDir())
	st.Init()

	p := chain.DefaultParams()
	if _, err := st.Save(p, 0.01, 0.01, []chain.Vec3{{}}, nil, nil); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("chain_0"); err == nil {
		t.Error("expected error for missing run")
	}
}
