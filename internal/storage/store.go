// Package storage persists headless chain runs under a data directory.
//
// Each run gets its own directory holding metadata.json (parameters and
// summary metrics), points.csv (the final chain configuration), and
// trace.csv (per-frame observable series).
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/helix/internal/chain"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	Step      float64            `json:"step"`
	FinalTime float64            `json:"final_time"`
	Params    ParamsRecord       `json:"params"`
	Metrics   map[string]float64 `json:"metrics"`
}

// ParamsRecord is the serialized form of chain.Params.
type ParamsRecord struct {
	Length      int        `json:"length"`
	Persistence float64    `json:"persistence_length"`
	Temperature float64    `json:"temperature"`
	Rigidity    float64    `json:"bending_rigidity"`
	Noise       float64    `json:"noise_level"`
	Force       [3]float64 `json:"external_force"`
	ForceMode   string     `json:"force_mode"`
}

func recordParams(p chain.Params) ParamsRecord {
	return ParamsRecord{
		Length:      p.Length,
		Persistence: p.PersistenceLength,
		Temperature: p.Temperature,
		Rigidity:    p.BendingRigidity,
		Noise:       p.NoiseLevel,
		Force:       [3]float64{p.ExternalForce.X, p.ExternalForce.Y, p.ExternalForce.Z},
		ForceMode:   p.ForceMode.String(),
	}
}

// Trace is one recorded observable series.
type Trace struct {
	Name   string
	Values []float64
}

// Save writes one completed run and returns its ID.
func (s *Store) Save(p chain.Params, step, finalTime float64, points []chain.Vec3, traces []Trace, metricVals map[string]float64) (string, error) {
	runID := fmt.Sprintf("chain_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	frames := 0
	if len(traces) > 0 {
		frames = len(traces[0].Values)
	}
	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Frames:    frames,
		Step:      step,
		FinalTime: finalTime,
		Params:    recordParams(p),
		Metrics:   metricVals,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writePoints(filepath.Join(runDir, "points.csv"), points); err != nil {
		return "", err
	}
	if err := s.writeTraces(filepath.Join(runDir, "trace.csv"), step, traces); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writePoints(path string, points []chain.Vec3) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"index", "x", "y", "z"}); err != nil {
		return err
	}
	for i, p := range points {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeTraces(path string, step float64, traces []Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"time"}
	for _, tr := range traces {
		header = append(header, tr.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	frames := 0
	if len(traces) > 0 {
		frames = len(traces[0].Values)
	}
	for i := 0; i < frames; i++ {
		row := []string{strconv.FormatFloat(float64(i+1)*step, 'f', 6, 64)}
		for _, tr := range traces {
			v := 0.0
			if i < len(tr.Values) {
				v = tr.Values[i]
			}
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPoints reads back the final chain configuration of a run.
func (s *Store) LoadPoints(runID string) ([]chain.Vec3, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []chain.Vec3{}, nil
	}

	points := make([]chain.Vec3, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		x, err1 := strconv.ParseFloat(record[1], 64)
		y, err2 := strconv.ParseFloat(record[2], 64)
		z, err3 := strconv.ParseFloat(record[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		points = append(points, chain.Vec3{X: x, Y: y, Z: z})
	}
	return points, nil
}

// LoadTraces reads back the per-frame observable series of a run.
func (s *Store) LoadTraces(runID string) ([]float64, []Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, []Trace{}, nil
	}

	header := records[0]
	traces := make([]Trace, len(header)-1)
	for i := range traces {
		traces[i].Name = header[i+1]
	}

	times := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for i := range traces {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				v = 0
			}
			traces[i].Values = append(traces[i].Values, v)
		}
	}
	return times, traces, nil
}

// ExportJSON writes a run's full data as indented JSON to w-like stdout.
func ExportJSONStdout(meta *RunMetadata, points []chain.Vec3, times []float64, traces []Trace) error {
	type export struct {
		RunMetadata
		Points [][3]float64         `json:"points"`
		Times  []float64            `json:"times"`
		Traces map[string][]float64 `json:"traces"`
	}

	out := export{
		RunMetadata: *meta,
		Points:      make([][3]float64, len(points)),
		Times:       times,
		Traces:      make(map[string][]float64, len(traces)),
	}
	for i, p := range points {
		out.Points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	for _, tr := range traces {
		out.Traces[tr.Name] = tr.Values
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
