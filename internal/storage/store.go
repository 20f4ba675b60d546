package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/stanislausjustin/Computational-Physics/internal/gas"
)

// Store persists headless runs: one directory per run holding metadata.json
// and samples.csv with the per-tick statistics.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Sample is one tick's worth of aggregate statistics.
type Sample struct {
	Tick  int       `json:"tick"`
	Stats gas.Stats `json:"stats"`
}

// Recorder buffers samples as a simulation observer.
type Recorder struct {
	Samples []Sample
}

func (r *Recorder) OnStep(tick int, stats gas.Stats) {
	r.Samples = append(r.Samples, Sample{Tick: tick, Stats: stats})
}

// RunMetadata describes a stored run.
type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Steps     int       `json:"steps"`
	Particles int       `json:"particles"`
	Radius    float64   `json:"radius"`
	Mass      float64   `json:"mass"`
	Scale     float64   `json:"scale"`
	Seed      int64     `json:"seed"`
	Final     gas.Stats `json:"final"`
}

var sampleHeader = []string{"tick", "avg_speed", "temperature", "pressure", "avg_ke", "total_ke", "wall_hits"}

// Save writes a run directory and returns its ID.
func (s *Store) Save(params gas.Params, steps int, samples []Sample) (string, error) {
	runID := fmt.Sprintf("gas_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Steps:     steps,
		Particles: params.Particles,
		Radius:    params.Radius,
		Mass:      params.Mass,
		Scale:     params.Scale,
		Seed:      params.Seed,
	}
	if len(samples) > 0 {
		meta.Final = samples[len(samples)-1].Stats
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

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, samples); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteCSV writes the sample header and rows to w.
func WriteCSV(out io.Writer, samples []Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write(sampleHeader); err != nil {
		return err
	}
	for _, sample := range samples {
		if err := w.Write(sampleRow(sample)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func sampleRow(s Sample) []string {
	return []string{
		strconv.Itoa(s.Tick),
		strconv.FormatFloat(s.Stats.AverageSpeed, 'f', 6, 64),
		strconv.FormatFloat(s.Stats.Temperature, 'f', 6, 64),
		strconv.FormatFloat(s.Stats.Pressure, 'f', 6, 64),
		strconv.FormatFloat(s.Stats.AverageKineticEnergy, 'f', 6, 64),
		strconv.FormatFloat(s.Stats.TotalKineticEnergy, 'f', 6, 64),
		strconv.Itoa(s.Stats.WallHits),
	}
}

// List returns metadata for every stored run.
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

// Load returns the metadata of one run.
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

// LoadSamples reads the per-tick statistics of a stored run.
func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < len(sampleHeader) {
			continue
		}

		tick, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		fields := make([]float64, 5)
		ok := true
		for j := range fields {
			fields[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		hits, err := strconv.Atoi(record[6])
		if err != nil {
			continue
		}

		samples = append(samples, Sample{
			Tick: tick,
			Stats: gas.Stats{
				AverageSpeed:         fields[0],
				Temperature:          fields[1],
				Pressure:             fields[2],
				AverageKineticEnergy: fields[3],
				TotalKineticEnergy:   fields[4],
				WallHits:             hits,
			},
		})
	}

	return samples, nil
}

// ExportJSONStdout dumps a run as a single JSON document on stdout.
func ExportJSONStdout(meta *RunMetadata, samples []Sample) error {
	out := struct {
		Meta    *RunMetadata `json:"meta"`
		Samples []Sample     `json:"samples"`
	}{meta, samples}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
