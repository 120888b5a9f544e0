// Package storage persists evaluation runs: one directory per run with
// a JSON metadata file and the result tensor flattened to CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fluxline/fluxline/internal/bfield"
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
	ID        string    `json:"id"`
	Field     string    `json:"field"`
	Timestamp time.Time `json:"timestamp"`
	Sources   int       `json:"sources"`
	Observers int       `json:"observers"`
	PathLen   int       `json:"path_len"`
	Shape     []int     `json:"shape"`
	Elapsed   float64   `json:"elapsed_seconds"`
}

// Save writes one run directory and returns its ID.
func (s *Store) Save(field string, sources, observers, pathLen int, elapsed time.Duration, result *bfield.Tensor) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Field:     field,
		Timestamp: time.Now(),
		Sources:   sources,
		Observers: observers,
		PathLen:   pathLen,
		Shape:     result.Shape,
		Elapsed:   elapsed.Seconds(),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "field.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	// one CSV row per field vector: leading multi-index, then components
	lead := len(result.Shape) - 1
	header := make([]string, 0, lead+3)
	for i := 0; i < lead; i++ {
		header = append(header, fmt.Sprintf("i%d", i))
	}
	header = append(header, "fx", "fy", "fz")
	if err := w.Write(header); err != nil {
		return "", err
	}

	ix := make([]int, lead)
	rows := len(result.Data) / 3
	for r := 0; r < rows; r++ {
		row := make([]string, 0, lead+3)
		for _, i := range ix {
			row = append(row, strconv.Itoa(i))
		}
		for c := 0; c < 3; c++ {
			row = append(row, strconv.FormatFloat(result.Data[r*3+c], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
		for d := lead - 1; d >= 0; d-- {
			ix[d]++
			if ix[d] < result.Shape[d] {
				break
			}
			ix[d] = 0
		}
	}

	return runID, nil
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadField reads a run's tensor back, reconstructing the shape from the
// metadata file.
func (s *Store) LoadField(runID string) (*bfield.Tensor, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	csvPath := filepath.Join(s.baseDir, runID, "field.csv")
	file, err := os.Open(csvPath)
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
		return nil, fmt.Errorf("storage: run %s has no field data", runID)
	}

	data := make([]float64, 0, (len(records)-1)*3)
	for _, record := range records[1:] {
		if len(record) < 3 {
			return nil, fmt.Errorf("storage: run %s has a short row", runID)
		}
		for _, cell := range record[len(record)-3:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: run %s: %w", runID, err)
			}
			data = append(data, v)
		}
	}

	t := &bfield.Tensor{Shape: append([]int(nil), meta.Shape...), Data: data}
	if t.Size() != len(data) {
		return nil, fmt.Errorf("storage: run %s field size %d does not match shape %v", runID, len(data), meta.Shape)
	}
	return t, nil
}
