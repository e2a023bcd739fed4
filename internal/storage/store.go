package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/mandel/internal/fractal"
	"github.com/san-kum/mandel/internal/render"
)

var ErrRunNotFound = errors.New("storage: run not found")

const metadataFile = "metadata.json"

// Store keeps a record of finished renders, one directory per run.
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
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Output     string    `json:"output"`
	Format     string    `json:"format"`
	Resolution string    `json:"resolution"`
	UpperLeft  string    `json:"upper_left"`
	LowerRight string    `json:"lower_right"`
	Limit      int       `json:"limit"`
	Workers    int       `json:"workers"`
	Bands      int       `json:"bands"`
	Elapsed    float64   `json:"elapsed_seconds"`
	Bounded    int       `json:"bounded_pixels"`
	Mean       float64   `json:"mean_intensity"`
}

// NewRun fills the job and image statistics of a finished render.
func NewRun(job render.Job, pixels []byte) RunMetadata {
	bounded, sum := 0, 0
	for _, p := range pixels {
		if p == 0 {
			bounded++
		}
		sum += int(p)
	}
	meta := RunMetadata{
		Resolution: job.Bounds.String(),
		UpperLeft:  fractal.FormatComplex(job.Viewport.UpperLeft),
		LowerRight: fractal.FormatComplex(job.Viewport.LowerRight),
		Limit:      job.Limit,
		Bounded:    bounded,
	}
	if len(pixels) > 0 {
		meta.Mean = float64(sum) / float64(len(pixels))
	}
	return meta
}

// Save assigns an ID and timestamp to meta and writes it. It returns the ID.
func (s *Store) Save(meta RunMetadata) (string, error) {
	meta.ID = uuid.NewString()
	meta.Timestamp = time.Now()

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return meta.ID, f.Close()
}

// List returns all runs, oldest first.
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
		meta, err := s.load(entry.Name())
		if err != nil {
			continue
		}
		if _, err := uuid.Parse(meta.ID); err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// Load returns the run with the given ID. A unique ID prefix is accepted.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	if _, err := uuid.Parse(runID); err == nil {
		return s.load(runID)
	}

	runs, err := s.List()
	if err != nil {
		return nil, err
	}
	var match *RunMetadata
	for i := range runs {
		if runID != "" && strings.HasPrefix(runs[i].ID, runID) {
			if match != nil {
				return nil, fmt.Errorf("storage: run id prefix %q is ambiguous", runID)
			}
			match = &runs[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return match, nil
}

func (s *Store) load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
