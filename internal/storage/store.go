package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/theme"
)

var csvHeader = []string{"frame", "width", "height", "particles", "links", "bounces", "out_of_bounds", "mean_speed", "mode"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type TraceMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Frames    int                `json:"frames"`
	Theme     string             `json:"theme"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a new trace directory and fills in meta.ID and meta.Frames.
func (s *Store) Save(meta TraceMetadata, frames []field.FrameStats) (string, error) {
	id := "field_" + uuid.NewString()[:8]
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta.ID = id
	meta.Frames = len(frames)
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	if err := writeMetadata(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(dir, "frames.csv"), frames); err != nil {
		return "", err
	}
	return id, nil
}

func writeMetadata(path string, meta TraceMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeFrames(path string, frames []field.FrameStats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, fs := range frames {
		row := []string{
			strconv.Itoa(fs.Frame),
			strconv.FormatFloat(fs.Width, 'f', 1, 64),
			strconv.FormatFloat(fs.Height, 'f', 1, 64),
			strconv.Itoa(fs.Particles),
			strconv.Itoa(fs.Links),
			strconv.Itoa(fs.Bounces),
			strconv.Itoa(fs.OutOfBounds),
			strconv.FormatFloat(fs.MeanSpeed, 'f', 6, 64),
			fs.Mode.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable trace, newest first.
func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	traces := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		traces = append(traces, *meta)
	}

	sort.Slice(traces, func(i, j int) bool {
		return traces[i].Timestamp.After(traces[j].Timestamp)
	})
	return traces, nil
}

func (s *Store) Load(id string) (*TraceMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTraceNotFound, id)
		}
		return nil, err
	}

	var meta TraceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("trace %s: %w", id, err)
	}
	return &meta, nil
}

func (s *Store) LoadFrames(id string) ([]field.FrameStats, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "frames.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTraceNotFound, id)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("trace %s: %w", id, err)
	}
	if len(records) < 2 {
		return []field.FrameStats{}, nil
	}

	frames := make([]field.FrameStats, 0, len(records)-1)
	for i, rec := range records[1:] {
		fs, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("trace %s row %d: %w", id, i+1, err)
		}
		frames = append(frames, fs)
	}
	return frames, nil
}

func parseRow(rec []string) (field.FrameStats, error) {
	var (
		fs  field.FrameStats
		err error
	)
	ints := []struct {
		dst *int
		src string
	}{
		{&fs.Frame, rec[0]},
		{&fs.Particles, rec[3]},
		{&fs.Links, rec[4]},
		{&fs.Bounces, rec[5]},
		{&fs.OutOfBounds, rec[6]},
	}
	for _, v := range ints {
		if *v.dst, err = strconv.Atoi(v.src); err != nil {
			return fs, err
		}
	}
	if fs.Width, err = strconv.ParseFloat(rec[1], 64); err != nil {
		return fs, err
	}
	if fs.Height, err = strconv.ParseFloat(rec[2], 64); err != nil {
		return fs, err
	}
	if fs.MeanSpeed, err = strconv.ParseFloat(rec[7], 64); err != nil {
		return fs, err
	}
	if fs.Mode, err = theme.Parse(rec[8]); err != nil {
		return fs, err
	}
	return fs, nil
}

type exportData struct {
	TraceMetadata
	Series []field.FrameStats `json:"series"`
}

// Export writes a trace as a single JSON document.
func (s *Store) Export(id string, w io.Writer) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData{TraceMetadata: *meta, Series: frames})
}
