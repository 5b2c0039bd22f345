package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/hexcube/puzzle"
)

// FS stores puzzle documents under one root directory with a
// subdirectory per grade. The zero value is unusable; obtain one from
// NewFS.
type FS struct {
	root string
}

// NewFS returns a store rooted at dir. The directory tree is created
// lazily on the first Save.
func NewFS(dir string) *FS {
	return &FS{root: dir}
}

// pathFor places an artifact in its grade directory.
func (s *FS) pathFor(id string, d puzzle.Difficulty) string {
	return filepath.Join(s.root, d.String(), id+".json")
}

// checkID normalizes an id and rejects anything that could escape the
// storage root.
func checkID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadID, id)
	}

	return id, nil
}

// Save persists doc under a freshly assigned UUID and returns that id.
// The document is validated before anything touches the disk.
func (s *FS) Save(ctx context.Context, doc *puzzle.Document) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	if err := doc.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.New().String()
	target := s.pathFor(id, doc.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("store: create grade directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("store: create artifact: %w", err)
	}
	if err := doc.Encode(f); err != nil {
		_ = f.Close()

		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("store: close artifact: %w", err)
	}

	return id, nil
}

// Load retrieves the document stored under id, searching every grade
// directory. The document is validated during decoding; ids that no
// grade holds yield ErrNotFound.
func (s *FS) Load(ctx context.Context, id string) (*puzzle.Document, error) {
	id, err := checkID(id)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, d := range puzzle.Difficulties() {
		f, err := os.Open(s.pathFor(id, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return nil, fmt.Errorf("store: open artifact: %w", err)
		}

		doc, decErr := puzzle.Decode(f)
		_ = f.Close()
		if decErr != nil {
			return nil, decErr
		}

		return doc, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// header mirrors the document bookkeeping without the cell payload, so
// listing never materializes cells.
type header struct {
	Version        int               `json:"version"`
	Difficulty     puzzle.Difficulty `json:"difficulty"`
	GeneratedAt    time.Time         `json:"generatedAt"`
	GivenCellCount int               `json:"givenCellCount"`
	EmptyCellCount int               `json:"emptyCellCount"`
}

// List returns the metadata of every readable artifact, grouped by grade
// in ascending hardness and ordered lexically by id within each grade.
// Files that are not readable version-1 artifacts are skipped, so one
// damaged file never hides the rest.
func (s *FS) List(ctx context.Context) ([]Meta, error) {
	var out []Meta
	for _, d := range puzzle.Difficulties() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := filepath.Join(s.root, d.String())
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return nil, fmt.Errorf("store: read grade directory: %w", err)
		}

		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var h header
			if err := json.Unmarshal(data, &h); err != nil || h.Version != puzzle.Version {
				continue
			}
			out = append(out, Meta{
				ID:             strings.TrimSuffix(e.Name(), ".json"),
				Difficulty:     h.Difficulty,
				GeneratedAt:    h.GeneratedAt,
				GivenCellCount: h.GivenCellCount,
				EmptyCellCount: h.EmptyCellCount,
			})
		}
	}

	return out, nil
}
