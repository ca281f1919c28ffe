package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-logr/logr/testr"

	"github.com/angristan/smarthome-tui/internal/config"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// brokenSurface fails every operation
type brokenSurface struct {
	writes int
}

func (b *brokenSurface) Get(key string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

func (b *brokenSurface) Set(key string, value []byte) error {
	b.writes++
	return errors.New("quota exceeded")
}

func surfaces(t *testing.T) map[string]Surface {
	t.Helper()
	sqlite, err := NewSQLiteSurface(testr.New(t), filepath.Join(t.TempDir(), "db", "state.db"))
	if err != nil {
		t.Fatalf("NewSQLiteSurface failed: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Surface{
		"file":   NewFileSurface(filepath.Join(t.TempDir(), "data")),
		"memory": NewMemorySurface(),
		"sqlite": sqlite,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, surface := range surfaces(t) {
		t.Run(name, func(t *testing.T) {
			s := New(surface, testr.New(t))

			s.Save("thing", sample{Name: "lamp", Count: 3})
			got := Load(s, "thing", sample{})

			if got != (sample{Name: "lamp", Count: 3}) {
				t.Errorf("Load() = %+v", got)
			}

			// Overwrite
			s.Save("thing", sample{Name: "fan", Count: 1})
			got = Load(s, "thing", sample{})
			if got.Name != "fan" {
				t.Errorf("Expected overwritten value, got %+v", got)
			}
		})
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	for name, surface := range surfaces(t) {
		t.Run(name, func(t *testing.T) {
			s := New(surface, testr.New(t))
			def := []sample{{Name: "default"}}

			got := Load(s, "absent", def)

			if !reflect.DeepEqual(got, def) {
				t.Errorf("Expected default, got %+v", got)
			}
		})
	}
}

func TestLoadCorruptedReturnsDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "{not json"},
		{"wrong shape", `{"name": 12}`},
		{"empty", ""},
		{"whitespace", "  \n"},
		{"null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := NewMemorySurface()
			surface.Set("thing", []byte(tt.raw))
			s := New(surface, testr.New(t))

			got := Load(s, "thing", sample{Name: "default"})

			if got.Name != "default" {
				t.Errorf("Expected default for %q, got %+v", tt.raw, got)
			}
		})
	}
}

func TestFailuresAreSwallowed(t *testing.T) {
	surface := &brokenSurface{}
	s := New(surface, testr.New(t))

	got := Load(s, "thing", 42)
	if got != 42 {
		t.Errorf("Expected default on read failure, got %d", got)
	}

	// Must not panic or report anything
	s.Save("thing", sample{Name: "x"})
	if surface.writes != 1 {
		t.Errorf("Expected one write attempt, got %d", surface.writes)
	}

	// Values that cannot be encoded never reach the surface
	s.Save("thing", make(chan int))
	if surface.writes != 1 {
		t.Errorf("Expected unencodable value to be dropped, got %d writes", surface.writes)
	}
}

func TestFileSurfaceLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(NewFileSurface(dir), testr.New(t))

	s.Save(KeySettings, map[string]string{"theme": "dark"})

	path := filepath.Join(dir, "shp.settings.json")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected %s to exist: %v", path, err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file left behind")
	}
}

func TestFileSurfaceUnwritable(t *testing.T) {
	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	surface := NewFileSurface(filepath.Join(blocker, "data"))
	if err := surface.Set("k", []byte("1")); err == nil {
		t.Error("Expected Set to fail under a regular file")
	}

	s := New(surface, testr.New(t))
	s.Save("k", 1)
	if got := Load(s, "k", 7); got != 7 {
		t.Errorf("Expected default after failed write, got %d", got)
	}
}

func TestMemorySurfaceCopies(t *testing.T) {
	m := NewMemorySurface()
	value := []byte("abc")
	m.Set("k", value)
	value[0] = 'z'

	got, _ := m.Get("k")
	if string(got) != "abc" {
		t.Errorf("Surface kept a reference to the caller's slice: %s", got)
	}
}

func TestOpen(t *testing.T) {
	log := testr.New(t)

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		wantErr error
	}{
		{"file", config.StorageConfig{Backend: config.BackendFile, Path: t.TempDir()}, nil},
		{"sqlite", config.StorageConfig{Backend: config.BackendSQLite, Path: filepath.Join(t.TempDir(), "s.db")}, nil},
		{"memory", config.StorageConfig{Backend: config.BackendMemory}, nil},
		{"unknown", config.StorageConfig{Backend: "etcd"}, config.ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.cfg, log)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer s.Close()

			s.Save("k", "v")
			if got := Load(s, "k", ""); got != "v" {
				t.Errorf("Expected v, got %q", got)
			}
		})
	}
}

func TestSQLiteSurfacePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	first, err := NewSQLiteSurface(testr.New(t), path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Set(KeyDevices, []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	first.Close()

	second, err := NewSQLiteSurface(testr.New(t), path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	got, err := second.Get(KeyDevices)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("Expected [], got %s", got)
	}

	if _, err := second.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
