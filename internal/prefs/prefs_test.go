package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/logdeck/logdeck/internal/logbuf"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if !p.Follow {
		t.Fatal("Follow should default to true")
	}
	if p.Mask() != logbuf.MaskAll {
		t.Fatalf("Mask() = %v, want all levels", p.Mask())
	}
}

func TestLoad_ParsesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`
theme = "light"
levels = ["error", "warn"]
follow = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != "light" {
		t.Fatalf("Theme = %q, want light", p.Theme)
	}
	if p.Follow {
		t.Fatal("Follow = true, want false")
	}
	want := logbuf.MaskError | logbuf.MaskWarning
	if p.Mask() != want {
		t.Fatalf("Mask() = %v, want %v", p.Mask(), want)
	}
}

func TestLoad_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default after corrupt file", p.Theme)
	}
}

func TestMask_UnknownAndEmptyLevels(t *testing.T) {
	p := Prefs{Levels: []string{"verbose", "chatty"}}
	if p.Mask() != logbuf.MaskAll {
		t.Fatalf("Mask() = %v, want all when nothing recognized", p.Mask())
	}

	p = Prefs{}
	if p.Mask() != logbuf.MaskAll {
		t.Fatalf("Mask() = %v, want all for empty list", p.Mask())
	}
}

func TestSetMaskRoundTrip(t *testing.T) {
	var p Prefs
	p.SetMask(logbuf.MaskInfo | logbuf.MaskError)
	if got := p.Mask(); got != logbuf.MaskInfo|logbuf.MaskError {
		t.Fatalf("round trip = %v", got)
	}
	if len(p.Levels) != 2 || p.Levels[0] != "info" || p.Levels[1] != "error" {
		t.Fatalf("Levels = %v", p.Levels)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	p := defaults()
	p.Theme = "light"
	p.SetMask(logbuf.MaskError)
	p.Follow = false

	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load(path)
	if got.Theme != "light" || got.Follow || got.Mask() != logbuf.MaskError {
		t.Fatalf("Load after Save = %+v", got)
	}
}
