package lutris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestGameConfigMarshal(t *testing.T) {
	cfg := NewGameConfig("dolphin", "/roms/game.iso", map[string]string{"platform": "3"})

	got, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	want := `dolphin: {}
game:
  main_file: /roms/game.iso
  platform: "3"
system: {}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("Marshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGameConfigOptionsOverrideMainFile(t *testing.T) {
	cfg := NewGameConfig("mame", "/roms/a.zip", map[string]string{"main_file": "/other.zip", "x": "y"})

	want := map[string]string{"main_file": "/other.zip", "x": "y"}
	if diff := cmp.Diff(want, cfg.Game); diff != "" {
		t.Fatalf("Game section mismatch (-want +got):\n%s", diff)
	}
}

func TestGameConfigWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := ConfigPath(dir, "super-game-1700000000")
	if path != filepath.Join(dir, "super-game-1700000000.yml") {
		t.Fatalf("ConfigPath = %q", path)
	}

	if err := os.WriteFile(path, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := NewGameConfig("mednafen", "/roms/Super Game (USA).zip", nil)
	if err := cfg.WriteFile(path); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("written file is not valid YAML: %v\n%s", err, data)
	}
	want := map[string]map[string]string{
		"mednafen": {},
		"game":     {"main_file": "/roms/Super Game (USA).zip"},
		"system":   {},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != configPerms {
		t.Fatalf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(configPerms))
	}
}

func TestIsPlatform(t *testing.T) {
	for _, p := range []string{"Nintendo SNES", "Commodore VIC-20", "J2ME", "Magnavox Odyssey²"} {
		if !IsPlatform(p) {
			t.Fatalf("IsPlatform(%q) = false", p)
		}
	}
	for _, p := range []string{"", "nintendo snes", "Commodore VIC-20J2ME", "Nintendo Switch"} {
		if IsPlatform(p) {
			t.Fatalf("IsPlatform(%q) = true", p)
		}
	}
}
