package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "aliases",
			in:   []string{"-ld", "/db", "-ly=/yml", "-lg", "/games"},
			want: []string{"--lutris-database", "/db", "--lutris-yml-dir=/yml", "--lutris-game-dir", "/games"},
		},
		{
			name: "list values",
			in:   []string{"-f", "iso", "zip", "-s", "(USA)", "[!]", "-n"},
			want: []string{"--file-types=iso", "--file-types=zip", "--strip-filename=(USA)", "--strip-filename=[!]", "-n"},
		},
		{
			name: "empty list kept",
			in:   []string{"--strip-filename", "-d", "roms", "-f"},
			want: []string{"--strip-filename=", "-d", "roms", "--file-types="},
		},
		{
			name: "after terminator untouched",
			in:   []string{"-r", "mame", "--", "-ld", "x"},
			want: []string{"-r", "mame", "--", "-ld", "x"},
		},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, normalizeArgs(tt.in)); diff != "" {
			t.Fatalf("%s: normalizeArgs mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestParseFlags(t *testing.T) {
	cl, err := parseFlags([]string{
		"-d", "/roms", "-r", " dolphin ", "-p", "Nintendo GameCube",
		"-ld", "/pga.db", "-f", "iso", "gcz", "-o", "platform=0", "-s", "(USA)", "-n",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}

	opts := cl.opts
	if opts.Directory != "/roms" || opts.Runner != "dolphin" || opts.Platform != "Nintendo GameCube" {
		t.Fatalf("unexpected required values: %+v", opts)
	}
	if opts.DatabasePath != "/pga.db" || !opts.DryRun {
		t.Fatalf("unexpected optional values: %+v", opts)
	}
	if diff := cmp.Diff([]string{"iso", "gcz"}, opts.FileTypes); diff != "" {
		t.Fatalf("FileTypes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"platform=0"}, opts.GameOptions); diff != "" {
		t.Fatalf("GameOptions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"(USA)"}, opts.StripTokens); diff != "" {
		t.Fatalf("StripTokens mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlagsMissingRequired(t *testing.T) {
	_, err := parseFlags([]string{"-d", "/roms"}, io.Discard)
	if err == nil {
		t.Fatalf("expected error for missing flags")
	}
	if !strings.Contains(err.Error(), "--runner, --platform") {
		t.Fatalf("error = %v, want both missing flags named", err)
	}
}

func TestRunExitCodes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LUTRIS_DATABASE", "")
	t.Setenv("LUTRIS_YML_DIR", "")
	t.Setenv("LUTRIS_GAME_DIR", "")

	base := t.TempDir()
	roms := filepath.Join(base, "roms")
	yml := filepath.Join(base, "yml")
	games := filepath.Join(base, "games")
	for _, dir := range []string{roms, yml, games} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	common := []string{"-d", roms, "-r", "mednafen", "-ly", yml, "-lg", games}

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"help", []string{"--help"}, 0, ""},
		{"missing flags", []string{"-r", "mame"}, 2, "missing required flag(s)"},
		{"unknown flag", []string{"--bogus"}, 2, "unknown flag"},
		{"invalid platform", append([]string{"-p", "Nintendo Switch"}, common...), 2, "invalid choice for platform"},
		{"bad option", append([]string{"-p", "Nintendo NES", "-o", "platform", "-ld", filepath.Join(base, "pga.db")}, common...), 2, "not formatted correctly"},
		{"missing database", append([]string{"-p", "Nintendo NES", "-ld", filepath.Join(base, "pga.db")}, common...), 1, "cannot open database"},
	}

	for _, tt := range tests {
		var out, errOut bytes.Buffer
		code := run(context.Background(), tt.args, &out, &errOut)
		if code != tt.wantCode {
			t.Fatalf("%s: exit code = %d, want %d (stderr: %s)", tt.name, code, tt.wantCode, errOut.String())
		}
		if tt.wantErr != "" && !strings.Contains(errOut.String(), tt.wantErr) {
			t.Fatalf("%s: stderr = %q, want it to contain %q", tt.name, errOut.String(), tt.wantErr)
		}
	}

	entries, err := os.ReadDir(yml)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("failed runs wrote %d file(s)", len(entries))
	}
}

func TestRunListPlatforms(t *testing.T) {
	var out bytes.Buffer
	if code := run(context.Background(), []string{"--list-platforms"}, &out, io.Discard); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) < 50 || lines[0] != "3DO" {
		t.Fatalf("unexpected platform list: %q", lines[:1])
	}
}
