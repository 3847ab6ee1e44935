package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hwangeug/lutris-bulk-adder/internal/config"
)

// ErrConfiguration marks a bad or missing command-line argument. Nothing has
// been written when it is returned.
var ErrConfiguration = errors.New("invalid configuration")

// Options captures user-supplied CLI parameters before config/env enrichment.
// Empty Lutris paths are filled from config.Load.
type Options struct {
	Directory    string
	Runner       string
	Platform     string
	DatabasePath string
	YMLDir       string
	GameDir      string
	FileTypes    []string
	GameOptions  []string
	StripTokens  []string
	DryRun       bool
}

// DefaultFileTypes are the ROM and disc image extensions scanned when
// --file-types is not given.
var DefaultFileTypes = []string{
	"iso", "zip", "sfc", "gba", "gbc", "gb", "md", "n64",
	"nes", "32x", "gg", "sms", "bin",
}

// Run is the entry point for the import workflow. Dry-run output goes to out,
// progress messages to errOut.
func Run(ctx context.Context, opts Options, out, errOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return newRunner(cfg, opts, out, errOut).Execute(ctx)
}
