package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hwangeug/lutris-bulk-adder/internal/config"
	"github.com/hwangeug/lutris-bulk-adder/internal/lutris"
)

type runner struct {
	cfg         config.Config
	opts        Options
	log         *log.Logger
	out         io.Writer
	now         func() time.Time
	fileTypes   []string
	gameOptions map[string]string
	stats       runStats
}

type runStats struct {
	matched int
	added   int
}

// game is the per-file record derived from a ROM path.
type game struct {
	sourcePath  string
	displayName string
	slug        string
	timestamp   int64
}

func (g game) configID() string {
	return g.slug + "-" + strconv.FormatInt(g.timestamp, 10)
}

// idCounter hands out games.id values. It is owned by a single run.
type idCounter struct {
	next int64
}

func (c *idCounter) take() int64 {
	id := c.next
	c.next++
	return id
}

func newRunner(cfg config.Config, opts Options, out, errOut io.Writer) *runner {
	return &runner{
		cfg:  cfg,
		opts: opts,
		log:  log.New(errOut, "lutris-bulk-add: ", 0),
		out:  out,
		now:  time.Now,
	}
}

func (r *runner) Execute(ctx context.Context) error {
	if err := r.validateInputs(); err != nil {
		return err
	}

	db, err := lutris.Open(ctx, r.opts.DatabasePath, r.opts.DryRun)
	if err != nil {
		return err
	}
	defer db.Close()

	nextID, err := db.NextID(ctx)
	if err != nil {
		return err
	}
	ids := &idCounter{next: nextID}

	files, err := scanForFileTypes(r.opts.Directory, r.fileTypes)
	if err != nil {
		return err
	}
	r.stats.matched = len(files)
	r.log.Printf("Found %d matching file(s) in %s", len(files), r.opts.Directory)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("import interrupted after %d game(s): %w", r.stats.added, err)
		}
		if err := r.importFile(ctx, db, ids, file); err != nil {
			return err
		}
	}

	if r.opts.DryRun {
		r.log.Printf("dry-run: %d game(s) would be added", r.stats.matched)
	} else {
		r.log.Printf("Import complete: added %d game(s) for %s", r.stats.added, r.opts.Platform)
	}
	return nil
}

// validateInputs checks every argument and fills Lutris paths from the
// config. It touches nothing on disk besides stat calls.
func (r *runner) validateInputs() error {
	if r.opts.DatabasePath == "" {
		r.opts.DatabasePath = r.cfg.DatabasePath
	}
	if r.opts.YMLDir == "" {
		r.opts.YMLDir = r.cfg.YMLDir
	}
	if r.opts.GameDir == "" {
		r.opts.GameDir = r.cfg.GameDir
	}

	if strings.TrimSpace(r.opts.Directory) == "" {
		return fmt.Errorf("%w: directory is required", ErrConfiguration)
	}
	if strings.TrimSpace(r.opts.Runner) == "" {
		return fmt.Errorf("%w: runner is required", ErrConfiguration)
	}
	if !lutris.IsPlatform(r.opts.Platform) {
		return fmt.Errorf("%w: invalid choice for platform: %q (see --list-platforms)", ErrConfiguration, r.opts.Platform)
	}

	for _, dir := range []struct{ flag, path string }{
		{"directory", r.opts.Directory},
		{"lutris-yml-dir", r.opts.YMLDir},
		{"lutris-game-dir", r.opts.GameDir},
	} {
		if err := requireDir(dir.flag, dir.path); err != nil {
			return err
		}
	}

	rawTypes := r.opts.FileTypes
	if len(rawTypes) == 0 {
		rawTypes = DefaultFileTypes
	}
	types, err := parseFileTypes(rawTypes)
	if err != nil {
		return err
	}
	r.fileTypes = types

	gameOptions, err := parseGameOptions(r.opts.GameOptions)
	if err != nil {
		return err
	}
	r.gameOptions = gameOptions

	return nil
}

func requireDir(flag, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s %s is not a directory: %v", ErrConfiguration, flag, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s %s is not a directory", ErrConfiguration, flag, path)
	}
	return nil
}

func (r *runner) newGame(path string) game {
	name := displayName(filepath.Base(path), r.opts.StripTokens)
	return game{
		sourcePath:  path,
		displayName: name,
		slug:        slugify(name),
		timestamp:   r.now().UTC().Unix(),
	}
}

func (r *runner) importFile(ctx context.Context, db *lutris.Database, ids *idCounter, path string) error {
	g := r.newGame(path)

	row := lutris.GameRow{
		ID:          ids.take(),
		Name:        g.displayName,
		Slug:        g.slug,
		Platform:    r.opts.Platform,
		Runner:      r.opts.Runner,
		Directory:   r.opts.GameDir,
		InstalledAt: g.timestamp,
		ConfigPath:  g.configID(),
	}
	cfg := lutris.NewGameConfig(r.opts.Runner, g.sourcePath, r.gameOptions)
	ymlPath := lutris.ConfigPath(r.opts.YMLDir, g.configID())

	if r.opts.DryRun {
		return r.printPlan(g, row, cfg, ymlPath)
	}

	if err := cfg.WriteFile(ymlPath); err != nil {
		return err
	}
	if err := db.Insert(ctx, row); err != nil {
		return err
	}
	r.stats.added++
	r.log.Printf("Added %q as game %d (%s)", row.Name, row.ID, ymlPath)
	return nil
}

func (r *runner) printPlan(g game, row lutris.GameRow, cfg lutris.GameConfig, ymlPath string) error {
	doc, err := cfg.Marshal()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "file: %s\n", g.sourcePath)
	b.WriteString("games row:\n")
	for _, f := range row.Fields() {
		fmt.Fprintf(&b, "  %s: %s\n", f.Column, formatValue(f.Value))
	}
	fmt.Fprintf(&b, "YML at %s:\n%s\n", ymlPath, doc)

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("write dry-run output: %w", err)
	}
	return nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}
