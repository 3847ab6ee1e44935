package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hwangeug/lutris-bulk-adder/internal/app"
	"github.com/hwangeug/lutris-bulk-adder/internal/lutris"

	flag "github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	cl, err := parseFlags(args, errOut)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}

	if cl.listPlatforms {
		for _, p := range lutris.Platforms {
			fmt.Fprintln(out, p)
		}
		return 0
	}

	if err := app.Run(ctx, cl.opts, out, errOut); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		if errors.Is(err, app.ErrConfiguration) {
			return 2
		}
		return 1
	}
	return 0
}

type commandLine struct {
	opts          app.Options
	listPlatforms bool
}

// aliases keeps the two-letter single-dash spellings working.
var aliases = map[string]string{
	"-ld": "--lutris-database",
	"-ly": "--lutris-yml-dir",
	"-lg": "--lutris-game-dir",
}

// listFlags take every following non-flag argument as a value.
var listFlags = map[string]string{
	"-f":               "--file-types",
	"--file-types":     "--file-types",
	"-s":               "--strip-filename",
	"--strip-filename": "--strip-filename",
}

// normalizeArgs rewrites aliases and expands "-f iso zip" into one
// --file-types=<value> argument per value. A list flag with no values
// becomes an explicit empty value, so a bare "-f" matches nothing. Nothing after "--" is touched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := aliases[name]; ok {
			if hasValue {
				out = append(out, long+"="+value)
			} else {
				out = append(out, long)
			}
			continue
		}

		long, ok := listFlags[arg]
		if !ok {
			out = append(out, arg)
			continue
		}
		values := 0
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			values++
			out = append(out, long+"="+args[i])
		}
		if values == 0 {
			out = append(out, long+"=")
		}
	}
	return out
}

func parseFlags(args []string, errOut io.Writer) (commandLine, error) {
	fs := flag.NewFlagSet("lutris-bulk-add", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.SortFlags = false

	directory := fs.StringP("directory", "d", "", "Directory to scan for games (required)")
	runner := fs.StringP("runner", "r", "", "Name of Lutris runner to use (required)")
	platform := fs.StringP("platform", "p", "", "Platform name, see --list-platforms (required)")
	database := fs.String("lutris-database", "", "Path to the Lutris SQLite database, alias -ld [default: $LUTRIS_DATABASE or ~/.local/share/lutris/pga.db]")
	ymlDir := fs.String("lutris-yml-dir", "", "Directory containing Lutris yml files, alias -ly [default: $LUTRIS_YML_DIR or ~/.config/lutris/games]")
	gameDir := fs.String("lutris-game-dir", "", "Lutris games install dir, alias -lg [default: $LUTRIS_GAME_DIR or ~/Games]")
	fileTypes := fs.StringArrayP("file-types", "f", nil, "Space-separated list of file types to scan for [default: "+strings.Join(app.DefaultFileTypes, " ")+"]")
	gameOptions := fs.StringArrayP("game-options", "o", nil, `Additional key=value options for the "game" section, space-separated`)
	strip := fs.StringArrayP("strip-filename", "s", nil, "Strings to strip from filenames when generating game names")
	noWrite := fs.BoolP("no-write", "n", false, "Only print what would be written (dry run)")
	listPlatforms := fs.Bool("list-platforms", false, "Print supported platform names and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lutris-bulk-add -d <dir> -r <runner> -p <platform> [options]\n\n")
		fmt.Fprintln(fs.Output(), "Scan a directory for ROMs to add to Lutris.")
		fmt.Fprintln(fs.Output(), "Environment: LUTRIS_DATABASE, LUTRIS_YML_DIR and LUTRIS_GAME_DIR override default paths; a .env file is read if present.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}

	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return commandLine{}, err
	}
	if fs.NArg() > 0 {
		return commandLine{}, fmt.Errorf("unexpected argument(s): %s", strings.Join(fs.Args(), " "))
	}
	if *listPlatforms {
		return commandLine{listPlatforms: true}, nil
	}

	var missing []string
	if strings.TrimSpace(*directory) == "" {
		missing = append(missing, "--directory")
	}
	if strings.TrimSpace(*runner) == "" {
		missing = append(missing, "--runner")
	}
	if strings.TrimSpace(*platform) == "" {
		missing = append(missing, "--platform")
	}
	if len(missing) > 0 {
		fs.Usage()
		return commandLine{}, fmt.Errorf("missing required flag(s): %s", strings.Join(missing, ", "))
	}

	return commandLine{opts: app.Options{
		Directory:    *directory,
		Runner:       strings.TrimSpace(*runner),
		Platform:     *platform,
		DatabasePath: *database,
		YMLDir:       *ymlDir,
		GameDir:      *gameDir,
		FileTypes:    *fileTypes,
		GameOptions:  *gameOptions,
		StripTokens:  *strip,
		DryRun:       *noWrite,
	}}, nil
}
