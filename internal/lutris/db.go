package lutris

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

var (
	// ErrDatabaseOpen means the database file is missing or unreadable.
	ErrDatabaseOpen = errors.New("cannot open database")
	// ErrSchema means the file opened but does not look like a Lutris pga.db.
	ErrSchema = errors.New("not a valid Lutris database")
)

// requiredColumns must exist in the games table for an import to make sense.
var requiredColumns = []string{
	"id", "name", "slug", "platform", "runner", "directory",
	"installed", "installed_at", "configpath",
}

// Database is a connection to the Lutris games database.
type Database struct {
	db      *sql.DB
	path    string
	columns map[string]struct{}
}

// Open connects to an existing pga.db and checks the games table layout. The
// file is never created. With readOnly set, the connection cannot write.
func Open(ctx context.Context, path string, readOnly bool) (*Database, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDatabaseOpen, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w %s: not a regular file", ErrDatabaseOpen, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDatabaseOpen, path, err)
	}
	_ = f.Close()

	db, err := sql.Open("sqlite3", dsn(path, readOnly))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDatabaseOpen, path, err)
	}
	db.SetMaxOpenConns(1)

	// The file exists and is readable, so SQLite refusing it means it is
	// not a database it understands.
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSchema, path, err)
	}

	d := &Database{db: db, path: path}
	if err := d.loadColumns(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// dsn builds a SQLite URI so mode=ro/rw applies and the file is never created.
func dsn(path string, readOnly bool) string {
	escaped := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(path)
	mode := "rw"
	if readOnly {
		mode = "ro"
	}
	return "file:" + escaped + "?mode=" + mode
}

func (d *Database) loadColumns(ctx context.Context) error {
	rows, err := d.db.QueryContext(ctx, "PRAGMA table_info(games)")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchema, d.path, err)
	}
	defer rows.Close()

	cols := make(map[string]struct{})
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSchema, d.path, err)
		}
		cols[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchema, d.path, err)
	}
	if len(cols) == 0 {
		return fmt.Errorf("%w: %s has no games table", ErrSchema, d.path)
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s games table lacks column(s) %s", ErrSchema, d.path, strings.Join(missing, ", "))
	}

	d.columns = cols
	return nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// NextID returns max(id)+1, or 1 for an empty table.
func (d *Database) NextID(ctx context.Context) (int64, error) {
	var maxID sql.NullInt64
	if err := d.db.QueryRowContext(ctx, "SELECT max(id) FROM games").Scan(&maxID); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSchema, d.path, err)
	}
	return maxID.Int64 + 1, nil
}

// Insert adds row to the games table and commits it. Fields whose column
// the installed schema does not have are left out.
func (d *Database) Insert(ctx context.Context, row GameRow) error {
	var (
		cols []string
		args []any
	)
	for _, f := range row.Fields() {
		if _, ok := d.columns[f.Column]; !ok {
			continue
		}
		cols = append(cols, f.Column)
		args = append(args, f.Value)
	}

	query := fmt.Sprintf("INSERT INTO games (%s) VALUES (%s)",
		strings.Join(cols, ","),
		strings.TrimSuffix(strings.Repeat("?,", len(cols)), ","))

	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert game %d (%s): %w", row.ID, row.Slug, err)
	}
	return nil
}
