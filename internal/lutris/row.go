package lutris

// GameRow is one row of the games table for a freshly installed ROM.
type GameRow struct {
	ID          int64
	Name        string
	Slug        string
	Platform    string
	Runner      string
	Directory   string
	InstalledAt int64
	ConfigPath  string
}

// Field is a column and the value stored in it. A nil Value is NULL.
type Field struct {
	Column string
	Value  any
}

// Fields lists every column the importer knows, in insert order.
func (r GameRow) Fields() []Field {
	return []Field{
		{"id", r.ID},
		{"name", r.Name},
		{"slug", r.Slug},
		{"installer_slug", nil},
		{"parent_slug", nil},
		{"platform", r.Platform},
		{"runner", r.Runner},
		{"executable", nil},
		{"directory", r.Directory},
		{"updated", nil},
		{"lastplayed", 0},
		{"installed", 1},
		{"installed_at", r.InstalledAt},
		{"year", nil},
		{"steamid", nil},
		{"configpath", r.ConfigPath},
		{"has_custom_banner", nil},
		{"has_custom_icon", nil},
		{"playtime", nil},
		{"hidden", 0},
		{"service", nil},
		{"service_id", nil},
	}
}
