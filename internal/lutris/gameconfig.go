package lutris

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

const configPerms = 0o644

// GameConfig is the per-game YAML document Lutris reads from its games
// directory. The runner section and the system section are always empty.
type GameConfig struct {
	Runner string
	Game   map[string]string
}

// NewGameConfig returns a config pointing main_file at the ROM, with options
// merged into the game section. Options win over main_file.
func NewGameConfig(runner, mainFile string, options map[string]string) GameConfig {
	game := map[string]string{"main_file": mainFile}
	for k, v := range options {
		game[k] = v
	}
	return GameConfig{Runner: runner, Game: game}
}

// document builds the top-level mapping. Sections are assigned in order so a
// runner named "game" or "system" is shadowed the same way Lutris would see it.
func (c GameConfig) document() map[string]any {
	doc := make(map[string]any, 3)
	doc[c.Runner] = map[string]string{}
	doc["game"] = c.Game
	doc["system"] = map[string]string{}
	return doc
}

// Marshal renders the document as block-style YAML with sorted keys.
func (c GameConfig) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c.document()); err != nil {
		return nil, fmt.Errorf("encode game config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode game config: %w", err)
	}
	return buf.Bytes(), nil
}

// ConfigPath is where Lutris expects the YAML for configID.
func ConfigPath(ymlDir, configID string) string {
	return filepath.Join(ymlDir, configID+".yml")
}

// WriteFile replaces path with the rendered document.
func (c GameConfig) WriteFile(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(path, configPerms); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
