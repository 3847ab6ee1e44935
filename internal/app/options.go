package app

import (
	"fmt"
	"strings"
)

// parseGameOptions turns whitespace-delimited key=value tokens into a map.
// Later keys overwrite earlier ones.
func parseGameOptions(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	pairs := make(map[string]string)
	for _, raw := range values {
		for _, token := range strings.Fields(raw) {
			if strings.Count(token, "=") != 1 {
				return nil, fmt.Errorf("%w: option %q is not formatted correctly (want key=value)", ErrConfiguration, token)
			}
			key, value, _ := strings.Cut(token, "=")
			if key == "" {
				return nil, fmt.Errorf("%w: option %q has an empty key", ErrConfiguration, token)
			}
			pairs[key] = value
		}
	}
	return pairs, nil
}

// parseFileTypes normalises extensions: split on whitespace, lower-cased,
// leading dot removed, duplicates dropped.
func parseFileTypes(values []string) ([]string, error) {
	seen := make(map[string]struct{})
	var types []string
	for _, raw := range values {
		for _, token := range strings.Fields(raw) {
			ext := strings.ToLower(strings.TrimPrefix(token, "."))
			if ext == "" {
				continue
			}
			if strings.ContainsAny(ext, `.*?[]{}\/`) {
				return nil, fmt.Errorf("%w: file type %q contains unsupported characters", ErrConfiguration, token)
			}
			if _, ok := seen[ext]; ok {
				continue
			}
			seen[ext] = struct{}{}
			types = append(types, ext)
		}
	}
	return types, nil
}
