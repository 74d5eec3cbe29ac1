package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a catalog override from a TOML file. Fields present in the
// file replace the built-in defaults wholesale; omitted sections keep the
// defaults, so an override can swap just the keyword lists.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	cat := Default()
	if err := toml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return cat, nil
}
