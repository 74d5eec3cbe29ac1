package roster

import (
	"fmt"
	"os"
	"path/filepath"
)

// Glob patterns used to locate the latest roster exports in an input
// directory. Form exports keep their survey titles, so discovery matches on
// the stable words rather than exact file names.
var (
	volunteerPatterns = []string{
		"*PMDoS*Registration*Responses*.csv",
		"*Registration*Responses*.csv",
		"*Professional*Registration*.csv",
	}
	projectPatterns = []string{
		"*Charities*Information*Responses*.csv",
		"*Charities*Project*Responses*.csv",
		"*Charity*Information*.csv",
	}
)

// DiscoverVolunteerFile returns the most recently modified volunteer
// registration export under dir.
func DiscoverVolunteerFile(dir string) (string, error) {
	return discover(dir, volunteerPatterns, "volunteer registration")
}

// DiscoverProjectFile returns the most recently modified charity project
// export under dir.
func DiscoverProjectFile(dir string) (string, error) {
	return discover(dir, projectPatterns, "charity project")
}

func discover(dir string, patterns []string, kind string) (string, error) {
	seen := make(map[string]bool)
	var candidates []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", fmt.Errorf("bad %s pattern %q: %w", kind, pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				candidates = append(candidates, m)
			}
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no %s file found in %s", kind, dir)
	}

	latest := ""
	var latestMod int64
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().UnixNano() > latestMod {
			latest = path
			latestMod = info.ModTime().UnixNano()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no readable %s file found in %s", kind, dir)
	}

	return latest, nil
}
