// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"go-word-rain/internal/config"
)

// LoadWordTiers reads a word tier configuration file and replaces the
// built-in WordTiers. The file holds a JSON array of arrays of strings,
// one inner array per difficulty tier, easiest first.
func LoadWordTiers(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read word tiers file: %w", err)
	}

	var tiers [][]string
	if err := json.Unmarshal(file, &tiers); err != nil {
		return fmt.Errorf("failed to unmarshal word tiers: %w", err)
	}

	if len(tiers) == 0 {
		return fmt.Errorf("word tiers file %s contains no tiers", path)
	}
	for i, tier := range tiers {
		if len(tier) == 0 {
			return fmt.Errorf("word tier %d is empty", i+1)
		}
		for j, w := range tier {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				return fmt.Errorf("word tier %d contains an empty word at index %d", i+1, j)
			}
			tier[j] = w
		}
		if len(tier) <= config.RecentWordsLimit {
			log.Printf("Warning: word tier %d has only %d words; selection may repeat early", i+1, len(tier))
		}
	}

	WordTiers = tiers
	log.Printf("Loaded %d word tiers from %s", len(tiers), path)
	return nil
}
