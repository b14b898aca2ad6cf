// pkg/wordbank/bank.go
package wordbank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// RNG is the randomness source used for uniform candidate selection.
type RNG interface {
	Intn(n int) int
}

// ErrExhausted is returned when every word of the requested tier is
// already on screen, so no candidate remains even after the recent-use
// memory has been cleared.
var ErrExhausted = errors.New("wordbank: tier exhausted")

// Bank holds tiered word lists with a short-term no-repeat memory.
// Tier index is the 1-indexed difficulty level clamped to the last
// tier. All words are stored lowercase.
type Bank struct {
	tiers  [][]string
	recent []string // FIFO, самые старые в начале
	limit  int
	rng    RNG
}

// New validates and normalizes the tier lists. Every tier must be
// non-empty and every word non-blank; words are lowercased.
func New(tiers [][]string, rng RNG, recentLimit int) (*Bank, error) {
	if len(tiers) == 0 {
		return nil, errors.New("wordbank: no tiers")
	}
	if rng == nil {
		return nil, errors.New("wordbank: nil rng")
	}
	if recentLimit < 0 {
		recentLimit = 0
	}
	normalized := make([][]string, len(tiers))
	for i, tier := range tiers {
		if len(tier) == 0 {
			return nil, fmt.Errorf("wordbank: tier %d is empty", i+1)
		}
		normalized[i] = make([]string, len(tier))
		for j, w := range tier {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				return nil, fmt.Errorf("wordbank: tier %d has an empty word", i+1)
			}
			normalized[i][j] = w
		}
	}
	return &Bank{tiers: normalized, limit: recentLimit, rng: rng}, nil
}

// Pick selects a word for the given level, excluding words currently
// on screen and recently used ones. When the combined exclusion
// empties the tier, the recent-use memory is dropped and the pick is
// retried with the live-word exclusion alone; ErrExhausted is returned
// only when every tier word is live.
func (b *Bank) Pick(level int, live []string) (string, error) {
	tier := b.tierFor(level)
	liveSet := make(map[string]struct{}, len(live))
	for _, w := range live {
		liveSet[strings.ToLower(w)] = struct{}{}
	}

	candidates := lo.Filter(tier, func(w string, _ int) bool {
		if _, onScreen := liveSet[w]; onScreen {
			return false
		}
		return !lo.Contains(b.recent, w)
	})
	if len(candidates) == 0 {
		// Память о недавних словах мешает прогрессу — сбрасываем её.
		b.recent = b.recent[:0]
		candidates = lo.Filter(tier, func(w string, _ int) bool {
			_, onScreen := liveSet[w]
			return !onScreen
		})
	}
	if len(candidates) == 0 {
		return "", ErrExhausted
	}

	word := candidates[b.rng.Intn(len(candidates))]
	b.remember(word)
	return word, nil
}

// Any returns a uniformly random tier word ignoring every exclusion.
// It is the degrade path for callers that must make progress after
// ErrExhausted.
func (b *Bank) Any(level int) string {
	tier := b.tierFor(level)
	return tier[b.rng.Intn(len(tier))]
}

// Reset clears the recent-use memory at the start of a new session.
func (b *Bank) Reset() {
	b.recent = b.recent[:0]
}

// RecentCount reports how many words the recent-use memory holds.
func (b *Bank) RecentCount() int {
	return len(b.recent)
}

// TierCount reports the number of difficulty tiers.
func (b *Bank) TierCount() int {
	return len(b.tiers)
}

// tierFor clamps a 1-indexed level to the available tiers.
func (b *Bank) tierFor(level int) []string {
	if level < 1 {
		level = 1
	}
	if level > len(b.tiers) {
		level = len(b.tiers)
	}
	return b.tiers[level-1]
}

func (b *Bank) remember(w string) {
	if b.limit == 0 {
		return
	}
	b.recent = append(b.recent, w)
	if len(b.recent) > b.limit {
		b.recent = b.recent[1:]
	}
}
