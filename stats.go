package bgg

import (
	"strconv"
	"strings"
)

// RankedGame is one row of a ranked listing page.
type RankedGame struct {
	Rank string // display rank, e.g. "1"
	Name string
	Year string // 4-digit year, may be empty when unknown
	ID   string // catalog identifier taken from the game link
}

// PlayerCounts is a set of player counts, optionally extended by an
// open-ended range. A descriptor like "7+" contributes the half-open
// interval [7, ∞) rather than an arbitrary cap or sentinel, so
// Contains(8) is true for "7+" but false for "7".
type PlayerCounts struct {
	exact    map[int]struct{}
	openFrom int // 0 means no open range
}

// Add records an exact player count.
func (p *PlayerCounts) Add(n int) {
	if p.exact == nil {
		p.exact = make(map[int]struct{})
	}
	p.exact[n] = struct{}{}
}

// AddOpen records an open-ended range starting at lower.
func (p *PlayerCounts) AddOpen(lower int) {
	if p.openFrom == 0 || lower < p.openFrom {
		p.openFrom = lower
	}
}

// Contains reports whether n is in the set.
func (p *PlayerCounts) Contains(n int) bool {
	if _, ok := p.exact[n]; ok {
		return true
	}
	return p.openFrom != 0 && n >= p.openFrom
}

// Empty reports whether the set holds no counts at all.
func (p *PlayerCounts) Empty() bool {
	return len(p.exact) == 0 && p.openFrom == 0
}

// add merges a parsed descriptor into the set.
func (p *PlayerCounts) add(lower int, open bool) {
	if open {
		p.AddOpen(lower)
	} else {
		p.Add(lower)
	}
}

// PlayerCountStats holds the voted player-count suitability and the
// complexity weight for one game.
type PlayerCountStats struct {
	Best        PlayerCounts
	Recommended PlayerCounts
	Weight      float64 // community complexity rating in [1.0, 5.0]
}

// parseCountDescriptor parses a numplayers attribute such as "4" or
// "7+". The trailing "+" marks an open-ended range anchored at the
// given lower bound.
func parseCountDescriptor(s string) (lower int, open bool, err error) {
	open = strings.HasSuffix(s, "+")
	num := strings.TrimSuffix(s, "+")
	lower, err = strconv.Atoi(num)
	if err != nil {
		return 0, false, newParseError("invalid numplayers descriptor "+strconv.Quote(s), err)
	}
	return lower, open, nil
}

// VoteTally maps a vote-category label ("Best", "Recommended",
// "Not Recommended") to its vote count for one player-count entry.
type VoteTally map[string]int

// Classification is the derived suitability of a player count.
type Classification int

const (
	Unrated Classification = iota
	Best
	Recommended
)

func (c Classification) String() string {
	switch c {
	case Best:
		return "BEST"
	case Recommended:
		return "RECOMMENDED"
	default:
		return "UNRATED"
	}
}

// requireCategory returns the vote count for a category that must be
// present in the tally.
func (t VoteTally) requireCategory(name string) (int, error) {
	n, ok := t[name]
	if !ok {
		return 0, &MissingCategoryError{Category: name}
	}
	return n, nil
}

// Classify derives the classification for one player-count entry. The
// category holding the strictly maximum vote count wins, "Best" checked
// before "Recommended". A tie for the maximum rates the entry Unrated.
func Classify(tally VoteTally) (Classification, error) {
	max, atMax := 0, 0
	for _, n := range tally {
		switch {
		case n > max:
			max, atMax = n, 1
		case n == max:
			atMax++
		}
	}
	unique := atMax == 1

	best, err := tally.requireCategory("Best")
	if err != nil {
		return Unrated, err
	}
	if best == max && unique {
		return Best, nil
	}

	recommended, err := tally.requireCategory("Recommended")
	if err != nil {
		return Unrated, err
	}
	if recommended == max && unique {
		return Recommended, nil
	}

	return Unrated, nil
}
