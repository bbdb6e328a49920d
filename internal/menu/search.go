// Package menu ranks dishes against a free-text query.
package menu

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/mmynk/messbook/internal/models"
)

// DefaultLimit caps search results when the caller gives no limit.
const DefaultLimit = 10

// maxDistanceRatio is the largest edit distance, relative to the longer of
// the two names, that still counts as a match.
const maxDistanceRatio = 0.4

type match struct {
	item  models.MenuItem
	score float64
}

// Search returns the items that resemble query, best match first.
// Names containing the query are ranked above edit-distance matches.
// An empty query returns no results.
func Search(items []models.MenuItem, query string, limit int) []models.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var matches []match
	for _, item := range items {
		if s, ok := Similarity(q, item.Name); ok {
			matches = append(matches, match{item: item, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].item.Name < matches[j].item.Name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]models.MenuItem, len(matches))
	for i, m := range matches {
		out[i] = m.item
	}
	return out
}

// Similarity scores name against an already lower-cased query in [0, 2].
// Substring hits score 1 plus how much of the name they cover; other names
// score 1 minus their normalised edit distance. ok is false below the
// match threshold.
func Similarity(query, name string) (float64, bool) {
	n := strings.ToLower(name)
	if strings.Contains(n, query) {
		return 1 + float64(utf8.RuneCountInString(query))/float64(utf8.RuneCountInString(n)), true
	}

	longest := max(utf8.RuneCountInString(query), utf8.RuneCountInString(n))
	ratio := float64(levenshtein.ComputeDistance(query, n)) / float64(longest)
	if ratio >= maxDistanceRatio {
		return 0, false
	}
	return 1 - ratio, true
}
