package assessment

import (
	"math"
	"sort"
	"strings"
)

// TopImpacts returns up to n impacts ordered by descending absolute
// magnitude. The sort is stable so equal magnitudes keep insertion order.
// The input slice is not modified.
func TopImpacts(items []Impact, n int) []Impact {
	ranked := make([]Impact, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].Impact) > math.Abs(ranked[j].Impact)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// mentionsTopic reports whether the impact's title or description contains
// the topic keyword, ignoring case. Weight relevance is derived from free
// text rather than a structured tag, so one benefit can match several
// topics.
func mentionsTopic(it Impact, topic string) bool {
	t := strings.ToLower(topic)
	return strings.Contains(strings.ToLower(it.Title), t) ||
		strings.Contains(strings.ToLower(it.Description), t)
}
