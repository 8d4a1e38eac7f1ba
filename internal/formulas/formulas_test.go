package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchByTopic(t *testing.T) {
	got := Search("", "geometry")
	assert.NotEmpty(t, got)
	for _, f := range got {
		assert.Equal(t, "geometry", f.Topic)
	}
}

func TestSearchByQuery(t *testing.T) {
	got := Search("pythagorean", "")
	assert.Len(t, got, 1)
	assert.Equal(t, "pythagoras", got[0].ID)

	// case-insensitive, matches description text too
	got = Search("HYPOTENUSE", "")
	assert.Len(t, got, 1)
}

func TestSearchQueryAndTopic(t *testing.T) {
	// "law" appears in several topics; narrowing by topic must stick.
	got := Search("law", "physics")
	assert.NotEmpty(t, got)
	for _, f := range got {
		assert.Equal(t, "physics", f.Topic)
	}
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, Search("no such formula anywhere", ""))
	assert.Empty(t, Search("", "astrology"))
}

func TestSearchEmptyReturnsAll(t *testing.T) {
	all := Search("", "")
	assert.GreaterOrEqual(t, len(all), 15)
}

func TestTopics(t *testing.T) {
	topics := Topics()
	assert.Contains(t, topics, "algebra")
	assert.Contains(t, topics, "geometry")

	seen := map[string]bool{}
	for _, topic := range topics {
		assert.False(t, seen[topic], "duplicate topic %s", topic)
		seen[topic] = true
	}
}
