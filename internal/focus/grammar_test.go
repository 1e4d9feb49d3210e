package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for grammar parsing:
// - A grammar without a compiled language returns an error, never panics

func TestParseWithoutLanguage(t *testing.T) {
	t.Parallel()

	g := &Grammar{Name: "broken"}
	tree, err := g.Parse([]byte("x = 1\n"))
	assert.Nil(t, tree)
	assert.ErrorContains(t, err, "broken")
}
