package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focal-dev/focal/internal/focus"
)

// Test Plan for the Ruby grammar:
// - Superclasses render on the class signature without the < sigil
// - Methods carry the def keyword and their parameter list
// - Assignments and method calls classify but never bound the body
// - No import kinds are declared (require is an ordinary call)

const rubySource = "class Greeter < Base\n" +
	"  def greet(name)\n" +
	"    msg = name.upcase\n" +
	"    msg\n" +
	"  end\n" +
	"end\n"

func rubyExtract(t *testing.T, target focus.CursorRange, maxLines int) focus.Assembled {
	t.Helper()
	doc := focus.NewDocument("greeter.rb", []byte(rubySource))
	return focus.NewFinder().Extract(doc, Ruby(), target, maxLines)
}

func TestRubyMethodChain(t *testing.T) {
	t.Parallel()

	// Cursor on the bare "msg" return value.
	got := rubyExtract(t, cursorAt(3, 5), 50)

	require.Len(t, got.Info.Nodes, 2)
	assert.Equal(t, "class Greeter: Base", got.Info.Nodes[0].Signature)
	assert.Equal(t, focus.KindMethod, got.Info.Nodes[1].Kind)
	assert.Equal(t, "def greet(name)", got.Info.Nodes[1].Signature)

	// greet spans rows 1 through 4.
	assert.Equal(t, 1, got.BodyRange.Start.Row)
	assert.Equal(t, 4, got.BodyRange.End.Row)
}

func TestRubyAssignmentAndCall(t *testing.T) {
	t.Parallel()

	// Cursor on "upcase" in the assignment's right-hand side.
	got := rubyExtract(t, cursorAt(2, 17), 50)

	require.Len(t, got.Info.Nodes, 4)
	assert.Equal(t, focus.KindVariable, got.Info.Nodes[2].Kind)
	assert.Equal(t, "msg", got.Info.Nodes[2].Name)
	assert.False(t, got.Info.Nodes[2].CanBeUsedAsCodeRange)
	assert.Equal(t, focus.KindCall, got.Info.Nodes[3].Kind)
	assert.Equal(t, "upcase", got.Info.Nodes[3].Name)
	assert.False(t, got.Info.Nodes[3].CanBeUsedAsCodeRange)
}

func TestRubyNoImportKinds(t *testing.T) {
	t.Parallel()

	got := rubyExtract(t, cursorAt(3, 5), 50)
	assert.Nil(t, got.Info.Imports)
	assert.Nil(t, got.Info.Includes)
}
