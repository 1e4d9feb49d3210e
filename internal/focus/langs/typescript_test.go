package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focal-dev/focal/internal/focus"
)

// Test Plan for the TypeScript grammar:
// - Class heritage renders as a supertype list on the class signature
// - A switch inside an arrow-function binding produces the full
//   variable/closure/switch/case chain
// - Calls and variable declarators classify but never bound the body
// - The TSX and JavaScript variants share the TypeScript rule set

const tsSource = "import { Base } from \"./base\";\n" +
	"\n" +
	"class Greeter extends Base {\n" +
	"  greet(name: string): string {\n" +
	"    const msg = name.toUpperCase();\n" +
	"    return msg;\n" +
	"  }\n" +
	"}\n" +
	"\n" +
	"const handler = (x: number) => {\n" +
	"  switch (x) {\n" +
	"    case 1:\n" +
	"      return \"one\";\n" +
	"    default:\n" +
	"      return \"many\";\n" +
	"  }\n" +
	"};\n"

func tsExtract(t *testing.T, target focus.CursorRange, maxLines int) focus.Assembled {
	t.Helper()
	doc := focus.NewDocument("greeter.ts", []byte(tsSource))
	return focus.NewFinder().Extract(doc, TypeScript(), target, maxLines)
}

func TestTypeScriptClassHeritage(t *testing.T) {
	t.Parallel()

	// Cursor on "return msg" inside Greeter.greet.
	got := tsExtract(t, cursorAt(5, 8), 50)

	require.Len(t, got.Info.Nodes, 2)
	assert.Equal(t, focus.KindType, got.Info.Nodes[0].Kind)
	assert.Equal(t, "class Greeter: Base", got.Info.Nodes[0].Signature)
	assert.Equal(t, focus.KindMethod, got.Info.Nodes[1].Kind)
	assert.Contains(t, got.Info.Nodes[1].Signature, "greet(name: string)")

	assert.Equal(t, []string{"import { Base } from \"./base\";"}, got.Info.Imports)
}

func TestTypeScriptSwitchChain(t *testing.T) {
	t.Parallel()

	// Cursor on the string of `return "one"` inside the case arm.
	got := tsExtract(t, cursorAt(12, 14), 50)

	require.Len(t, got.Info.Nodes, 4)
	assert.Equal(t, focus.KindVariable, got.Info.Nodes[0].Kind)
	assert.Equal(t, "handler", got.Info.Nodes[0].Name)
	assert.Equal(t, focus.KindClosure, got.Info.Nodes[1].Kind)
	assert.Equal(t, "closure", got.Info.Nodes[1].Name)
	assert.Equal(t, focus.KindBranch, got.Info.Nodes[2].Kind)
	assert.Equal(t, "switch(x)", got.Info.Nodes[2].Signature)
	assert.Equal(t, focus.KindBranchArm, got.Info.Nodes[3].Kind)
	assert.Equal(t, "case 1", got.Info.Nodes[3].Signature)

	// Each node on the chain strictly contains the next.
	for i := 0; i < len(got.Info.Nodes)-1; i++ {
		assert.True(t, got.Info.Nodes[i].Range.StrictlyContains(got.Info.Nodes[i+1].Range))
	}

	// The case arm is the innermost safe scope, so its lines form the
	// body and everything above it folds into breadcrumbs.
	assert.Equal(t, "    case 1:\n      return \"one\";", got.Body)
	assert.Len(t, got.Breadcrumbs, 3)
}

func TestTypeScriptCallNeverBoundsBody(t *testing.T) {
	t.Parallel()

	// Cursor inside the argument list of name.toUpperCase().
	got := tsExtract(t, cursorAt(4, 33), 50)

	require.Len(t, got.Info.Nodes, 4)
	assert.Equal(t, focus.KindVariable, got.Info.Nodes[2].Kind)
	assert.Equal(t, "msg", got.Info.Nodes[2].Name)
	assert.False(t, got.Info.Nodes[2].CanBeUsedAsCodeRange)
	assert.Equal(t, focus.KindCall, got.Info.Nodes[3].Kind)
	assert.False(t, got.Info.Nodes[3].CanBeUsedAsCodeRange)

	// The method supplies the body.
	assert.Equal(t, 3, got.BodyRange.Start.Row)
	assert.Equal(t, 6, got.BodyRange.End.Row)
}

func TestTypeScriptVariantsShareRules(t *testing.T) {
	t.Parallel()

	ts, tsx, js := TypeScript(), TSX(), JavaScript()
	assert.Equal(t, len(ts.Rules), len(tsx.Rules))
	assert.Equal(t, len(ts.Rules), len(js.Rules))
	for kind := range ts.Rules {
		assert.Contains(t, tsx.Rules, kind)
		assert.Contains(t, js.Rules, kind)
	}

	// JSX files parse with the TSX language so element syntax works.
	doc := focus.NewDocument("app.jsx", []byte("function App() {\n  return 1;\n}\n"))
	got := focus.NewFinder().Extract(doc, TSX(), cursorAt(1, 9), 10)
	require.Len(t, got.Info.Nodes, 1)
	assert.Equal(t, "function App()", got.Info.Nodes[0].Signature)
}
