package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focal-dev/focal/internal/focus"
)

// Test Plan for the Java grammar:
// - Modifiers render ahead of the keyword on signatures
// - Constructors classify as init with the class name
// - Local variable names resolve through the declarator
// - Imports are collected at file scope

const javaSource = "import java.util.List;\n" +
	"\n" +
	"public class Account {\n" +
	"    private int balance;\n" +
	"\n" +
	"    public Account(int opening) {\n" +
	"        balance = opening;\n" +
	"    }\n" +
	"\n" +
	"    public void deposit(int amount) {\n" +
	"        int total = balance + amount;\n" +
	"        balance = total;\n" +
	"    }\n" +
	"}\n"

func javaExtract(t *testing.T, target focus.CursorRange, maxLines int) focus.Assembled {
	t.Helper()
	doc := focus.NewDocument("Account.java", []byte(javaSource))
	return focus.NewFinder().Extract(doc, Java(), target, maxLines)
}

func TestJavaMethodChain(t *testing.T) {
	t.Parallel()

	// Cursor on "total" in the deposit body.
	got := javaExtract(t, cursorAt(10, 13), 50)

	require.Len(t, got.Info.Nodes, 3)
	assert.Equal(t, "public class Account", got.Info.Nodes[0].Signature)
	assert.Equal(t, focus.KindMethod, got.Info.Nodes[1].Kind)
	assert.Equal(t, "public deposit(int amount)", got.Info.Nodes[1].Signature)

	local := got.Info.Nodes[2]
	assert.Equal(t, focus.KindVariable, local.Kind)
	assert.Equal(t, "total", local.Name)
	assert.False(t, local.CanBeUsedAsCodeRange)

	// deposit spans rows 9 through 12.
	assert.Equal(t, 9, got.BodyRange.Start.Row)
	assert.Equal(t, 12, got.BodyRange.End.Row)
}

func TestJavaConstructorIsInit(t *testing.T) {
	t.Parallel()

	got := javaExtract(t, cursorAt(6, 10), 50)

	require.Len(t, got.Info.Nodes, 2)
	ctor := got.Info.Nodes[1]
	assert.Equal(t, focus.KindInit, ctor.Kind)
	assert.Equal(t, "Account", ctor.Name)
	assert.Equal(t, "public Account(int opening)", ctor.Signature)
}

func TestJavaImports(t *testing.T) {
	t.Parallel()

	got := javaExtract(t, cursorAt(6, 10), 50)
	assert.Equal(t, []string{"import java.util.List;"}, got.Info.Imports)
}
