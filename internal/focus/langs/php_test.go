package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focal-dev/focal/internal/focus"
)

// Test Plan for the PHP grammar:
// - Base clauses render as supertypes on the class signature
// - Method visibility renders ahead of the function keyword
// - Namespace use declarations are collected as imports

const phpSource = "<?php\n" +
	"use App\\Base;\n" +
	"\n" +
	"class Greeter extends Base {\n" +
	"    public function greet($name) {\n" +
	"        $msg = strtoupper($name);\n" +
	"        return $msg;\n" +
	"    }\n" +
	"}\n"

func phpExtract(t *testing.T, target focus.CursorRange, maxLines int) focus.Assembled {
	t.Helper()
	doc := focus.NewDocument("greeter.php", []byte(phpSource))
	return focus.NewFinder().Extract(doc, PHP(), target, maxLines)
}

func TestPHPMethodChain(t *testing.T) {
	t.Parallel()

	// Cursor on "$msg" in the return statement.
	got := phpExtract(t, cursorAt(6, 16), 50)

	require.Len(t, got.Info.Nodes, 2)
	assert.Equal(t, "class Greeter: Base", got.Info.Nodes[0].Signature)
	assert.Equal(t, focus.KindMethod, got.Info.Nodes[1].Kind)
	assert.Equal(t, "public function greet($name)", got.Info.Nodes[1].Signature)

	// greet spans rows 4 through 7.
	assert.Equal(t, 4, got.BodyRange.Start.Row)
	assert.Equal(t, 7, got.BodyRange.End.Row)
}

func TestPHPImports(t *testing.T) {
	t.Parallel()

	got := phpExtract(t, cursorAt(6, 16), 50)
	assert.Equal(t, []string{"use App\\Base;"}, got.Info.Imports)
}
