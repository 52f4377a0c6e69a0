package boundary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/codechunk/pkg/types"
)

func pyLines(src ...string) []string {
	lines := make([]string, len(src))
	for i, s := range src {
		lines[i] = s + "\n"
	}
	return lines
}

func TestFindBoundaries_PythonDefsAndPreamble(t *testing.T) {
	d := New()
	lines := pyLines(
		"import os",         // 0
		"",                  // 1
		"def first():",      // 2
		"    return 1",      // 3
		"",                  // 4
		"class Second:",     // 5
		"    def method():", // 6: nested defs match too; the heuristic does not track nesting
		"        pass",      // 7
	)

	ranges := d.FindBoundaries(lines, types.LangPython)

	assert.Equal(t, []types.BoundaryRange{
		{Start: 0, End: 2}, // preamble: import + blank
		{Start: 2, End: 5},
		{Start: 5, End: 6},
		{Start: 6, End: 8},
	}, ranges)
	assert.NoError(t, types.ValidateCoverage(ranges, len(lines)))
}

func TestFindBoundaries_DecoratorAttachment(t *testing.T) {
	d := New()
	lines := pyLines(
		"@deco",
		"def f():",
		"    pass",
	)

	ranges := d.FindBoundaries(lines, types.LangPython)

	// The boundary for f starts at the decorator line, not the def line
	require.Len(t, ranges, 1)
	assert.Equal(t, types.BoundaryRange{Start: 0, End: 3}, ranges[0])
}

func TestFindBoundaries_StackedDecorators(t *testing.T) {
	d := New()
	lines := pyLines(
		"import functools", // 0
		"@app.route('/')",  // 1
		"@functools.cache", // 2
		"def handler():",   // 3
		"    pass",         // 4
	)

	ranges := d.FindBoundaries(lines, types.LangPython)

	assert.Equal(t, []types.BoundaryRange{
		{Start: 0, End: 1},
		{Start: 1, End: 5},
	}, ranges)
}

func TestFindBoundaries_DecoratorBetweenDefs(t *testing.T) {
	d := New()
	lines := pyLines(
		"def a():", // 0
		"    pass", // 1
		"@deco",    // 2
		"def b():", // 3
		"    pass", // 4
	)

	ranges := d.FindBoundaries(lines, types.LangPython)

	// The decorator belongs to b, so a's range ends where the decorator
	// run begins and coverage stays exact
	assert.Equal(t, []types.BoundaryRange{
		{Start: 0, End: 2},
		{Start: 2, End: 5},
	}, ranges)
	assert.NoError(t, types.ValidateCoverage(ranges, len(lines)))
}

func TestFindBoundaries_IndentedDecorator(t *testing.T) {
	d := New()
	lines := pyLines(
		"class A:",             // 0
		"    @property",        // 1
		"    def value(self):", // 2
		"        return 1",     // 3
	)

	ranges := d.FindBoundaries(lines, types.LangPython)

	assert.Equal(t, []types.BoundaryRange{
		{Start: 0, End: 1},
		{Start: 1, End: 4},
	}, ranges)
}

func TestFindBoundaries_NoDefinitionsSingleRange(t *testing.T) {
	d := New()
	lines := pyLines(
		"import os",
		"import sys",
		"VALUE = 1",
	)

	ranges := d.FindBoundaries(lines, types.LangPython)

	// Zero start markers: one whole-file range, not the fixed-window
	// fallback (that is language-gated, not emptiness-gated)
	assert.Equal(t, []types.BoundaryRange{{Start: 0, End: 3}}, ranges)
}

func TestFindBoundaries_BraceFamilyStarts(t *testing.T) {
	d := New()
	lines := pyLines(
		"import { x } from './x';", // 0
		"export function run() {",  // 1
		"}",                        // 2
		"const table = {",          // 3: data tables split too, inherited behavior
		"};",                       // 4
		"export class Widget {",    // 5
		"}",                        // 6
		"let counter = 0;",         // 7
		"var legacy = true;",       // 8
	)

	ranges := d.FindBoundaries(lines, types.LangTypeScript)

	assert.Equal(t, []types.BoundaryRange{
		{Start: 0, End: 1},
		{Start: 1, End: 3},
		{Start: 3, End: 5},
		{Start: 5, End: 7},
		{Start: 7, End: 8},
		{Start: 8, End: 9},
	}, ranges)
	assert.NoError(t, types.ValidateCoverage(ranges, len(lines)))
}

func TestFindBoundaries_BraceFamilyNoWalkBack(t *testing.T) {
	d := New()
	lines := pyLines(
		"@Component({})",   // 0: TS decorators are not absorbed
		"export class C {", // 1
		"}",                // 2
	)

	ranges := d.FindBoundaries(lines, types.LangTypeScript)

	assert.Equal(t, []types.BoundaryRange{
		{Start: 0, End: 1},
		{Start: 1, End: 3},
	}, ranges)
}

func TestFindBoundaries_KeywordRequiresTrailingSpace(t *testing.T) {
	d := New()
	lines := pyLines(
		"functional();",
		"constant();",
		"classic();",
	)

	ranges := d.FindBoundaries(lines, types.LangJavaScript)
	assert.Equal(t, []types.BoundaryRange{{Start: 0, End: 3}}, ranges)
}

func TestFindBoundaries_FallbackWindows(t *testing.T) {
	d := New()
	lines := make([]string, 450)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d\n", i)
	}

	ranges := d.FindBoundaries(lines, types.LangMarkdown)

	assert.Equal(t, []types.BoundaryRange{
		{Start: 0, End: 200},
		{Start: 200, End: 400},
		{Start: 400, End: 450},
	}, ranges)
	assert.NoError(t, types.ValidateCoverage(ranges, len(lines)))
}

func TestFindBoundaries_FallbackIgnoresContent(t *testing.T) {
	d := New()
	// Even def-looking lines are windowed for non-heuristic languages
	lines := pyLines("def f():", "    pass")

	ranges := d.FindBoundaries(lines, types.LangText)
	assert.Equal(t, []types.BoundaryRange{{Start: 0, End: 2}}, ranges)
}

func TestFindBoundaries_FallbackExactWindow(t *testing.T) {
	d := New()
	lines := make([]string, FallbackWindowLines)
	for i := range lines {
		lines[i] = "x\n"
	}

	ranges := d.FindBoundaries(lines, types.LangYAML)
	assert.Equal(t, []types.BoundaryRange{{Start: 0, End: 200}}, ranges)
}

func TestFindBoundaries_EmptyInput(t *testing.T) {
	d := New()
	assert.Empty(t, d.FindBoundaries(nil, types.LangPython))
	assert.Empty(t, d.FindBoundaries(nil, types.LangText))
}

func TestFindBoundaries_CoverageProperty(t *testing.T) {
	d := New()
	files := map[string][]string{
		"python":   pyLines("import a", "@d", "def f():", " pass", "", "class C:", " pass"),
		"brace":    pyLines("const a = 1;", "", "function f() {", "}"),
		"fallback": make([]string, 321),
	}
	langs := map[string]types.Language{
		"python":   types.LangPython,
		"brace":    types.LangJavaScript,
		"fallback": types.LangTOML,
	}

	for name, lines := range files {
		t.Run(name, func(t *testing.T) {
			ranges := d.FindBoundaries(lines, langs[name])
			assert.NoError(t, types.ValidateCoverage(ranges, len(lines)))
		})
	}
}
