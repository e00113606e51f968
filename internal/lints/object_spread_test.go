package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/parser"

	"jslin/internal/types"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseFile(src)
	require.NoError(t, err)
	return prog
}

func TestDetectObjectAssignSpread(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name               string
		code               string
		expectedCount      int
		expectedSuggestion string
		expectedMessage    string
	}{
		{
			name:               "empty target with identifier source",
			code:               `Object.assign({}, foo);`,
			expectedCount:      1,
			expectedSuggestion: `{...foo}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "empty target with literal source",
			code:               `Object.assign({}, {foo: 'bar'});`,
			expectedCount:      1,
			expectedSuggestion: `{foo: 'bar'}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "literal target with identifier source",
			code:               `Object.assign({foo: 'bar'}, baz);`,
			expectedCount:      1,
			expectedSuggestion: `{foo: 'bar', ...baz}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "identifier between literals keeps order",
			code:               `Object.assign({}, baz, {foo: 'bar'});`,
			expectedCount:      1,
			expectedSuggestion: `{...baz, foo: 'bar'}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "single empty literal argument",
			code:               `Object.assign({});`,
			expectedCount:      1,
			expectedSuggestion: `{}`,
			expectedMessage:    msgUseLiteral,
		},
		{
			name:               "single non-empty literal argument",
			code:               `Object.assign({a: 1, b: 2});`,
			expectedCount:      1,
			expectedSuggestion: `{a: 1, b: 2}`,
			expectedMessage:    msgUseLiteral,
		},
		{
			name:          "opaque target with literal source",
			code:          `Object.assign(foo, {bar: baz});`,
			expectedCount: 0,
		},
		{
			name:          "opaque target with identifier source",
			code:          `Object.assign(foo, bar);`,
			expectedCount: 0,
		},
		{
			name:          "opaque target despite spread in source",
			code:          `Object.assign(foo, {...baz});`,
			expectedCount: 0,
		},
		{
			name:          "spread at target position",
			code:          `Object.assign(...foo, bar);`,
			expectedCount: 0,
		},
		{
			name:          "zero arguments handled elsewhere",
			code:          `Object.assign();`,
			expectedCount: 0,
		},
		{
			name:          "different method on Object",
			code:          `Object.keys({});`,
			expectedCount: 0,
		},
		{
			name:          "assign on another receiver",
			code:          `Lodash.assign({}, foo);`,
			expectedCount: 0,
		},
		{
			name:               "spread source passes through",
			code:               `Object.assign({}, ...rest);`,
			expectedCount:      1,
			expectedSuggestion: `{...rest}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "nested spread inside source literal",
			code:               `Object.assign({}, {...baz});`,
			expectedCount:      1,
			expectedSuggestion: `{...baz}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "call expression source",
			code:               `Object.assign({}, getDefaults());`,
			expectedCount:      1,
			expectedSuggestion: `{...getDefaults()}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "many arguments keep call order",
			code:               `Object.assign({a: 1}, b, {c: 2}, d(), {e: 3});`,
			expectedCount:      1,
			expectedSuggestion: `{a: 1, ...b, c: 2, ...d(), e: 3}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "duplicate keys are not merged",
			code:               `Object.assign({a: 1}, {a: 2});`,
			expectedCount:      1,
			expectedSuggestion: `{a: 1, a: 2}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "shorthand and computed properties survive",
			code:               `Object.assign({}, {foo, [key]: value});`,
			expectedCount:      1,
			expectedSuggestion: `{foo, [key]: value}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "method property survives",
			code:               `Object.assign({}, {run() { return 1; }});`,
			expectedCount:      1,
			expectedSuggestion: `{run() { return 1; }}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "multi-line call flattens to one line",
			code:               "const merged = Object.assign(\n\t{},\n\tfoo,\n\t{bar: 1},\n);",
			expectedCount:      1,
			expectedSuggestion: `{...foo, bar: 1}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "member expression source",
			code:               `Object.assign({}, a.b);`,
			expectedCount:      1,
			expectedSuggestion: `{...a.b}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "method call source",
			code:               `Object.assign({}, foo.bar());`,
			expectedCount:      1,
			expectedSuggestion: `{...foo.bar()}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "computed member source",
			code:               `Object.assign({}, a[b]);`,
			expectedCount:      1,
			expectedSuggestion: `{...a[b]}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "sequence source keeps its parens",
			code:               `Object.assign({}, (a, b));`,
			expectedCount:      1,
			expectedSuggestion: `{...(a, b)}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "member value inside source literal",
			code:               `Object.assign({}, {a: b.c});`,
			expectedCount:      1,
			expectedSuggestion: `{a: b.c}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "grouped expression value survives",
			code:               `Object.assign({}, {n: (a + b) * c});`,
			expectedCount:      1,
			expectedSuggestion: `{n: (a + b) * c}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "string value with comma",
			code:               `Object.assign({}, {s: 'a,b'});`,
			expectedCount:      1,
			expectedSuggestion: `{s: 'a,b'}`,
			expectedMessage:    msgUseSpread,
		},
		{
			name:               "template value with substitution",
			code:               "Object.assign({}, {s: `x${f(a, b)}`});",
			expectedCount:      1,
			expectedSuggestion: "{s: `x${f(a, b)}`}",
			expectedMessage:    msgUseSpread,
		},
		{
			name:          "parenthesized callee",
			code:          `(Object.assign)({}, foo);`,
			expectedCount: 0,
		},
		{
			name:          "parenthesized receiver",
			code:          `(Object).assign({}, foo);`,
			expectedCount: 0,
		},
		{
			name:          "nested calls each reported",
			code:          `Object.assign({}, Object.assign({}, foo));`,
			expectedCount: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			prog := parseSource(t, tc.code)

			issues, err := DetectObjectAssignSpread("test.js", prog, tc.code, types.SeverityWarning)
			require.NoError(t, err)
			require.Len(t, issues, tc.expectedCount)

			if tc.expectedCount == 1 {
				issue := issues[0]
				assert.Equal(t, ruleObjectSpread, issue.Rule)
				assert.Equal(t, tc.expectedSuggestion, issue.Suggestion)
				assert.Equal(t, tc.expectedMessage, issue.Message)
				assert.Equal(t, types.SeverityWarning, issue.Severity)
				assert.InDelta(t, 1.0, issue.Confidence, 0.001)
			}
		})
	}
}

func TestDetectObjectAssignSpreadSpan(t *testing.T) {
	t.Parallel()
	code := `const a = Object.assign({}, foo);`
	prog := parseSource(t, code)

	issues, err := DetectObjectAssignSpread("test.js", prog, code, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]

	// The reported span covers the whole call, callee included, so that
	// splicing the suggestion in yields valid code.
	assert.Equal(t, "Object.assign({}, foo)", code[issue.Start.Offset:issue.End.Offset])
	assert.Equal(t, 1, issue.Start.Line)
	assert.Equal(t, 11, issue.Start.Column)
}

func TestDetectObjectAssignSpreadIdempotent(t *testing.T) {
	t.Parallel()
	code := `const merged = Object.assign({a: 1}, foo, {b: 2});`
	prog := parseSource(t, code)

	issues, err := DetectObjectAssignSpread("test.js", prog, code, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	fixed := code[:issue.Start.Offset] + issue.Suggestion + code[issue.End.Offset:]
	assert.Equal(t, `const merged = {a: 1, ...foo, b: 2};`, fixed)

	// Applying the suggestion leaves nothing for the rule to report.
	fixedProg := parseSource(t, fixed)
	again, err := DetectObjectAssignSpread("test.js", fixedProg, fixed, types.SeverityWarning)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestDetectObjectAssignSpreadMemberSourceSplice(t *testing.T) {
	t.Parallel()
	code := `const merged = Object.assign({}, conf.defaults, opts.load());`
	prog := parseSource(t, code)

	issues, err := DetectObjectAssignSpread("test.js", prog, code, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	fixed := code[:issue.Start.Offset] + issue.Suggestion + code[issue.End.Offset:]
	assert.Equal(t, `const merged = {...conf.defaults, ...opts.load()};`, fixed)

	// still valid code after the splice
	parseSource(t, fixed)
}
