package lints

import (
	"strings"

	"github.com/t14raptor/go-fast/ast"

	tt "jslin/internal/types"
)

// lineIndex converts the byte offsets carried by AST nodes into 1-based
// line/column positions. Built once per analyzed file.
type lineIndex struct {
	starts []int
}

func newLineIndex(src string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (li *lineIndex) position(offset int) tt.Position {
	// binary search for the line containing offset
	lo, hi := 0, len(li.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return tt.Position{
		Offset: offset,
		Line:   lo + 1,
		Column: offset - li.starts[lo] + 1,
	}
}

// splitList slices src[lo:hi] into trimmed segments separated by commas
// at bracket depth zero. Segments are verbatim source text, so they keep
// syntax that node spans omit: accessor keywords, computed-key brackets,
// and grouping parentheses the parser drops. String and template
// literals are skipped whole so their contents cannot open a bracket or
// split a segment. An empty trailing segment (a trailing comma) is
// dropped. Returns false on bad offsets, unbalanced brackets, or an
// unterminated literal.
func splitList(src string, lo, hi int) ([]string, bool) {
	if lo < 0 || hi > len(src) || lo > hi {
		return nil, false
	}
	s := src[lo:hi]

	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return nil, false
			}
		case '\'', '"':
			next, ok := skipString(s, i)
			if !ok {
				return nil, false
			}
			i = next
			continue
		case '`':
			next, ok := skipTemplate(s, i)
			if !ok {
				return nil, false
			}
			i = next
			continue
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
		i++
	}
	if depth != 0 {
		return nil, false
	}
	if last := strings.TrimSpace(s[start:]); last != "" {
		parts = append(parts, last)
	}
	return parts, true
}

// skipString returns the offset just past the string literal opening at i.
func skipString(s string, i int) (int, bool) {
	quote := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j + 1, true
		}
	}
	return 0, false
}

// skipTemplate returns the offset just past the template literal opening
// at i. `${}` substitutions nest arbitrarily, including further templates.
func skipTemplate(s string, i int) (int, bool) {
	for j := i + 1; j < len(s); {
		switch s[j] {
		case '\\':
			j += 2
		case '`':
			return j + 1, true
		case '$':
			if j+1 < len(s) && s[j+1] == '{' {
				next, ok := skipSubstitution(s, j+1)
				if !ok {
					return 0, false
				}
				j = next
			} else {
				j++
			}
		default:
			j++
		}
	}
	return 0, false
}

// skipSubstitution consumes the brace-delimited block opening at i,
// tracking nested braces and literals.
func skipSubstitution(s string, i int) (int, bool) {
	depth := 0
	for j := i; j < len(s); {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j + 1, true
			}
		case '\'', '"':
			next, ok := skipString(s, j)
			if !ok {
				return 0, false
			}
			j = next
			continue
		case '`':
			next, ok := skipTemplate(s, j)
			if !ok {
				return 0, false
			}
			j = next
			continue
		}
		j++
	}
	return 0, false
}

// callVisitor invokes fn on every call expression in the tree, including
// calls nested inside arguments of other calls.
type callVisitor struct {
	ast.NoopVisitor
	fn func(*ast.CallExpression)
}

func (v *callVisitor) VisitCallExpression(n *ast.CallExpression) {
	v.fn(n)
	n.VisitChildrenWith(v.V)
}

func walkCalls(prog *ast.Program, fn func(*ast.CallExpression)) {
	v := &callVisitor{fn: fn}
	v.V = v
	prog.VisitWith(v)
}

// objectLiteralVisitor invokes fn on every object literal in the tree.
type objectLiteralVisitor struct {
	ast.NoopVisitor
	fn func(*ast.ObjectLiteral)
}

func (v *objectLiteralVisitor) VisitObjectLiteral(n *ast.ObjectLiteral) {
	v.fn(n)
	n.VisitChildrenWith(v.V)
}

func walkObjectLiterals(prog *ast.Program, fn func(*ast.ObjectLiteral)) {
	v := &objectLiteralVisitor{fn: fn}
	v.V = v
	prog.VisitWith(v)
}

// statementVisitor invokes fn on every statement in the tree.
type statementVisitor struct {
	ast.NoopVisitor
	fn func(*ast.Statement)
}

func (v *statementVisitor) VisitStatement(n *ast.Statement) {
	v.fn(n)
	n.VisitChildrenWith(v.V)
}

func walkStatements(prog *ast.Program, fn func(*ast.Statement)) {
	v := &statementVisitor{fn: fn}
	v.V = v
	prog.VisitWith(v)
}
