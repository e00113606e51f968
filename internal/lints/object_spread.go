package lints

import (
	"strings"

	"github.com/t14raptor/go-fast/ast"

	tt "jslin/internal/types"
)

const (
	ruleObjectSpread = "prefer-object-spread"

	msgUseSpread  = "use an object spread instead of `Object.assign`"
	msgUseLiteral = "this `Object.assign` call is unnecessary, use the object literal directly"

	noteObjectSpread = "object spread evaluates its parts left to right, exactly like the " +
		"`Object.assign` argument list, so later properties still overwrite earlier ones."
)

// argKind tags the syntactic shape of one call argument. Classification is
// total: any shape that is not an object literal or a call-level spread
// falls through to argOpaque, which becomes a new spread entry.
type argKind int

const (
	argObjectLiteral argKind = iota
	argSpread
	argOpaque
)

func classifyArg(arg ast.Expression) argKind {
	switch arg.Expr.(type) {
	case *ast.ObjectLiteral:
		return argObjectLiteral
	case *ast.SpreadElement:
		return argSpread
	default:
		return argOpaque
	}
}

// isObjectAssignCallee reports whether the call is written exactly
// `Object.assign(...)`: a member access on the identifier `Object` with
// the plain (non-computed) property name `assign`. The parser drops
// grouping parentheses, so `(Object.assign)({}, x)` and
// `(Object).assign({}, x)` parse identically to the plain form while the
// replacement span still starts at `Object`; splicing there would leave
// stray parens behind. The source text around the callee is checked to
// rule those spellings out.
func isObjectAssignCallee(call *ast.CallExpression, src string) bool {
	member, ok := call.Callee.Expr.(*ast.MemberExpression)
	if !ok {
		return false
	}
	obj, ok := member.Object.Expr.(*ast.Identifier)
	if !ok || obj.Name != "Object" {
		return false
	}
	prop, ok := member.Property.Prop.(*ast.Identifier)
	if !ok || prop.Name != "assign" {
		return false
	}

	objEnd, propStart := int(obj.Idx1()), int(prop.Idx0())
	propEnd, lparen := int(prop.Idx1()), int(call.LeftParenthesis)
	if objEnd < 0 || propStart < objEnd || propEnd < propStart || lparen < propEnd || lparen > len(src) {
		return false
	}
	return strings.TrimSpace(src[objEnd:propStart]) == "." &&
		strings.TrimSpace(src[propEnd:lparen]) == ""
}

// matchObjectAssign decides whether call can be losslessly rewritten as an
// object literal with spreads and, if so, returns the replacement text.
//
// The first argument must itself be an object literal. Rewriting an opaque
// target would turn an in-place mutation into a fresh-object construction
// and change aliasing, so those calls are left alone. A spread at the
// target position hides an unknown underlying object and is treated the
// same way.
func matchObjectAssign(call *ast.CallExpression, src string) (string, bool) {
	if !isObjectAssignCallee(call, src) {
		return "", false
	}
	// zero arguments is a separate error, see object-assign-no-target
	if len(call.ArgumentList) == 0 {
		return "", false
	}
	if classifyArg(call.ArgumentList[0]) != argObjectLiteral {
		return "", false
	}
	return buildSpreadObject(call, src)
}

// buildSpreadObject assembles the replacement literal text: the target's
// own properties first in source order, then one entry per remaining
// argument. Literal arguments flatten one level, spread arguments pass
// through, and everything else becomes a new spread entry. Nothing is
// deduplicated or reordered; the output is the argument list in call
// order, each part sliced verbatim from src.
func buildSpreadObject(call *ast.CallExpression, src string) (string, bool) {
	args, ok := splitList(src, int(call.LeftParenthesis)+1, int(call.RightParenthesis))
	if !ok || len(args) != len(call.ArgumentList) {
		return "", false
	}

	target := call.ArgumentList[0].Expr.(*ast.ObjectLiteral)
	parts, ok := literalParts(src, target)
	if !ok {
		return "", false
	}
	for i, arg := range call.ArgumentList[1:] {
		switch classifyArg(arg) {
		case argObjectLiteral:
			more, ok := literalParts(src, arg.Expr.(*ast.ObjectLiteral))
			if !ok {
				return "", false
			}
			parts = append(parts, more...)
		case argSpread:
			// the argument text already carries its `...`
			parts = append(parts, args[i+1])
		default:
			parts = append(parts, "..."+args[i+1])
		}
	}

	if len(parts) == 0 {
		return "{}", true
	}
	return "{" + strings.Join(parts, ", ") + "}", true
}

// literalParts slices the property texts of an object literal from the
// source between its braces. The brace offsets are recorded directly on
// the node, so the slice is exact even when a property's own span is not.
func literalParts(src string, obj *ast.ObjectLiteral) ([]string, bool) {
	return splitList(src, int(obj.LeftBrace)+1, int(obj.RightBrace))
}

// DetectObjectAssignSpread reports `Object.assign` calls whose target is an
// object literal and suggests the equivalent object spread expression. The
// suggestion replaces the whole call, preserving argument order and count,
// so the rewrite is behavior-preserving regardless of argument side
// effects.
func DetectObjectAssignSpread(filename string, prog *ast.Program, src string, severity tt.Severity) ([]tt.Issue, error) {
	idx := newLineIndex(src)

	var issues []tt.Issue
	walkCalls(prog, func(call *ast.CallExpression) {
		suggestion, ok := matchObjectAssign(call, src)
		if !ok {
			return
		}

		msg := msgUseSpread
		if len(call.ArgumentList) == 1 {
			msg = msgUseLiteral
		}

		member := call.Callee.Expr.(*ast.MemberExpression)
		start := int(member.Object.Expr.Idx0())
		end := int(call.Idx1())

		issues = append(issues, tt.Issue{
			Rule:       ruleObjectSpread,
			Category:   "style",
			Filename:   filename,
			Message:    msg,
			Suggestion: suggestion,
			Note:       noteObjectSpread,
			Start:      idx.position(start),
			End:        idx.position(end),
			Severity:   severity,
			Confidence: 1.0,
		})
	})

	return issues, nil
}
