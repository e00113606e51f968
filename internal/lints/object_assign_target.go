package lints

import (
	"github.com/t14raptor/go-fast/ast"

	tt "jslin/internal/types"
)

const (
	ruleNoAssignTarget = "object-assign-no-target"

	msgNoAssignTarget = "`Object.assign` called without a target object"

	noteNoAssignTarget = "`Object.assign` requires at least one argument; calling it with none " +
		"throws a TypeError at runtime."
)

// DetectObjectAssignNoTarget reports zero-argument `Object.assign()` calls.
// There is no behavior-preserving rewrite for a missing target, so the
// issue carries no fix.
func DetectObjectAssignNoTarget(filename string, prog *ast.Program, src string, severity tt.Severity) ([]tt.Issue, error) {
	idx := newLineIndex(src)

	var issues []tt.Issue
	walkCalls(prog, func(call *ast.CallExpression) {
		if !isObjectAssignCallee(call, src) || len(call.ArgumentList) != 0 {
			return
		}

		member := call.Callee.Expr.(*ast.MemberExpression)
		issues = append(issues, tt.Issue{
			Rule:     ruleNoAssignTarget,
			Category: "bug-risk",
			Filename: filename,
			Message:  msgNoAssignTarget,
			Note:     noteNoAssignTarget,
			Start:    idx.position(int(member.Object.Expr.Idx0())),
			End:      idx.position(int(call.Idx1())),
			Severity: severity,
		})
	})

	return issues, nil
}
