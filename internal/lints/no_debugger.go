package lints

import (
	"github.com/t14raptor/go-fast/ast"

	tt "jslin/internal/types"
)

const (
	ruleNoDebugger = "no-debugger"

	msgNoDebugger = "`debugger` statement should not be committed"
)

// DetectDebuggerStatements reports `debugger` statements. The suggested
// fix removes the statement; a trailing semicolon left behind parses as an
// empty statement.
func DetectDebuggerStatements(filename string, prog *ast.Program, src string, severity tt.Severity) ([]tt.Issue, error) {
	idx := newLineIndex(src)

	var issues []tt.Issue
	walkStatements(prog, func(stmt *ast.Statement) {
		dbg, ok := stmt.Stmt.(*ast.DebuggerStatement)
		if !ok {
			return
		}
		issues = append(issues, tt.Issue{
			Rule:       ruleNoDebugger,
			Category:   "debugging",
			Filename:   filename,
			Message:    msgNoDebugger,
			Start:      idx.position(int(dbg.Idx0())),
			End:        idx.position(int(dbg.Idx1())),
			Severity:   severity,
			Confidence: 0.9,
		})
	})

	return issues, nil
}
