package internal

import (
	"github.com/t14raptor/go-fast/ast"

	"jslin/internal/lints"
	tt "jslin/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the parsed file and returns a slice of
	// Issues. src is the raw source text the program was parsed from.
	Check(filename string, prog *ast.Program, src string) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	// Severity returns the severity the rule reports with.
	Severity() tt.Severity

	// SetSeverity overrides the rule's default severity.
	SetSeverity(tt.Severity)
}

type ObjectSpreadRule struct {
	severity tt.Severity
}

func NewObjectSpreadRule() LintRule {
	return &ObjectSpreadRule{severity: tt.SeverityWarning}
}

func (r *ObjectSpreadRule) Check(filename string, prog *ast.Program, src string) ([]tt.Issue, error) {
	return lints.DetectObjectAssignSpread(filename, prog, src, r.severity)
}

func (r *ObjectSpreadRule) Name() string { return "prefer-object-spread" }
func (r *ObjectSpreadRule) Severity() tt.Severity { return r.severity }
func (r *ObjectSpreadRule) SetSeverity(sv tt.Severity) { r.severity = sv }

type ObjectAssignNoTargetRule struct {
	severity tt.Severity
}

func NewObjectAssignNoTargetRule() LintRule {
	return &ObjectAssignNoTargetRule{severity: tt.SeverityError}
}

func (r *ObjectAssignNoTargetRule) Check(filename string, prog *ast.Program, src string) ([]tt.Issue, error) {
	return lints.DetectObjectAssignNoTarget(filename, prog, src, r.severity)
}

func (r *ObjectAssignNoTargetRule) Name() string { return "object-assign-no-target" }
func (r *ObjectAssignNoTargetRule) Severity() tt.Severity { return r.severity }
func (r *ObjectAssignNoTargetRule) SetSeverity(sv tt.Severity) { r.severity = sv }

type DupeKeysRule struct {
	severity tt.Severity
}

func NewDupeKeysRule() LintRule {
	return &DupeKeysRule{severity: tt.SeverityError}
}

func (r *DupeKeysRule) Check(filename string, prog *ast.Program, src string) ([]tt.Issue, error) {
	return lints.DetectDuplicateObjectKeys(filename, prog, src, r.severity)
}

func (r *DupeKeysRule) Name() string { return "no-dupe-keys" }
func (r *DupeKeysRule) Severity() tt.Severity { return r.severity }
func (r *DupeKeysRule) SetSeverity(sv tt.Severity) { r.severity = sv }

type NoDebuggerRule struct {
	severity tt.Severity
}

func NewNoDebuggerRule() LintRule {
	return &NoDebuggerRule{severity: tt.SeverityWarning}
}

func (r *NoDebuggerRule) Check(filename string, prog *ast.Program, src string) ([]tt.Issue, error) {
	return lints.DetectDebuggerStatements(filename, prog, src, r.severity)
}

func (r *NoDebuggerRule) Name() string { return "no-debugger" }
func (r *NoDebuggerRule) Severity() tt.Severity { return r.severity }
func (r *NoDebuggerRule) SetSeverity(sv tt.Severity) { r.severity = sv }
