package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/t14raptor/go-fast/parser"

	"jslin/internal/nolint"
	tt "jslin/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule

	watcher    watcher
	isWatching bool
}

// NewEngine creates a new lint engine with the given per-rule
// configuration applied on top of the default rule set.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	engine.applyRules(rules)
	return engine, nil
}

type ruleConstructor func() LintRule

var allRuleConstructors = map[string]ruleConstructor{
	"prefer-object-spread":    NewObjectSpreadRule,
	"object-assign-no-target": NewObjectAssignNoTargetRule,
	"no-dupe-keys":            NewDupeKeysRule,
	"no-debugger":             NewNoDebuggerRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]LintRule, len(allRuleConstructors))
	for key, construct := range allRuleConstructors {
		e.rules[key] = construct()
	}

	for key, cfg := range rules {
		rule, ok := e.rules[key]
		if !ok {
			// unknown rule names are tolerated so configs can be shared
			// across linter versions
			continue
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
			continue
		}
		rule.SetSeverity(cfg.Severity)
	}
}

// Run applies all lint rules to the given file and returns a slice of
// Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return e.runSource(filename, string(content))
}

// RunSource applies all lint rules to the given source and returns a
// slice of Issues.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.runSource("", string(source))
}

func (e *Engine) runSource(filename, src string) ([]tt.Issue, error) {
	prog, err := parser.ParseFile(src)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	nolintMgr := nolint.Parse(src)

	// The parsed tree is immutable during analysis and every rule is a
	// pure function of it, so rules run concurrently.
	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			issues, err := r.Check(filename, prog, src)
			if err != nil {
				return
			}

			filtered := filterNolintIssues(nolintMgr, issues)

			mu.Lock()
			allIssues = append(allIssues, filtered...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	sort.Slice(allIssues, func(i, j int) bool {
		if allIssues[i].Start.Offset != allIssues[j].Start.Offset {
			return allIssues[i].Start.Offset < allIssues[j].Start.Offset
		}
		return allIssues[i].Rule < allIssues[j].Rule
	})

	return allIssues, nil
}

// IgnoreRule disables a rule for this engine.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath excludes a file or directory from analysis.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isIgnoredPath(path string) bool {
	cleaned := filepath.Clean(path)
	for _, ignored := range e.ignoredPaths {
		if cleaned == ignored || strings.HasPrefix(cleaned, ignored+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// filterNolintIssues drops issues suppressed by nolint comments.
func filterNolintIssues(mgr *nolint.Manager, issues []tt.Issue) []tt.Issue {
	if mgr == nil {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !mgr.IsNolint(issue.Start.Line, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a
// SourceCode struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &SourceCode{Lines: strings.Split(string(content), "\n")}, nil
}
