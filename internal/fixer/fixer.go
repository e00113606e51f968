package fixer

import (
	"fmt"
	"os"
	"sort"

	"github.com/t14raptor/go-fast/parser"

	tt "jslin/internal/types"
)

// Fixer applies suggested fixes to source files. Each fix is a byte-span
// replacement; edits are applied back to front so earlier offsets stay
// valid.
type Fixer struct {
	DryRun        bool
	MinConfidence float64 // threshold for fixing issues
}

func New(dryRun bool, threshold float64) *Fixer {
	return &Fixer{
		DryRun:        dryRun,
		MinConfidence: threshold,
	}
}

// Fix applies every applicable suggestion to filename. The edited file is
// re-parsed before it is written back; a fix that produces invalid
// JavaScript aborts the whole batch and leaves the file untouched.
func (f *Fixer) Fix(filename string, issues []tt.Issue) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	sort.Slice(issues, func(i, j int) bool {
		return issues[i].End.Offset > issues[j].End.Offset
	})

	applied := 0
	lastStart := len(content)
	for _, issue := range issues {
		if issue.Confidence < f.MinConfidence || issue.Confidence == 0 {
			continue
		}

		start, end := issue.Start.Offset, issue.End.Offset
		if start < 0 || end > len(content) || start > end {
			continue
		}
		// skip edits overlapping one we already applied
		if end > lastStart {
			continue
		}

		if f.DryRun {
			fmt.Printf("Would fix issue in %s at line %d: %s\n", filename, issue.Start.Line, issue.Message)
			fmt.Printf("Suggestion:\n%s\n", issue.Suggestion)
			continue
		}

		patched := make([]byte, 0, len(content)-(end-start)+len(issue.Suggestion))
		patched = append(patched, content[:start]...)
		patched = append(patched, issue.Suggestion...)
		patched = append(patched, content[end:]...)
		content = patched

		lastStart = start
		applied++
	}

	if f.DryRun || applied == 0 {
		return nil
	}

	if _, err := parser.ParseFile(string(content)); err != nil {
		return fmt.Errorf("fixes produced invalid JavaScript, %s left unchanged: %w", filename, err)
	}

	if err := os.WriteFile(filename, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Fixed %d issue(s) in %s\n", applied, filename)
	return nil
}
