package nolint

import "strings"

const nolintPrefix = "//nolint"

// Manager answers whether an issue on a given line is suppressed by a
// nolint comment. JavaScript comments never reach the AST, so scopes are
// resolved over the raw source lines instead:
//
//   - a trailing `//nolint` suppresses its own line,
//   - a standalone `//nolint` line suppresses the next non-blank line,
//   - a `//nolint` above the first code line suppresses the whole file.
//
// `//nolint` alone matches every rule; `//nolint:rule1,rule2` matches only
// the named rules.
type Manager struct {
	wholeFile map[string]struct{}
	byLine    map[int]map[string]struct{}
}

// Parse scans the source once and collects all nolint scopes.
func Parse(src string) *Manager {
	m := &Manager{byLine: make(map[int]map[string]struct{})}

	lines := strings.Split(src, "\n")
	seenCode := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		comment := strings.Index(line, nolintPrefix)
		if comment < 0 {
			if trimmed != "" && !strings.HasPrefix(trimmed, "//") {
				seenCode = true
			}
			continue
		}

		rules, ok := parseDirective(line[comment:])
		if !ok {
			continue
		}

		standalone := strings.TrimSpace(line[:comment]) == ""
		switch {
		case standalone && !seenCode:
			switch {
			case m.wholeFile == nil:
				m.wholeFile = rules
			case len(m.wholeFile) == 0 || len(rules) == 0:
				m.wholeFile = map[string]struct{}{}
			default:
				mergeRules(m.wholeFile, rules)
			}
		case standalone:
			if target, found := nextCodeLine(lines, i+1); found {
				m.addLine(target, rules)
			}
		default:
			m.addLine(i+1, rules)
			seenCode = true
		}
	}

	return m
}

// IsNolint reports whether the rule is suppressed at the given 1-based
// line.
func (m *Manager) IsNolint(line int, rule string) bool {
	if matchRules(m.wholeFile, rule) {
		return true
	}
	return matchRules(m.byLine[line], rule)
}

// parseDirective splits the rule list off a nolint comment. The directive
// must be either bare or followed by a colon and at least one rule name.
func parseDirective(text string) (map[string]struct{}, bool) {
	rest := strings.TrimPrefix(text, nolintPrefix)
	// strip anything after the directive token itself
	if cut := strings.IndexAny(rest, " \t"); cut >= 0 && !strings.HasPrefix(rest, ":") {
		rest = rest[:cut]
	}
	if rest == "" {
		// bare //nolint applies to all rules
		return map[string]struct{}{}, true
	}
	if rest[0] != ':' {
		return nil, false
	}

	rules := make(map[string]struct{})
	for _, name := range strings.Split(rest[1:], ",") {
		name = strings.TrimSpace(name)
		if cut := strings.IndexAny(name, " \t"); cut >= 0 {
			name = name[:cut]
		}
		if name != "" {
			rules[name] = struct{}{}
		}
	}
	if len(rules) == 0 {
		return nil, false
	}
	return rules, true
}

func (m *Manager) addLine(line int, rules map[string]struct{}) {
	if existing, ok := m.byLine[line]; ok {
		if len(existing) == 0 || len(rules) == 0 {
			m.byLine[line] = map[string]struct{}{}
			return
		}
		mergeRules(existing, rules)
		return
	}
	m.byLine[line] = rules
}

func mergeRules(dst, src map[string]struct{}) {
	for r := range src {
		dst[r] = struct{}{}
	}
}

// matchRules treats a present-but-empty rule set as "all rules".
func matchRules(rules map[string]struct{}, rule string) bool {
	if rules == nil {
		return false
	}
	if len(rules) == 0 {
		return true
	}
	_, ok := rules[rule]
	return ok
}

// nextCodeLine finds the 1-based number of the first non-blank,
// non-comment line at or after index start.
func nextCodeLine(lines []string, start int) (int, bool) {
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		return i + 1, true
	}
	return 0, false
}
