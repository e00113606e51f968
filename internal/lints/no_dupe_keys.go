package lints

import (
	"fmt"
	"strconv"

	"github.com/t14raptor/go-fast/ast"

	tt "jslin/internal/types"
)

const (
	ruleNoDupeKeys = "no-dupe-keys"

	msgTemplateDupeKey = "duplicate key %q in object literal"
)

// keyUse records which property kinds a key has appeared as within one
// object literal. A getter and a setter for the same key are legal; any
// other repetition means the earlier entry is silently overwritten.
type keyUse struct {
	value bool
	get   bool
	set   bool
}

func (u *keyUse) conflicts(kind ast.PropertyKind) bool {
	switch kind {
	case ast.PropertyKindGet:
		return u.value || u.get
	case ast.PropertyKindSet:
		return u.value || u.set
	default:
		return u.value || u.get || u.set
	}
}

func (u *keyUse) record(kind ast.PropertyKind) {
	switch kind {
	case ast.PropertyKindGet:
		u.get = true
	case ast.PropertyKindSet:
		u.set = true
	default:
		u.value = true
	}
}

// propertyKeyName extracts the static key of a property, if it has one,
// along with the key node used for the issue span. Computed keys and
// spreads have no static key and are skipped. The key node is always a
// plain identifier or literal, whose offsets are recorded directly; the
// property node's own span derives from its value expression and is not
// usable for every value shape.
func propertyKeyName(p ast.Prop) (string, ast.PropertyKind, ast.Node, bool) {
	switch n := p.(type) {
	case *ast.PropertyShort:
		return n.Name.Name, ast.PropertyKindValue, n.Name, true
	case *ast.PropertyKeyed:
		if n.Computed {
			return "", n.Kind, nil, false
		}
		switch key := n.Key.Expr.(type) {
		case *ast.Identifier:
			return key.Name, n.Kind, key, true
		case *ast.StringLiteral:
			return key.Value, n.Kind, key, true
		case *ast.NumberLiteral:
			return strconv.FormatFloat(key.Value, 'f', -1, 64), n.Kind, key, true
		}
	}
	return "", ast.PropertyKindValue, nil, false
}

// DetectDuplicateObjectKeys reports object literals that declare the same
// static key more than once; at runtime the last occurrence wins and the
// earlier ones are dead.
func DetectDuplicateObjectKeys(filename string, prog *ast.Program, src string, severity tt.Severity) ([]tt.Issue, error) {
	idx := newLineIndex(src)

	var issues []tt.Issue
	walkObjectLiterals(prog, func(obj *ast.ObjectLiteral) {
		seen := make(map[string]*keyUse, len(obj.Value))
		for _, p := range obj.Value {
			name, kind, key, ok := propertyKeyName(p.Prop)
			if !ok {
				continue
			}
			use, dup := seen[name]
			if !dup {
				use = &keyUse{}
				seen[name] = use
			} else if use.conflicts(kind) {
				issues = append(issues, tt.Issue{
					Rule:     ruleNoDupeKeys,
					Category: "bug-risk",
					Filename: filename,
					Message:  fmt.Sprintf(msgTemplateDupeKey, name),
					Start:    idx.position(int(key.Idx0())),
					End:      idx.position(int(key.Idx1())),
					Severity: severity,
				})
			}
			use.record(kind)
		}
	})

	return issues, nil
}
