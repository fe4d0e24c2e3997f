package monitoring

import (
	"strings"
)

// segmentName shortens a runtime function name to pkg.Receiver.Method, e.g.
// "github.com/x/internal/services.(*balance).Balance" to "services.balance.Balance".
// Closure suffixes such as ".func1" are dropped.
func segmentName(fullFuncName string) string {
	name := fullFuncName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	parts := strings.Split(name, ".")
	out := parts[:0]
	for i, p := range parts {
		if i > 1 && isClosure(p) {
			break
		}
		p = strings.TrimSuffix(strings.TrimPrefix(p, "(*"), ")")
		p = strings.Trim(p, "()")
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fullFuncName
	}

	return strings.Join(out, ".")
}

func isClosure(part string) bool {
	rest, ok := strings.CutPrefix(part, "func")
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
