package metrics

import "strings"

// FlattenName maps every rune that is not valid in a prometheus name to '_'.
func FlattenName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		default:
			return '_'
		}
	}, name)
}

func BuildFQName(names ...string) string {
	return FlattenName(strings.Join(names, "_"))
}
