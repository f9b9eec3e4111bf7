package golang

import (
	"go/token"
	"strings"
	"unicode"
)

// isValidPackageName reports whether name can be used in a package clause.
func isValidPackageName(name string) bool {
	if !token.IsIdentifier(name) || name == "_" {
		return false
	}
	for _, r := range name {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// fileName returns the generated file name for a type: "OrderID" becomes
// "order_id_gen.go". The _gen suffix keeps names like "ConfigLinux" from
// picking up build constraints.
func fileName(typeName string) string {
	return snakeCase(typeName) + "_gen.go"
}

// snakeCase splits an identifier at case changes, treating a run of upper
// case letters as one word.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// packageAlias returns the name used to qualify identifiers from an import
// path: the last path element, dropping a major version suffix.
func packageAlias(path string) string {
	parts := strings.Split(path, "/")
	last := parts[len(parts)-1]
	if len(parts) > 1 && len(last) > 1 && last[0] == 'v' && strings.Trim(last[1:], "0123456789") == "" {
		last = parts[len(parts)-2]
	}
	return strings.NewReplacer("-", "", ".", "").Replace(last)
}
