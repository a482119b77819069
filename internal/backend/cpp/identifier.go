package cpp

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// identifierFor derives a C++-safe identifier from a display name: the base
// file name with every byte outside [A-Za-z0-9] replaced by an underscore,
// behind a fixed prefix so the result never starts with a digit and never
// collides with a keyword.
func identifierFor(name string) string {
	base := path.Base(filepath.ToSlash(name))
	var sb strings.Builder
	sb.WriteString("file_")
	for i := 0; i < len(base); i++ {
		c := base[i]
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// assignIdentifiers fills in Ident for every input, in order. When two names
// sanitize to the same identifier the later one gets the first unused ordinal
// suffix (_2, _3, ...), which keeps the assignment deterministic for a given
// input order.
func assignIdentifiers(inputs []Input) {
	taken := make(map[string]struct{}, len(inputs))
	for i := range inputs {
		ident := identifierFor(inputs[i].Name)
		if _, clash := taken[ident]; clash {
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s_%d", ident, n)
				if _, clash := taken[candidate]; !clash {
					ident = candidate
					break
				}
			}
		}
		taken[ident] = struct{}{}
		inputs[i].Ident = ident
	}
}

// sanitizeUpper maps a name onto the [A-Z0-9_] alphabet for use inside an
// include guard.
func sanitizeUpper(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			sb.WriteByte(c - 'a' + 'A')
		case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			sb.WriteByte(c)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
