package emit

import (
	"slices"
	"strings"

	"sheetgen/internal/common"
)

// NormalizeUsings trims each directive, strips a leading "using" keyword and a
// trailing ';', drops blanks and duplicates and sorts the rest ordinally.
func NormalizeUsings(usings []string) []string {
	var set common.OrderedSet[string]

	for _, u := range usings {
		u = strings.TrimSpace(u)
		u = strings.TrimSpace(strings.TrimSuffix(u, ";"))

		if rest, ok := strings.CutPrefix(u, "using "); ok {
			u = strings.TrimSpace(rest)
		}

		if u != "" {
			set.Add(u)
		}
	}

	out := set.Values()
	slices.Sort(out)

	return out
}

// Directives renders `using X;` lines followed by one blank line, or nothing
// when there are no directives.
func Directives(usings []string) Lines {
	normalized := NormalizeUsings(usings)
	if len(normalized) == 0 {
		return nil
	}

	out := make(Lines, 0, len(normalized)+1)
	for _, u := range normalized {
		out = append(out, line(0, "using "+u+";"))
	}

	return append(out, blank())
}

// wrapNamespace wraps body in a namespace block when ns is not blank.
func wrapNamespace(ns string, body Lines) Lines {
	ns = strings.TrimSpace(ns)
	if ns == "" {
		return body
	}

	return concat(
		Lines{line(0, "namespace "+ns), line(0, "{")},
		body.Indent(1),
		Lines{line(0, "}")},
	)
}

// attributeLine renders one attribute, adding brackets unless already present.
func attributeLine(attr string) string {
	a := strings.TrimSpace(attr)
	if strings.HasPrefix(a, "[") && strings.HasSuffix(a, "]") {
		a = strings.TrimSpace(a[1 : len(a)-1])
	}

	return "[" + a + "]"
}
