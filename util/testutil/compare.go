package testutil

import (
	"fmt"
	"strings"
)

// Trims each line and drops empty ones.
func TrimLines(str string) []string {
	u := []string{}
	for _, s := range strings.Split(str, "\n") {
		s = strings.TrimSpace(s)
		if s != "" {
			u = append(u, s)
		}
	}
	return u
}

// Compares ignoring surrounding spaces and empty lines. The error points at the first differing line.
func CompareLines(res, expected string) error {
	a, b := TrimLines(res), TrimLines(expected)
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var u, v string
		if i < len(a) {
			u = a[i]
		}
		if i < len(b) {
			v = b[i]
		}
		if u != v {
			return fmt.Errorf("line %d:\nres: %q\nexp: %q\nfull result:\n%s", i+1, u, v, strings.Join(a, "\n"))
		}
	}
	return nil
}
