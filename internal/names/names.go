// Package names compares keyword names found in the source model with the
// names reported by a running executor, and builds the canonical text of
// for loop headers.
package names

import (
	"regexp"
	"strings"

	"github.com/vk/framectx/internal/runevent"
)

// IsCallOf reports whether pattern, a keyword name written in the source
// model, calls the running keyword.
//
// The comparison is case-insensitive. A pattern may be qualified with a
// library or resource name ("lib.Log"); it then matches either the
// qualified running keyword or, when the executor reported no library, the
// bare name. Embedded arguments like ${name} or ${name:\d+} in the pattern
// match any non-empty text, or text matching the given regular expression.
func IsCallOf(pattern string, keyword runevent.RunningKeyword) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	if matches(pattern, keyword.Name) {
		return true
	}
	if keyword.Library != "" {
		return matches(pattern, keyword.Library+"."+keyword.Name)
	}
	for i := strings.IndexByte(pattern, '.'); i >= 0; {
		if matches(pattern[i+1:], keyword.Name) {
			return true
		}
		next := strings.IndexByte(pattern[i+1:], '.')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return false
}

func matches(pattern, name string) bool {
	if !strings.Contains(pattern, "${") {
		return strings.EqualFold(pattern, name)
	}
	re, ok := embeddedPattern(pattern)
	if !ok {
		return strings.EqualFold(pattern, name)
	}
	return re.MatchString(name)
}

// embeddedPattern compiles a keyword name with embedded arguments into an
// anchored, case-insensitive regular expression.
func embeddedPattern(pattern string) (*regexp.Regexp, bool) {
	var sb strings.Builder
	sb.WriteString("(?i)^")
	rest := pattern
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			sb.WriteString(regexp.QuoteMeta(rest))
			break
		}
		end := closingBrace(rest, start+2)
		if end < 0 {
			sb.WriteString(regexp.QuoteMeta(rest))
			break
		}
		sb.WriteString(regexp.QuoteMeta(rest[:start]))
		sb.WriteString(placeholderGroup(rest[start+2 : end]))
		rest = rest[end+1:]
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, false
	}
	return re, true
}

// closingBrace returns the index of the brace closing a placeholder whose
// body starts at from, taking braces nested in custom regexps into account.
func closingBrace(s string, from int) int {
	depth := 1
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func placeholderGroup(body string) string {
	if _, custom, ok := strings.Cut(body, ":"); ok && custom != "" {
		return "(" + custom + ")"
	}
	return "(.+)"
}
