package names

import (
	"strings"

	"github.com/vk/framectx/internal/runevent"
)

// ForLoopHeader is the declared shape of a for loop.
type ForLoopHeader interface {
	VariableNames() []string
	JoinKeyword() string
	ValueTexts() []string
}

// CanonicalForLoopName renders a loop header the way the executor reports
// it, e.g. "${x} | ${y} IN ZIP [ ${XS} | ${YS} ]".
func CanonicalForLoopName(header ForLoopHeader) string {
	return CanonicalForLoop(header.VariableNames(), header.JoinKeyword(), header.ValueTexts())
}

// CanonicalForLoop is CanonicalForLoopName for plain values.
func CanonicalForLoop(variables []string, join string, values []string) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(variables, " | "))
	sb.WriteString(" ")
	sb.WriteString(strings.ToUpper(join))
	sb.WriteString(" [ ")
	sb.WriteString(strings.Join(values, " | "))
	sb.WriteString(" ]")
	return sb.String()
}

// IsSameForLoop reports whether the running loop event describes exactly
// the declared loop. No fuzzy matching is applied.
func IsSameForLoop(header ForLoopHeader, keyword runevent.RunningKeyword) bool {
	return CanonicalForLoopName(header) == keyword.Name
}
