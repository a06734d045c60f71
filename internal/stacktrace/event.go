package stacktrace

import (
	"fmt"
	"strings"
)

// EventType identifies a runner event.
type EventType int

const (
	SuiteStarted EventType = iota
	SuiteEnded
	TestStarted
	TestEnded
	KeywordAboutToStart
	KeywordStarted
	KeywordAboutToEnd
	KeywordEnded
	ResourceImport
	Closed
)

var eventTypeNames = map[EventType]string{
	SuiteStarted:        "suite_started",
	SuiteEnded:          "suite_ended",
	TestStarted:         "test_started",
	TestEnded:           "test_ended",
	KeywordAboutToStart: "keyword_about_to_start",
	KeywordStarted:      "keyword_started",
	KeywordAboutToEnd:   "keyword_about_to_end",
	KeywordEnded:        "keyword_ended",
	ResourceImport:      "resource_import",
	Closed:              "closed",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// ParseEventType maps a snake_case event name onto its type.
func ParseEventType(name string) (EventType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range eventTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown event type '%s'", name)
}

// Event is one notification sent by the executor. Fields irrelevant to the
// event type are left empty.
type Event struct {
	Type EventType
	// Name is the suite, test or keyword name. For loop iterations it holds
	// the bindings, e.g. "${x} = 1".
	Name    string
	Library string
	// KeywordType is the executor's keyword type name, see runevent.ParseKind.
	KeywordType string
	// Path is the suite location or the imported resource.
	Path        string
	IsDirectory bool
}

func (e Event) String() string {
	switch e.Type {
	case SuiteStarted, ResourceImport:
		return fmt.Sprintf("%s(%s, %s)", e.Type, e.Name, e.Path)
	case KeywordAboutToStart, KeywordStarted, KeywordAboutToEnd, KeywordEnded:
		if e.Library != "" {
			return fmt.Sprintf("%s(%s.%s, %s)", e.Type, e.Library, e.Name, e.KeywordType)
		}
		return fmt.Sprintf("%s(%s, %s)", e.Type, e.Name, e.KeywordType)
	default:
		return fmt.Sprintf("%s(%s)", e.Type, e.Name)
	}
}
