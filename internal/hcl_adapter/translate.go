package hcl_adapter

import (
	"context"
	"fmt"
	"path"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/stacktrace"
)

func (l *Loader) translateFile(ctx context.Context, fb *FileBlock) (*model.File, error) {
	if fb.Path == "" {
		return nil, fmt.Errorf("file block must have a non-empty path")
	}
	f := &model.File{Path: path.Clean(fb.Path)}

	if fb.Settings != nil {
		table, err := l.translateSettings(ctx, fb.Settings)
		if err != nil {
			return nil, fmt.Errorf("file '%s': %w", f.Path, err)
		}
		f.Settings = table
	}
	for _, tb := range fb.Tests {
		tc, err := l.translateTestCase(ctx, tb)
		if err != nil {
			return nil, fmt.Errorf("file '%s': %w", f.Path, err)
		}
		f.TestCases = append(f.TestCases, tc)
	}
	for _, kb := range fb.Keywords {
		kw, err := l.translateKeyword(ctx, kb)
		if err != nil {
			return nil, fmt.Errorf("file '%s': %w", f.Path, err)
		}
		f.Keywords = append(f.Keywords, kw)
	}
	return f, nil
}

func (l *Loader) translateSettings(ctx context.Context, sb *SettingsBlock) (model.SettingsTable, error) {
	table := model.SettingsTable{Resources: sb.Resources}
	settings := []struct {
		name string
		expr hcl.Expression
		dst  **model.Setting
	}{
		{"suite_setup", sb.SuiteSetup, &table.SuiteSetup},
		{"suite_teardown", sb.SuiteTeardown, &table.SuiteTeardown},
		{"test_setup", sb.TestSetup, &table.TestSetup},
		{"test_teardown", sb.TestTeardown, &table.TestTeardown},
		{"keyword_teardown", sb.KeywordTeardown, &table.KeywordTeardown},
		{"test_template", sb.TestTemplate, &table.TestTemplate},
	}
	for _, s := range settings {
		setting, err := translateSetting(ctx, s.expr, s.name)
		if err != nil {
			return table, err
		}
		*s.dst = setting
	}
	return table, nil
}

func (l *Loader) translateTestCase(ctx context.Context, tb *TestBlock) (*model.TestCase, error) {
	tc := &model.TestCase{Name: tb.Name, Line: tb.Line, Rows: translateRows(tb.Rows)}
	var err error
	if tc.Setup, err = translateSetting(ctx, tb.Setup, "setup"); err != nil {
		return nil, fmt.Errorf("test '%s': %w", tb.Name, err)
	}
	if tc.Teardown, err = translateSetting(ctx, tb.Teardown, "teardown"); err != nil {
		return nil, fmt.Errorf("test '%s': %w", tb.Name, err)
	}
	if tc.Template, err = translateSetting(ctx, tb.Template, "template"); err != nil {
		return nil, fmt.Errorf("test '%s': %w", tb.Name, err)
	}
	return tc, nil
}

func (l *Loader) translateKeyword(ctx context.Context, kb *KeywordBlock) (*model.UserKeyword, error) {
	kw := &model.UserKeyword{Name: kb.Name, Line: kb.Line, Rows: translateRows(kb.Rows)}
	var err error
	if kw.Teardown, err = translateSetting(ctx, kb.Teardown, "teardown"); err != nil {
		return nil, fmt.Errorf("keyword '%s': %w", kb.Name, err)
	}
	return kw, nil
}

func translateRows(blocks []*RowBlock) []model.Row {
	rows := make([]model.Row, 0, len(blocks))
	for _, rb := range blocks {
		rows = append(rows, model.NewRow(rb.Line, 0, rb.Cells...))
	}
	return rows
}

func (l *Loader) translateBreakpoint(bb *BreakpointBlock) (*breakpoint.Breakpoint, error) {
	if bb.Path == "" || bb.Line < 1 {
		return nil, fmt.Errorf("breakpoint must have a path and a positive line, got %s:%d", bb.Path, bb.Line)
	}
	bp := breakpoint.New(bb.Path, bb.Line)
	if bb.Enabled != nil {
		bp.Enabled = *bb.Enabled
	}
	bp.Condition = bb.Condition
	return bp, nil
}

// translateEvent flattens an event block and its nested blocks into the
// events the runner would send.
func (l *Loader) translateEvent(eb *EventBlock) ([]stacktrace.Event, error) {
	base := stacktrace.Event{
		Name:        eb.Name,
		Library:     eb.Library,
		KeywordType: eb.KeywordType,
		Path:        eb.Path,
		IsDirectory: eb.Directory,
	}

	var opening, closing []stacktrace.EventType
	switch eb.Kind {
	case "suite":
		opening = []stacktrace.EventType{stacktrace.SuiteStarted}
		closing = []stacktrace.EventType{stacktrace.SuiteEnded}
	case "test":
		opening = []stacktrace.EventType{stacktrace.TestStarted}
		closing = []stacktrace.EventType{stacktrace.TestEnded}
	case "keyword":
		opening = []stacktrace.EventType{stacktrace.KeywordAboutToStart, stacktrace.KeywordStarted}
		closing = []stacktrace.EventType{stacktrace.KeywordAboutToEnd, stacktrace.KeywordEnded}
	default:
		t, err := stacktrace.ParseEventType(eb.Kind)
		if err != nil {
			return nil, err
		}
		if len(eb.Events) > 0 {
			return nil, fmt.Errorf("event '%s' cannot have nested events", eb.Kind)
		}
		base.Type = t
		return []stacktrace.Event{base}, nil
	}

	var events []stacktrace.Event
	for _, t := range opening {
		ev := base
		ev.Type = t
		events = append(events, ev)
	}
	for _, nested := range eb.Events {
		inner, err := l.translateEvent(nested)
		if err != nil {
			return nil, err
		}
		events = append(events, inner...)
	}
	for _, t := range closing {
		ev := base
		ev.Type = t
		events = append(events, ev)
	}
	return events, nil
}
