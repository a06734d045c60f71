package contexts

import (
	"github.com/vk/framectx/internal/invariant"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/names"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

// SettingQuery describes where a setup or teardown keyword may be defined.
type SettingQuery struct {
	Scope messages.Scope
	// Path is the file holding Local; it is also reported when nothing is
	// found at all.
	Path string
	// Local is the setting of the element itself, e.g. a test's [Teardown].
	Local *model.Setting
	// Ancestors are searched nearest first when Local is absent.
	Ancestors []*model.File
}

// ResolveSetupOrTeardown finds the setting governing a running setup or
// teardown keyword. The first definition found wins, even when it is empty
// or calls another keyword. The returned state links back to prev.
//
// The keyword must be of Setup or Teardown kind.
func ResolveSetupOrTeardown(q SettingQuery, keyword runevent.RunningKeyword, prev Context, lookup BreakpointLookup) Context {
	invariant.Precondition(keyword.Kind.IsSetupOrTeardown(),
		"setup or teardown resolution requires SETUP or TEARDOWN keyword, got %s", keyword.Kind)
	invariant.NotNil(prev, "previous context")

	label := messages.SettingLabel(keyword.Kind, q.Scope)
	headline := messages.SetupTeardownNotFound(label, keyword)

	setting, path := q.Local, q.Path
	if !setting.IsDefined() {
		setting, path = firstDefinition(q.Ancestors, keyword.Kind, q.Scope)
	}

	switch {
	case !setting.IsDefined():
		message := headline
		if q.Scope != messages.TestScope {
			message += messages.SettingMissing(label)
		}
		return NewDiagnostic(q.Path, position.UnknownRegion, message, prev)
	case setting.IsEmpty():
		return NewDiagnostic(path, position.LineRegion(setting.Line), headline+messages.SettingMissing(label), prev)
	case !names.IsCallOf(setting.KeywordName(), keyword):
		return NewDiagnostic(path, position.LineRegion(setting.Line),
			headline+messages.SettingNonMatching(label, setting.KeywordName()), prev)
	default:
		return NewSetupOrTeardown(path, setting.Line, prev, lookup)
	}
}

func firstDefinition(ancestors []*model.File, kind runevent.Kind, scope messages.Scope) (*model.Setting, string) {
	for _, file := range ancestors {
		if setting := settingOf(&file.Settings, kind, scope); setting.IsDefined() {
			return setting, file.Path
		}
	}
	return nil, ""
}

// settingOf picks the table setting for the kind and scope. Keywords have
// no setup setting.
func settingOf(table *model.SettingsTable, kind runevent.Kind, scope messages.Scope) *model.Setting {
	switch {
	case scope == messages.SuiteScope && kind == runevent.Setup:
		return table.SuiteSetup
	case scope == messages.SuiteScope && kind == runevent.Teardown:
		return table.SuiteTeardown
	case scope == messages.TestScope && kind == runevent.Setup:
		return table.TestSetup
	case scope == messages.TestScope && kind == runevent.Teardown:
		return table.TestTeardown
	case scope == messages.KeywordScope && kind == runevent.Teardown:
		return table.KeywordTeardown
	default:
		return nil
	}
}
