package contexts

import (
	"fmt"

	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

// SuiteFileResolver returns the model holding the settings of the suite at
// path: the suite file itself, or the __init__ file of a directory suite.
type SuiteFileResolver func(path string) (*model.File, bool)

// Suite is entered when a suite starts.
type Suite struct {
	noBreakpoint
	name        string
	path        string
	isDirectory bool
	resolve     SuiteFileResolver
	err         string
}

// NewSuite creates a Suite state. resolve may be nil when the suite's files
// are not known.
func NewSuite(name, path string, isDirectory bool, resolve SuiteFileResolver) *Suite {
	return &Suite{name: name, path: path, isDirectory: isDirectory, resolve: resolve}
}

// NewErroneousSuite creates a Suite state for a suite which could not be
// located; err explains why.
func NewErroneousSuite(name, path string, isDirectory bool, err string) *Suite {
	return &Suite{name: name, path: path, isDirectory: isDirectory, err: err}
}

// Name returns the suite name reported by the executor.
func (s *Suite) Name() string { return s.name }

// IsDirectory reports whether the suite is a directory.
func (s *Suite) IsDirectory() bool { return s.isDirectory }

func (*Suite) sealed()                             {}
func (s *Suite) IsErroneous() bool                 { return s.err != "" }
func (s *Suite) ErrorMessage() (string, bool)      { return optional(s.err) }
func (s *Suite) AssociatedPath() (string, bool)    { return optional(s.path) }
func (*Suite) FileRegion() (position.Region, bool) { return position.Region{}, false }
func (*Suite) PreviousContext() Context            { return defaultContext }

func (s *Suite) String() string {
	return fmt.Sprintf("Suite(%s)", s.name)
}

func (s *Suite) advance(keyword runevent.RunningKeyword, lookup BreakpointLookup) (Context, error) {
	if !keyword.Kind.IsSetupOrTeardown() {
		return nil, illegalState(messages.OnlySuiteSetupOrTeardown)
	}
	label := messages.SettingLabel(keyword.Kind, messages.SuiteScope)
	headline := messages.SetupTeardownNotFound(label, keyword)

	if s.err != "" {
		return NewDiagnostic(s.path, position.UnknownRegion, headline+s.err, s), nil
	}
	var file *model.File
	found := false
	if s.resolve != nil {
		file, found = s.resolve(s.path)
	}
	if !found {
		return NewDiagnostic(s.path, position.UnknownRegion, headline+messages.MissingInitFile(s.name, s.path), s), nil
	}
	return ResolveSetupOrTeardown(SettingQuery{
		Scope: messages.SuiteScope,
		Path:  file.Path,
		Local: settingOf(&file.Settings, keyword.Kind, messages.SuiteScope),
	}, keyword, s, lookup), nil
}
