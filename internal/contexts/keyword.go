package contexts

import (
	"fmt"

	"github.com/vk/framectx/internal/executables"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

// KeywordOfUser is entered when a keyword defined in a suite or resource
// file starts.
type KeywordOfUser struct {
	noBreakpoint
	keyword   *model.UserKeyword
	path      string
	ancestors []*model.File
	err       string
	body      *Body
}

// NewKeywordOfUser creates a KeywordOfUser state for a keyword defined in
// the file at path. ancestors are searched for a Keyword Teardown setting.
func NewKeywordOfUser(keyword *model.UserKeyword, path string, ancestors []*model.File) *KeywordOfUser {
	k := &KeywordOfUser{keyword: keyword, path: path, ancestors: ancestors}
	if keyword != nil {
		k.body = &Body{
			Path:      path,
			Ancestors: ancestors,
			Nodes:     executables.Compile(keyword.Rows),
			Scope:     messages.KeywordScope,
			Teardown:  keyword.Teardown,
		}
	}
	return k
}

// NewErroneousKeywordOfUser creates a KeywordOfUser state for a keyword
// which could not be located; err explains why.
func NewErroneousKeywordOfUser(path string, err string) *KeywordOfUser {
	return &KeywordOfUser{path: path, err: err}
}

// Keyword returns the located keyword, if any.
func (k *KeywordOfUser) Keyword() *model.UserKeyword { return k.keyword }

func (*KeywordOfUser) sealed()                          {}
func (k *KeywordOfUser) IsErroneous() bool              { return k.err != "" }
func (k *KeywordOfUser) ErrorMessage() (string, bool)   { return optional(k.err) }
func (k *KeywordOfUser) AssociatedPath() (string, bool) { return optional(k.path) }
func (*KeywordOfUser) PreviousContext() Context         { return defaultContext }

// FileRegion returns the line of the keyword's name.
func (k *KeywordOfUser) FileRegion() (position.Region, bool) {
	if k.keyword == nil {
		return position.Region{}, false
	}
	return position.LineRegion(k.keyword.Line), true
}

func (k *KeywordOfUser) String() string {
	if k.keyword == nil {
		return "KeywordOfUser(?)"
	}
	return fmt.Sprintf("KeywordOfUser(%s)", k.keyword.Name)
}

func (k *KeywordOfUser) advance(keyword runevent.RunningKeyword, lookup BreakpointLookup) (Context, error) {
	switch keyword.Kind {
	case runevent.Setup:
		return nil, illegalState(messages.SetupOrTeardownInKeyword)
	case runevent.LoopIteration:
		return nil, illegalState(messages.IterationOutsideLoop)
	case runevent.Teardown:
		if k.keyword == nil {
			label := messages.SettingLabel(keyword.Kind, messages.KeywordScope)
			return NewDiagnostic(k.path, position.UnknownRegion, messages.SetupTeardownNotFound(label, keyword)+k.err, k), nil
		}
		return ResolveSetupOrTeardown(SettingQuery{
			Scope:     messages.KeywordScope,
			Path:      k.path,
			Local:     k.keyword.Teardown,
			Ancestors: k.ancestors,
		}, keyword, k, lookup), nil
	}
	if k.keyword == nil {
		return NewDiagnostic(k.path, position.UnknownRegion, messages.CallNotFound(keyword)+k.err, k), nil
	}
	return NewExecutableCall(k.body, -1, k, lookup).advance(keyword, lookup)
}
