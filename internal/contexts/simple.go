package contexts

import (
	"fmt"

	"github.com/vk/framectx/internal/invariant"
	"github.com/vk/framectx/internal/position"
)

// Default is the root of every chain of states.
type Default struct {
	noBreakpoint
}

var defaultContext = &Default{}

// DefaultContext returns the Default state.
func DefaultContext() *Default { return defaultContext }

func (*Default) sealed()                             {}
func (*Default) IsErroneous() bool                   { return false }
func (*Default) ErrorMessage() (string, bool)        { return "", false }
func (*Default) AssociatedPath() (string, bool)      { return "", false }
func (*Default) FileRegion() (position.Region, bool) { return position.Region{}, false }

// PreviousContext returns the Default state itself.
func (d *Default) PreviousContext() Context { return d }

func (*Default) String() string { return "Default" }

// Unknown is a state entered when the element being run could not be
// identified at all.
type Unknown struct {
	noBreakpoint
	message string
}

// NewUnknown creates an Unknown state. The message may be empty.
func NewUnknown(message string) *Unknown {
	return &Unknown{message: message}
}

func (*Unknown) sealed()                             {}
func (u *Unknown) IsErroneous() bool                 { return u.message != "" }
func (u *Unknown) ErrorMessage() (string, bool)      { return optional(u.message) }
func (*Unknown) AssociatedPath() (string, bool)      { return "", false }
func (*Unknown) FileRegion() (position.Region, bool) { return position.Region{}, false }
func (*Unknown) PreviousContext() Context            { return defaultContext }
func (*Unknown) String() string                      { return "Unknown" }

// Diagnostic reports a running keyword that does not match the source model.
type Diagnostic struct {
	noBreakpoint
	path    string
	region  position.Region
	message string
	prev    Context
}

// NewDiagnostic creates a Diagnostic. The message must not be empty.
func NewDiagnostic(path string, region position.Region, message string, prev Context) *Diagnostic {
	invariant.Precondition(message != "", "diagnostic message must not be empty")
	if prev == nil {
		prev = defaultContext
	}
	return &Diagnostic{path: path, region: region, message: message, prev: prev}
}

func (*Diagnostic) sealed()                               {}
func (*Diagnostic) IsErroneous() bool                     { return true }
func (d *Diagnostic) ErrorMessage() (string, bool)        { return d.message, true }
func (d *Diagnostic) AssociatedPath() (string, bool)      { return optional(d.path) }
func (d *Diagnostic) FileRegion() (position.Region, bool) { return d.region, true }
func (d *Diagnostic) PreviousContext() Context            { return d.prev }

func (d *Diagnostic) String() string {
	return fmt.Sprintf("Diagnostic(%s:%d)", d.path, d.region.Line())
}

// KeywordFromLibrary is entered when a keyword implemented by a library is
// running; it has no inspectable body.
type KeywordFromLibrary struct {
	noBreakpoint
	name string
}

// NewKeywordFromLibrary creates a KeywordFromLibrary state.
func NewKeywordFromLibrary(name string) *KeywordFromLibrary {
	return &KeywordFromLibrary{name: name}
}

// Name returns the keyword as reported by the executor.
func (k *KeywordFromLibrary) Name() string { return k.name }

func (*KeywordFromLibrary) sealed()                             {}
func (*KeywordFromLibrary) IsErroneous() bool                   { return false }
func (*KeywordFromLibrary) ErrorMessage() (string, bool)        { return "", false }
func (*KeywordFromLibrary) AssociatedPath() (string, bool)      { return "", false }
func (*KeywordFromLibrary) FileRegion() (position.Region, bool) { return position.Region{}, false }
func (*KeywordFromLibrary) PreviousContext() Context            { return defaultContext }
func (k *KeywordFromLibrary) String() string                    { return "Library(" + k.name + ")" }
