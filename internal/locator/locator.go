package locator

import (
	"context"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/vk/framectx/internal/contexts"
	"github.com/vk/framectx/internal/ctxlog"
	"github.com/vk/framectx/internal/invariant"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/names"
	"github.com/vk/framectx/internal/runevent"
)

// maxSuggestions bounds the "Did you mean" list.
const maxSuggestions = 3

// Locator answers lookups against one workspace.
type Locator struct {
	workspace *model.Workspace
}

// New creates a Locator over ws.
func New(ws *model.Workspace) *Locator {
	invariant.NotNil(ws, "workspace")
	return &Locator{workspace: ws}
}

// FindContextForSuite returns the entry state of a starting suite. An empty
// path denotes the top-level suite merged from several data sources; it has
// no settings of its own.
func (l *Locator) FindContextForSuite(ctx context.Context, name, path string, isDirectory bool) *contexts.Suite {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		logger.Debug("Suite has no location.", "suite", name)
		return contexts.NewSuite(name, "", isDirectory, nil)
	}

	if isDirectory {
		if !l.workspace.HasDir(path) {
			logger.Debug("Directory suite not found in workspace.", "suite", name, "path", path)
			return contexts.NewErroneousSuite(name, path, true, messages.SuiteNotFound(name, path))
		}
		return contexts.NewSuite(name, path, true, l.workspace.InitFile)
	}

	if _, ok := l.workspace.File(path); !ok {
		logger.Debug("Suite file not found in workspace.", "suite", name, "path", path)
		return contexts.NewErroneousSuite(name, path, false, messages.SuiteNotFound(name, path))
	}
	return contexts.NewSuite(name, path, false, l.workspace.File)
}

// FindContextForTestCase returns the entry state of a test starting in the
// suite file at suitePath. Names are compared case-insensitively.
func (l *Locator) FindContextForTestCase(ctx context.Context, name, suitePath string) *contexts.TestCase {
	logger := ctxlog.FromContext(ctx)

	file, ok := l.workspace.File(suitePath)
	if suitePath == "" || !ok {
		logger.Debug("Test started in unknown suite.", "test", name, "suite_path", suitePath)
		return contexts.NewErroneousTestCase(suitePath, messages.TestSuiteUnknown(name))
	}

	test, ok := file.FindTestCase(name)
	if !ok {
		suggestions := Suggest(name, file.TestCaseNames())
		logger.Debug("Test not found in suite file.", "test", name, "suite_path", suitePath, "suggestions", suggestions)
		return contexts.NewErroneousTestCase(file.Path,
			messages.TestNotFound(name, file.Path)+messages.DidYouMean(suggestions))
	}

	template, _ := file.TemplateFor(test)
	logger.Debug("Test located.", "test", test.Name, "line", test.Line, "template", template)
	return contexts.NewTestCase(test, file.Path, l.workspace.Ancestors(file), template)
}

// FindContextForKeyword returns the entry state of a starting keyword. The
// suite file is searched first, then the resources it imports, then the
// resources imported dynamically during the run. A keyword defined in none
// of them is assumed to come from a library.
func (l *Locator) FindContextForKeyword(ctx context.Context, library, name, suitePath string, loadedResources []string) contexts.Context {
	logger := ctxlog.FromContext(ctx)
	keyword := runevent.New(library, name, runevent.Call)

	if suitePath == "" {
		logger.Debug("Keyword started outside of any suite.", "keyword", keyword.String())
		return contexts.NewUnknown(messages.KeywordNotFound(keyword.String()))
	}

	suite, ok := l.workspace.File(suitePath)
	if !ok {
		return contexts.NewKeywordFromLibrary(keyword.String())
	}

	scopes := [][]string{{suite.Path}, suite.Settings.Resources, loadedResources}
	for _, scope := range scopes {
		found := l.userKeywords(scope, keyword)
		switch {
		case len(found) == 1:
			logger.Debug("User keyword located.", "keyword", keyword.String(), "path", found[0].file.Path)
			return contexts.NewKeywordOfUser(found[0].keyword, found[0].file.Path, l.workspace.Ancestors(suite))
		case len(found) > 1:
			var locations []string
			for _, f := range found {
				locations = append(locations, f.file.Path)
			}
			logger.Debug("Keyword is ambiguous.", "keyword", keyword.String(), "locations", locations)
			return contexts.NewUnknown(messages.KeywordAmbiguous(keyword.String(), locations))
		}
	}
	return contexts.NewKeywordFromLibrary(keyword.String())
}

type located struct {
	file    *model.File
	keyword *model.UserKeyword
}

func (l *Locator) userKeywords(paths []string, keyword runevent.RunningKeyword) []located {
	var found []located
	seen := map[string]bool{}
	for _, p := range paths {
		file, ok := l.workspace.File(p)
		if !ok || seen[file.Path] {
			continue
		}
		seen[file.Path] = true
		for _, kw := range file.Keywords {
			if names.IsCallOf(kw.Name, keyword) {
				found = append(found, located{file: file, keyword: kw})
			}
		}
	}
	return found
}

// Suggest returns up to three candidates close to name, best first. A
// candidate is close when one of the names fuzzily contains the other or
// when only a few edits separate them.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		text     string
		distance int
	}
	lower := strings.ToLower(name)
	threshold := max(2, len(name)/3)

	var near []scored
	for _, c := range candidates {
		distance := fuzzy.LevenshteinDistance(lower, strings.ToLower(c))
		if fuzzy.MatchNormalizedFold(name, c) || fuzzy.MatchNormalizedFold(c, name) || distance <= threshold {
			near = append(near, scored{text: c, distance: distance})
		}
	}
	sort.SliceStable(near, func(i, j int) bool {
		if near[i].distance != near[j].distance {
			return near[i].distance < near[j].distance
		}
		return near[i].text < near[j].text
	})

	var out []string
	for i := 0; i < len(near) && i < maxSuggestions; i++ {
		out = append(out, near[i].text)
	}
	return out
}
