package locator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framectx/internal/contexts"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/runevent"
)

func newWorkspace() *model.Workspace {
	return model.NewWorkspace(
		&model.File{Path: "/ws/__init__.robot", Settings: model.SettingsTable{
			TestTeardown: model.NewSetting(2, "init teardown"),
		}},
		&model.File{
			Path: "/ws/suite.robot",
			Settings: model.SettingsTable{
				Resources: []string{"/ws/res.robot", "/ws/res2.robot"},
			},
			TestCases: []*model.TestCase{
				{Name: "Login Test", Line: 3, Rows: []model.Row{model.NewRow(4, 0, "my kw")}},
				{Name: "Logout", Line: 6, Template: model.NewSetting(7, "Check")},
			},
			Keywords: []*model.UserKeyword{{Name: "my kw", Line: 20}},
		},
		&model.File{Path: "/ws/res.robot", Keywords: []*model.UserKeyword{{Name: "res kw", Line: 5}, {Name: "dup", Line: 6}}},
		&model.File{Path: "/ws/res2.robot", Keywords: []*model.UserKeyword{{Name: "dup", Line: 8}}},
		&model.File{Path: "/ws/dyn.robot", Keywords: []*model.UserKeyword{{Name: "dyn ${what}", Line: 9}}},
	)
}

func TestFindContextForSuite(t *testing.T) {
	l := New(newWorkspace())
	ctx := context.Background()

	t.Run("file suite", func(t *testing.T) {
		suite := l.FindContextForSuite(ctx, "Suite", "/ws/suite.robot", false)
		assert.False(t, suite.IsErroneous())
		assert.False(t, suite.IsDirectory())
		path, ok := suite.AssociatedPath()
		require.True(t, ok)
		assert.Equal(t, "/ws/suite.robot", path)
	})

	t.Run("directory suite resolves its init file", func(t *testing.T) {
		suite := l.FindContextForSuite(ctx, "Ws", "/ws", true)
		assert.False(t, suite.IsErroneous())

		next, err := contexts.MoveTo(suite, runevent.New("", "kw", runevent.Setup), nil)
		require.NoError(t, err)
		msg, _ := next.ErrorMessage()
		assert.Contains(t, msg, "Suite Setup setting could not be found in this suite")
		path, _ := next.AssociatedPath()
		assert.Equal(t, "/ws/__init__.robot", path)
	})

	t.Run("unknown locations", func(t *testing.T) {
		suite := l.FindContextForSuite(ctx, "Gone", "/ws/gone.robot", false)
		msg, ok := suite.ErrorMessage()
		require.True(t, ok)
		assert.Equal(t, "Unable to find suite 'Gone' at /ws/gone.robot in the workspace\n", msg)

		dir := l.FindContextForSuite(ctx, "Gone", "/elsewhere", true)
		assert.True(t, dir.IsErroneous())
	})

	t.Run("merged top level suite", func(t *testing.T) {
		suite := l.FindContextForSuite(ctx, "Merged", "", true)
		assert.False(t, suite.IsErroneous())
		_, ok := suite.AssociatedPath()
		assert.False(t, ok)
	})
}

func TestFindContextForTestCase(t *testing.T) {
	l := New(newWorkspace())
	ctx := context.Background()

	t.Run("found by case insensitive name", func(t *testing.T) {
		test := l.FindContextForTestCase(ctx, "login test", "/ws/suite.robot")
		require.False(t, test.IsErroneous())
		assert.Equal(t, "Login Test", test.Test().Name)
		assert.Empty(t, test.Template())

		teardown, err := contexts.MoveTo(test, runevent.New("", "init teardown", runevent.Teardown), nil)
		require.NoError(t, err)
		assert.False(t, teardown.IsErroneous())
		path, _ := teardown.AssociatedPath()
		assert.Equal(t, "/ws/__init__.robot", path)
	})

	t.Run("template applied", func(t *testing.T) {
		test := l.FindContextForTestCase(ctx, "Logout", "/ws/suite.robot")
		assert.Equal(t, "Check", test.Template())
	})

	t.Run("not found with suggestions", func(t *testing.T) {
		test := l.FindContextForTestCase(ctx, "Login Tset", "/ws/suite.robot")
		msg, ok := test.ErrorMessage()
		require.True(t, ok)
		assert.Equal(t, "Unable to find test 'Login Tset' in suite file '/ws/suite.robot'\nDid you mean: Login Test\n", msg)
	})

	t.Run("not found without suggestions", func(t *testing.T) {
		test := l.FindContextForTestCase(ctx, "Completely different", "/ws/suite.robot")
		msg, _ := test.ErrorMessage()
		assert.Equal(t, "Unable to find test 'Completely different' in suite file '/ws/suite.robot'\n", msg)
	})

	t.Run("unknown suite", func(t *testing.T) {
		test := l.FindContextForTestCase(ctx, "Login Test", "/ws/gone.robot")
		msg, _ := test.ErrorMessage()
		assert.Equal(t, "Unable to find test 'Login Test' because its suite is not known\n", msg)
	})
}

func TestFindContextForKeyword(t *testing.T) {
	l := New(newWorkspace())
	ctx := context.Background()

	testCases := []struct {
		name      string
		library   string
		keyword   string
		suitePath string
		loaded    []string
		wantType  contexts.Context
		wantPath  string
		wantError string
	}{
		{name: "suite keyword", library: "suite", keyword: "My Kw", suitePath: "/ws/suite.robot",
			wantType: &contexts.KeywordOfUser{}, wantPath: "/ws/suite.robot"},
		{name: "imported resource", library: "res", keyword: "res kw", suitePath: "/ws/suite.robot",
			wantType: &contexts.KeywordOfUser{}, wantPath: "/ws/res.robot"},
		{name: "dynamically loaded resource with embedded argument", keyword: "dyn thing", suitePath: "/ws/suite.robot",
			loaded: []string{"/ws/dyn.robot"}, wantType: &contexts.KeywordOfUser{}, wantPath: "/ws/dyn.robot"},
		{name: "ambiguous", keyword: "dup", suitePath: "/ws/suite.robot", wantType: &contexts.Unknown{},
			wantError: "Unable to find keyword 'dup': it is defined in /ws/res.robot, /ws/res2.robot\n"},
		{name: "library keyword", library: "BuiltIn", keyword: "Log", suitePath: "/ws/suite.robot",
			wantType: &contexts.KeywordFromLibrary{}},
		{name: "no suite", library: "BuiltIn", keyword: "Log", wantType: &contexts.Unknown{},
			wantError: "Unable to find keyword 'BuiltIn.Log'\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found := l.FindContextForKeyword(ctx, tc.library, tc.keyword, tc.suitePath, tc.loaded)

			require.IsType(t, tc.wantType, found)
			if tc.wantPath != "" {
				path, ok := found.AssociatedPath()
				require.True(t, ok)
				assert.Equal(t, tc.wantPath, path)
			}
			msg, _ := found.ErrorMessage()
			assert.Equal(t, tc.wantError, msg)
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Login Test", "Logout", "Other", "Login"}

	assert.Equal(t, []string{"Login", "Login Test"}, Suggest("login", candidates))
	assert.Empty(t, Suggest("zzz", candidates))
	assert.Len(t, Suggest("o", []string{"o1", "o2", "o3", "o4"}), 3)
}
