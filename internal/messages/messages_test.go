package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/framectx/internal/runevent"
)

var kw = runevent.New("lib", "kw", runevent.Call)

func TestSettingLabel(t *testing.T) {
	assert.Equal(t, "Suite Setup", SettingLabel(runevent.Setup, SuiteScope))
	assert.Equal(t, "Test Teardown", SettingLabel(runevent.Teardown, TestScope))
	assert.Equal(t, "Keyword Teardown", SettingLabel(runevent.Teardown, KeywordScope))
	assert.Equal(t, "", SettingLabel(runevent.Call, TestScope))
}

func TestCallMessages(t *testing.T) {
	assert.Equal(t, "Unable to find executable call of 'lib.kw' keyword\n", CallNotFound(kw))
	assert.Equal(t, "Unable to find executable call of 'lib.kw' keyword\n:FOR loop was found instead\n", LoopFoundInstead(kw))
	assert.Equal(t, "Unable to find executable call of 'lib.kw' keyword\nAn executable was found but seem to call non-matching keyword 'log'\n",
		NonMatchingCall(kw, "log"))
	assert.Equal(t, "Unable to find :FOR loop\nAn executable was found calling 'log' keyword\n", LoopNotFound("log"))
	assert.Equal(t, "Unable to find matching :FOR loop\n':FOR ${x} IN [ 1 | 2 | 3 ]' was found but ':FOR ${y} IN [ 1 | 2 | 3 | 4 ]' is being executed\n",
		NonMatchingLoop("${x} IN [ 1 | 2 | 3 ]", "${y} IN [ 1 | 2 | 3 | 4 ]"))
}

func TestSettingMessages(t *testing.T) {
	assert.Equal(t, "Unable to find Test Teardown call of 'lib.kw' keyword\n", SetupTeardownNotFound("Test Teardown", kw))
	assert.Equal(t, "Suite Setup setting could not be found in this suite\n", SettingMissing("Suite Setup"))
	assert.Equal(t, "Keyword Teardown setting was found but seem to call non-matching keyword 'other'\n",
		SettingNonMatching("Keyword Teardown", "other"))
}

func TestLocationMessages(t *testing.T) {
	assert.Contains(t, MissingInitFile("suite", ""), "located in workspace at <unknown> but")
	assert.Contains(t, MissingInitFile("suite", "/ws/suite"), "The suite 'suite' is located in workspace at /ws/suite but")
	assert.Equal(t, "Unable to find test 't' in suite file '/s.robot'\n", TestNotFound("t", "/s.robot"))
	assert.Equal(t, "Did you mean: a, b\n", DidYouMean([]string{"a", "b"}))
	assert.Empty(t, DidYouMean(nil))
}

func TestLoopIterationMessages(t *testing.T) {
	assert.Equal(t, "No loop found for iteration of '${x} = 1'\n", NoLoopForIteration("${x} = 1"))
	assert.Equal(t, "The loop is iterating with [${y}, ${x}] variables but [${x}, ${y}] were expected\n",
		IterationVariablesMismatch([]string{"${y}", "${x}"}, []string{"${x}", "${y}"}))
}

func TestKeywordMessages(t *testing.T) {
	assert.Equal(t, "Unable to find keyword 'lib.kw'\n", KeywordNotFound("lib.kw"))
	assert.Equal(t, "Unable to find keyword 'kw': it is defined in /a.robot, /b.robot\n",
		KeywordAmbiguous("kw", []string{"/a.robot", "/b.robot"}))
	assert.Equal(t, "Unable to find test 't' because its suite is not known\n", TestSuiteUnknown("t"))
}
