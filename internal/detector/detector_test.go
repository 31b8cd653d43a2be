package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBareShellPromptIsNone(t *testing.T) {
	assert.Equal(t, None, Classify(">", nil))
	assert.Equal(t, None, Classify("> ", nil))
	assert.Equal(t, None, Classify("$ ", nil))
}

func TestClassifyEscToInterruptIsBusy(t *testing.T) {
	assert.Equal(t, Busy, Classify("working...\nesc to interrupt\n", nil))
}

func TestClassifyBrailleSpinnerIsBusy(t *testing.T) {
	assert.Equal(t, Busy, Classify("⠋ doing a thing\n", nil))
}

func TestClassifyProgressDotsNeedThree(t *testing.T) {
	assert.Equal(t, None, Classify("⬝⬝ loading\n", nil))
	assert.Equal(t, Busy, Classify("⬝⬝⬝ loading\n", nil))
}

func TestClassifyThinkingTokensCoOccurrence(t *testing.T) {
	assert.Equal(t, Busy, Classify("Thinking... (1234 tokens)\n", nil))
	assert.Equal(t, None, Classify("Thinking about life\n", nil))
}

func TestClassifyCtrlCFooterRequiresContext(t *testing.T) {
	assert.Equal(t, None, Classify("ctrl+c to interrupt\n", nil))
	assert.Equal(t, Busy, Classify("Thinking (ctrl+c to interrupt)\n", nil))
}

func TestClassifyBusyBeatsWaiting(t *testing.T) {
	screen := "esc to interrupt\ncontinue?\n"
	assert.Equal(t, Busy, Classify(screen, nil))
}

func TestClassifyWaitingPhrases(t *testing.T) {
	assert.Equal(t, Waiting, Classify("Do you want to create this file? (y/n)\n", nil))
	assert.Equal(t, Waiting, Classify("❯ Yes\n  No\n", nil))
	assert.Equal(t, Waiting, Classify("│ Do you want to proceed?\n", nil))
}

func TestClassifyStripsANSIBeforeMatching(t *testing.T) {
	screen := "\x1b[1mesc to interrupt\x1b[0m\n"
	assert.Equal(t, Busy, Classify(screen, nil))
}

func TestClassifyExtraBusyContains(t *testing.T) {
	extra := &ExtraRules{BusyContains: []string{"compiling shaders"}}
	assert.Equal(t, Busy, Classify("compiling shaders\n", extra))
	assert.Equal(t, None, Classify("compiling shaders\n", nil))
}

func TestClassifyExtraPromptRegex(t *testing.T) {
	extra := &ExtraRules{PromptRegex: []string{`re:overwrite \d+ files\?`}}
	assert.Equal(t, Waiting, Classify("overwrite 12 files?\n", extra))
}

func TestClassifyMalformedExtraRegexSkipped(t *testing.T) {
	extra := &ExtraRules{BusyRegex: []string{"re:(unterminated"}}
	assert.Equal(t, None, Classify("hello\n", extra))
}

func TestClassifyOnlyLastFifteenLinesMatter(t *testing.T) {
	var screen string
	for i := 0; i < 20; i++ {
		screen += "esc to interrupt\n"
	}
	// Old busy line is now outside the recent window once pushed out by
	// 15 unrelated lines; only the final state should matter.
	for i := 0; i < 15; i++ {
		screen += "just chatting\n"
	}
	assert.Equal(t, None, Classify(screen, nil))
}
