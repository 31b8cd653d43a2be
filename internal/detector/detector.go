// Package detector implements the state-classification pipeline (C4): a
// pure function over a captured terminal screen that decides whether an
// agent is Busy, Waiting on a blocking prompt, or neither.
package detector

import "strings"

// Classification is the outcome of Classify.
type Classification int

const (
	None Classification = iota
	Busy
	Waiting
)

func (c Classification) String() string {
	switch c {
	case Busy:
		return "busy"
	case Waiting:
		return "waiting"
	default:
		return "none"
	}
}

const recentLineCount = 15

var brailleSpinnerRunes = []rune{
	'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏',
}

const progressDotRune = '⬝' // ⬝, OpenCode/Copilot progress glyph

var busyPhrases = []string{
	"esc to interrupt",
	"(esc to interrupt)",
	"esc to cancel",
	"(esc to cancel)",
}

// waitingPhrases are exhaustive, lower-cased blocking confirmation prompts.
var waitingPhrases = []string{
	"no, and tell claude what to do differently",
	"yes, allow once",
	"yes, allow always",
	"allow once",
	"allow always",
	"do you want to create",
	"do you want to run this command",
	"do you trust the files in this folder",
	"run this command?",
	"execute this?",
	"confirm with number keys",
	"continue?",
	"proceed?",
	"(y/n)",
	"[y/n]",
	"(yes/no)",
	"[yes/no]",
	"approve this plan?",
	"execute plan?",
	"enter to continue",
	"enter to select",
	"enter to confirm",
	"press enter to confirm",
	"press enter to confirm or esc to cancel",
}

var selectionArrows = []string{
	"❯ yes",
	"❯ no",
	"❯ allow",
	"❯ 1.",
	"❯ 2.",
	"❯ 3.",
}

var boxDrawingPrompts = []string{
	"│ do you want",
	"│ would you like",
	"│ allow",
}

// Classify strips ANSI escapes, takes the last 15 non-empty lines, and
// applies the Busy-then-Waiting priority rules from §4.4. extra carries
// user-supplied status_detection overrides from KeyConfig; pass nil for
// the built-in rules only.
func Classify(screen string, extra *ExtraRules) Classification {
	stripped := StripANSI(screen)
	recent := strings.Join(lastNonEmptyLines(stripped, recentLineCount), "\n")
	lower := strings.ToLower(recent)
	rules := CompileRules(extra)

	if isBusy(recent, lower, rules) {
		return Busy
	}
	if isWaiting(lower, rules) {
		return Waiting
	}
	return None
}

func isBusy(recentStripped, lower string, rules *compiledRules) bool {
	for _, phrase := range busyPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	if lastThreeLinesContainBraille(recentStripped) {
		return true
	}

	if strings.Count(recentStripped, string(progressDotRune)) >= 3 {
		return true
	}

	if strings.Contains(lower, "thinking") && strings.Contains(lower, "tokens") {
		return true
	}
	if strings.Contains(lower, "connecting") && strings.Contains(lower, "tokens") {
		return true
	}

	if strings.Contains(lower, "ctrl+c to interrupt") {
		if strings.Contains(lower, "thinking") || strings.Contains(lower, "connecting") || strings.Contains(lower, "tokens") {
			return true
		}
	}

	return rules.matchesBusy(recentStripped)
}

func isWaiting(lower string, rules *compiledRules) bool {
	for _, phrase := range waitingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, arrow := range selectionArrows {
		if strings.Contains(lower, arrow) {
			return true
		}
	}
	for _, box := range boxDrawingPrompts {
		if strings.Contains(lower, box) {
			return true
		}
	}
	return rules.matchesPrompt(lower)
}

func lastThreeLinesContainBraille(recentStripped string) bool {
	lines := lastNonEmptyLines(recentStripped, 3)
	for _, line := range lines {
		for _, r := range line {
			for _, spinner := range brailleSpinnerRunes {
				if r == spinner {
					return true
				}
			}
		}
	}
	return false
}
