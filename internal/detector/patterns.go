package detector

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/weykon/agent-hand/internal/logging"
)

var patternLog = logging.ForComponent(logging.CompDetector)

// ExtraRules holds user-supplied extension patterns from KeyConfig's
// status_detection section, before compilation. *Contains entries are
// matched with strings.Contains; *Regex entries compile as regex, with an
// optional leading "re:" stripped first.
type ExtraRules struct {
	BusyContains   []string
	BusyRegex      []string
	PromptContains []string
	PromptRegex    []string
}

// compiledRules is the ready-to-evaluate form of ExtraRules.
type compiledRules struct {
	busyStrings   []string
	busyRegexps   []*regexp.Regexp
	promptStrings []string
	promptRegexps []*regexp.Regexp
}

// CompileRules compiles the regex lists of raw extension patterns (after
// stripping any "re:" prefix) and copies the contains lists as-is.
// Malformed regex is logged and skipped, never fatal.
func CompileRules(raw *ExtraRules) *compiledRules {
	c := &compiledRules{}
	if raw == nil {
		return c
	}

	c.busyStrings, c.busyRegexps = splitAndCompile(raw.BusyContains, raw.BusyRegex, "busy")
	c.promptStrings, c.promptRegexps = splitAndCompile(raw.PromptContains, raw.PromptRegex, "prompt")
	return c
}

func splitAndCompile(contains, regexes []string, label string) ([]string, []*regexp.Regexp) {
	strs := append([]string(nil), contains...)
	var res []*regexp.Regexp
	for _, pattern := range regexes {
		pattern = strings.TrimPrefix(pattern, "re:")
		re, err := regexp.Compile(pattern)
		if err != nil {
			patternLog.Warn("invalid_"+label+"_regex",
				slog.String("pattern", pattern), slog.String("error", err.Error()))
			continue
		}
		res = append(res, re)
	}
	return strs, res
}

func (c *compiledRules) matchesBusy(strippedText string) bool {
	for _, s := range c.busyStrings {
		if strings.Contains(strippedText, s) {
			return true
		}
	}
	for _, re := range c.busyRegexps {
		if re.MatchString(strippedText) {
			return true
		}
	}
	return false
}

func (c *compiledRules) matchesPrompt(strippedText string) bool {
	for _, s := range c.promptStrings {
		if strings.Contains(strippedText, s) {
			return true
		}
	}
	for _, re := range c.promptRegexps {
		if re.MatchString(strippedText) {
			return true
		}
	}
	return false
}
