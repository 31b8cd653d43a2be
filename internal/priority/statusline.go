package priority

import (
	"strconv"
	"strings"
)

const maxTitleRunes = 24

// FormatStatusLine builds the compact "AH ..." string per §4.6. title is
// the jump target's title (empty if none); targetIsWaiting selects the "!"
// vs "✓" prefix; upgradeHint is appended verbatim if non-empty.
func FormatStatusLine(c Counters, title string, targetIsWaiting bool, hasTarget bool, upgradeHint string) string {
	var b strings.Builder
	b.WriteString("AH")

	if hasTarget && title != "" {
		b.WriteByte(' ')
		if targetIsWaiting {
			b.WriteString("!")
		} else {
			b.WriteString("✓")
		}
		b.WriteString(truncateTitle(title))
	}

	b.WriteByte(' ')
	b.WriteString("!")
	b.WriteString(strconv.Itoa(c.Waiting))
	b.WriteString(" ✓")
	b.WriteString(strconv.Itoa(c.Ready))
	b.WriteString(" ●")
	b.WriteString(strconv.Itoa(c.Running))
	b.WriteString(" ○")
	b.WriteString(strconv.Itoa(c.Idle))

	if c.Error > 0 {
		b.WriteString(" ✕")
		b.WriteString(strconv.Itoa(c.Error))
	}

	b.WriteString(" ^N")

	if upgradeHint != "" {
		b.WriteByte(' ')
		b.WriteString(upgradeHint)
	}

	return b.String()
}

// truncateTitle caps title at maxTitleRunes, replacing overflow with a
// single-character ellipsis. Counts runes, not bytes.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleRunes {
		return title
	}
	return string(runes[:maxTitleRunes-1]) + "…"
}

