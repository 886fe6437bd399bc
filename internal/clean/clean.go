package clean

import (
	"regexp"
	"strings"
	"unicode"
)

// Aozora Bunko text files carry inline ruby (reading) annotations in
// double angle brackets and editorial/typesetting notes in full-width
// brackets opened with ＃. Neither belongs in a prose corpus.
var (
	rubyPattern = regexp.MustCompile(`《[^》]+》`)
	notePattern = regexp.MustCompile(`［＃[^］]+］`)
)

// rubyDelimiter marks where the base text of a ruby annotation begins.
// Once the annotations themselves are gone it is pure noise.
const rubyDelimiter = "｜"

// headerRule is the horizontal rule Aozora uses to fence off the front
// matter: a row of 55 hyphens. The body begins after the second rule.
// Matched by substring, so longer rules are accepted too.
const headerRule = "-------------------------------------------------------"

// Colophon markers open the source-edition attribution block at the end
// of a work. Everything from the first such line onward is footer.
const (
	colophonMarker       = "底本："
	colophonParentMarker = "底本の親本："
)

// Clean strips Aozora Bunko markup and boilerplate from a decoded text:
// ruby annotations, editorial notes, the ruby delimiter glyph, the
// rule-fenced header, and the colophon footer. Blank lines are dropped
// and every retained line is right-trimmed. Clean is pure and never
// fails; the result is empty when everything was stripped.
func Clean(text string) string {
	text = rubyPattern.ReplaceAllString(text, "")
	text = notePattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, rubyDelimiter, "")

	lines := strings.Split(text, "\n")
	start := bodyStart(lines)
	end := bodyEnd(lines, start)

	kept := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

// bodyStart returns the index of the first body line. When fewer than
// two header rules exist anywhere, the structural marker is missing and
// the whole text is treated as body rather than guessing a boundary.
func bodyStart(lines []string) int {
	rules := 0
	for i, line := range lines {
		if strings.Contains(line, headerRule) {
			rules++
			if rules == 2 {
				return i + 1
			}
		}
	}
	return 0
}

// bodyEnd scans forward from start for the first colophon line. The scan
// starts fresh at start and inspects each line itself; no state is
// carried over from the header scan. Absent a colophon the body runs to
// the end of the text.
func bodyEnd(lines []string, start int) int {
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], colophonMarker) || strings.HasPrefix(lines[i], colophonParentMarker) {
			return i
		}
	}
	return len(lines)
}
