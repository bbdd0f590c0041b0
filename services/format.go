package services

import (
	"fmt"
	"regexp"
	"strings"
)

// Formatting pipeline for raw AI answers. The model returns markdown-ish
// text; the UI wants a ready-to-insert HTML fragment styled with Bootstrap.

var (
	// Headings level 1-3 map to h3-h5. Most specific marker first so "##"
	// never eats the prefix of a "###" line.
	headingRules = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?m)^###\s+(.+)$`), "<h5>$1</h5>"},
		{regexp.MustCompile(`(?m)^##\s+(.+)$`), "<h4>$1</h4>"},
		{regexp.MustCompile(`(?m)^#\s+(.+)$`), "<h3>$1</h3>"},
	}

	boldRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	bulletRe    = regexp.MustCompile(`^[-•]\s`)
	numberedRe  = regexp.MustCompile(`^\d+\.\s`)
)

// iconReplacements maps the pictographs models like to emit onto Bootstrap
// Icons. Order is fixed so output is deterministic.
var iconReplacements = []struct {
	emoji string
	icon  string
}{
	// Weather
	{"🌤️", "sun"},
	{"☀️", "sun-fill"},
	{"🌧️", "cloud-rain"},
	{"❄️", "snow"},
	// Travel
	{"✈️", "airplane"},
	{"🛫", "airplane-fill"},
	{"🚗", "car-front"},
	{"🏨", "building"},
	// UI
	{"📅", "calendar"},
	{"👉", "arrow-right-circle-fill"},
	{"✅", "check-circle-fill"},
	{"💰", "cash-coin"},
	{"⭐", "star-fill"},
}

// FormatAnswer turns a raw AI answer into a displayable HTML fragment,
// prefixed with the question it answers.
func FormatAnswer(answer, question string) string {
	answer = strings.TrimSpace(answer)

	for _, rule := range headingRules {
		answer = rule.re.ReplaceAllString(answer, rule.repl)
	}

	answer = boldRe.ReplaceAllString(answer, "<strong>$1</strong>")

	var formatted []string
	for _, p := range paragraphRe.Split(answer, -1) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		formatted = append(formatted, formatParagraph(p))
	}
	answer = strings.Join(formatted, "\n")

	answer = replaceIcons(answer)

	return fmt.Sprintf(
		"<div class='ai-question mb-3'><strong>Q: %s</strong></div><div class='ai-answer'>%s</div>",
		question, answer,
	)
}

// formatParagraph wraps one blank-line-separated block. A block whose
// non-empty lines all carry the same list marker becomes a list; a mixed
// block falls through to a plain paragraph.
func formatParagraph(p string) string {
	if strings.HasPrefix(strings.TrimSpace(p), "<") && strings.Contains(p, ">") {
		return p
	}

	lines := strings.Split(p, "\n")

	if allLinesMatch(lines, bulletRe) {
		return buildList("ul", lines, bulletRe)
	}
	if allLinesMatch(lines, numberedRe) {
		return buildList("ol", lines, numberedRe)
	}

	return "<p>" + p + "</p>"
}

func allLinesMatch(lines []string, marker *regexp.Regexp) bool {
	matched := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !marker.MatchString(line) {
			return false
		}
		matched = true
	}
	return matched
}

func buildList(tag string, lines []string, marker *regexp.Regexp) string {
	var items strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items.WriteString("<li>" + marker.ReplaceAllString(line, "") + "</li>")
	}
	return fmt.Sprintf("<%s class='ai-list'>%s</%s>", tag, items.String(), tag)
}

func replaceIcons(s string) string {
	for _, r := range iconReplacements {
		cssClass := ""
		switch r.icon {
		case "check-circle-fill":
			cssClass = " text-success"
		case "star-fill":
			cssClass = " text-warning"
		}
		iconHTML := fmt.Sprintf(`<i class="bi bi-%s%s"></i>`, r.icon, cssClass)
		s = strings.ReplaceAll(s, r.emoji, " "+iconHTML+" ")
	}
	return s
}
