package label

import (
	"regexp"
	"strings"
)

// Sentinel is the label assigned when no usable name can be produced:
// the labeler refused, failed, timed out, or answered with nothing.
// Sentinel-labeled components stay visibly distinguishable in the
// output; they are never silently merged or dropped.
const Sentinel = "Unknown"

// refusalMarkers are case-insensitive substrings that identify a
// refusal or non-answer from the labeler.
var refusalMarkers = []string{
	"i am unable", "i cannot", "i'm unable", "sorry",
	"i don't", "not possible", "no text", "cannot determine",
	"unable to", "i can't",
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	quotedRe     = regexp.MustCompile(`['"]([^'"]{1,40})['"]`)

	// Verbose lead-ins the vision model wraps answers in.
	prefixRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^the\s+component\s+(name\s+)?is\s+(called\s+)?`),
		regexp.MustCompile(`(?i)^this\s+(is\s+(a|an|the)\s+)?`),
		regexp.MustCompile(`(?i)^it\s+(is\s+(a|an|the)\s+)?`),
		regexp.MustCompile(`(?i)^the\s+name\s+(of\s+this\s+component\s+)?is\s+`),
		regexp.MustCompile(`(?i)^component\s+name:\s*`),
		regexp.MustCompile(`(?i)^name:\s*`),
	}

	trailingPunctRe     = regexp.MustCompile(`[.;,!?]+$`)
	trailingComponentRe = regexp.MustCompile(`(?i)\s+component$`)
)

// maxLabelLen bounds the presentable name length; truncation backs up
// to a word boundary rather than cutting mid-word.
const maxLabelLen = 40

// Sanitize cleans a labeler's free-form answer into a short presentable
// component name.
//
// Steps, in order, each operating on the previous step's output:
//
//  1. Collapse all whitespace to single spaces and trim.
//  2. Refusal markers ("i am unable", "sorry", ...) short-circuit to
//     the "Unknown" sentinel.
//  3. A quoted substring, if present, becomes the candidate name.
//  4. Known verbose lead-ins ("the component name is called ...",
//     "this is a ...", "name: ...") are stripped from the start.
//  5. Trailing punctuation and a trailing literal "component" suffix
//     are stripped.
//  6. The name is cut to its first 3 whitespace-delimited words.
//  7. The name is cut to 40 characters at a word boundary.
//
// The result is never empty: anything that reduces to an empty string
// falls back to the sentinel.
func Sanitize(raw string) string {
	text := strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
	if text == "" {
		return Sentinel
	}

	lower := strings.ToLower(text)
	for _, marker := range refusalMarkers {
		if strings.Contains(lower, marker) {
			return Sentinel
		}
	}

	if m := quotedRe.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	for _, re := range prefixRes {
		text = strings.TrimSpace(re.ReplaceAllString(text, ""))
	}

	text = strings.TrimSpace(trailingPunctRe.ReplaceAllString(text, ""))
	text = strings.TrimSpace(trailingComponentRe.ReplaceAllString(text, ""))

	if words := strings.Fields(text); len(words) > 3 {
		text = strings.Join(words[:3], " ")
	}

	if len(text) > maxLabelLen {
		text = text[:maxLabelLen]
		if idx := strings.LastIndex(text, " "); idx > 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if text == "" {
		return Sentinel
	}
	return text
}

// IsSentinel reports whether a label is exempt from exact-match
// deduplication: the "Unknown"/"Unlabeled" sentinels, any component_*
// placeholder, or an empty label.
func IsSentinel(label string) bool {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return true
	}
	if lower == "unknown" || lower == "unlabeled" {
		return true
	}
	return strings.HasPrefix(lower, "component_")
}
