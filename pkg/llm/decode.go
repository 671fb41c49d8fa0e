package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/msgdesk/pkg/apperrors"
)

var (
	fenceMarker   = regexp.MustCompile("```[A-Za-z0-9_-]*[ \t]*\r?\n?")
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// Sanitize removes markdown code fences (with an optional language tag) and
// commas that directly precede a closing brace or bracket.
func Sanitize(raw string) string {
	cleaned := fenceMarker.ReplaceAllString(raw, "")
	cleaned = trailingComma.ReplaceAllString(cleaned, "$1")
	return strings.TrimSpace(cleaned)
}

// Decode sanitizes raw and unmarshals it into out. A reply that still does
// not parse yields a KindParse error; callers substitute their own default.
func Decode(raw string, out any) error {
	cleaned := Sanitize(raw)
	if cleaned == "" {
		return apperrors.New(apperrors.KindParse, "empty model reply")
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return apperrors.Parse(err).WithContext("reply", cleaned)
	}
	return nil
}
