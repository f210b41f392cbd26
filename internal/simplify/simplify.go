// Package simplify rewrites commit subjects into short user-facing sentences.
package simplify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"shortnotes/internal/config"
)

var (
	prefixRe   = regexp.MustCompile(`(?i)^(feat|feature|fix|bug|improve|update|add|implement|refactor|chore|docs):\s*`)
	issueRefRe = regexp.MustCompile(`\(#\d+\)`)
	tagRe      = regexp.MustCompile(`\[.*?\]`)
)

type substitution struct {
	re *regexp.Regexp
	to string
}

// Simplifier strips commit noise and replaces developer jargon.
type Simplifier struct {
	subs []substitution
}

// New compiles the configured jargon table, keeping its order.
func New(jargon []config.Replacement) Simplifier {
	subs := make([]substitution, 0, len(jargon))
	for _, r := range jargon {
		if r.From == "" {
			continue
		}
		subs = append(subs, substitution{
			re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(r.From) + `\b`),
			to: r.To,
		})
	}
	return Simplifier{subs: subs}
}

// Simplify returns the cleaned sentence. It may be empty.
func (s Simplifier) Simplify(subject string) string {
	text := prefixRe.ReplaceAllString(subject, "")
	text = issueRefRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	text = capitalize(strings.TrimSpace(text))

	for _, sub := range s.subs {
		text = sub.re.ReplaceAllLiteralString(text, sub.to)
	}
	return text
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
