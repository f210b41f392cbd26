// Package render assembles the fixed store release-note template.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"shortnotes/internal/config"
	"shortnotes/internal/model"
	"shortnotes/internal/simplify"
)

const (
	bullet   = "• "
	ellipsis = "..."
)

// Renderer turns classified commits into store-ready text.
type Renderer struct {
	cfg        config.Config
	simplifier simplify.Simplifier
}

// New prepares a Renderer for cfg.
func New(cfg config.Config) Renderer {
	return Renderer{cfg: cfg, simplifier: simplify.New(cfg.Jargon)}
}

// Render builds the notes. Lengths are counted in runes.
func (r Renderer) Render(note model.ReleaseNote) string {
	if noCommits(note.Commits) {
		return r.Generic(note.Version)
	}

	b := note.Buckets
	lines := []string{r.title(note.Version) + "\n"}

	if entries := b[model.Features]; len(entries) > 0 {
		lines = append(lines, "New:")
		lines = append(lines, r.bullets(entries)...)
	}
	if entries := b[model.Fixes]; len(entries) > 0 {
		lines = append(lines, "\nFixed:")
		lines = append(lines, r.bullets(entries)...)
	}
	if entries := b[model.Improvements]; len(entries) > 0 {
		if len(b[model.Features]) == 0 && len(b[model.Fixes]) == 0 {
			lines = append(lines, "Improvements:")
		} else {
			lines = append(lines, "\nImproved:")
		}
		lines = append(lines, r.bullets(entries)...)
	}

	if len(lines) == 1 {
		return r.Generic(note.Version)
	}

	lines = append(lines, "\n"+r.cfg.FeedbackLine, "\n"+r.cfg.SignoffLine)
	return r.capLength(strings.Join(lines, "\n"))
}

// Generic is the fallback used when nothing user-facing changed.
func (r Renderer) Generic(version string) string {
	return r.capLength(fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s",
		r.title(version), r.cfg.GenericLine, r.cfg.FeedbackLine, r.cfg.SignoffLine))
}

func (r Renderer) title(version string) string {
	return fmt.Sprintf("%s v%s", r.cfg.AppName, version)
}

func (r Renderer) bullets(entries []string) []string {
	if len(entries) > r.cfg.MaxBullets {
		entries = entries[:r.cfg.MaxBullets]
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, bullet+Truncate(r.simplifier.Simplify(e), r.cfg.BulletMaxLength))
	}
	return out
}

// The sign-off is re-appended even when it survived the cut.
func (r Renderer) capLength(text string) string {
	if utf8.RuneCountInString(text) <= r.cfg.MaxLength {
		return text
	}
	suffix := ellipsis + "\n\n" + r.cfg.SignoffLine
	cut := min(r.cfg.TruncateAt, r.cfg.MaxLength-utf8.RuneCountInString(suffix))
	return prefixRunes(text, max(cut, 0)) + suffix
}

// Truncate shortens s to maxLen runes, ending in "..." when it was cut.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return prefixRunes(s, maxLen-len(ellipsis)) + ellipsis
}

func prefixRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func noCommits(commits []string) bool {
	return len(commits) == 0 || (len(commits) == 1 && commits[0] == "")
}
