// Package classify sorts commit subjects into release-note categories by keyword.
package classify

import (
	"strings"

	"shortnotes/internal/config"
	"shortnotes/internal/model"
)

type group struct {
	category model.Category
	keywords []string
}

// Classifier matches lower-cased subjects against keyword groups in precedence order.
type Classifier struct {
	skip   []string
	groups []group
}

// New builds a Classifier from the configured skip phrases and keyword groups.
func New(cfg config.Config) Classifier {
	return Classifier{
		skip: lowerAll(cfg.SkipPhrases),
		groups: []group{
			{category: model.Features, keywords: lowerAll(cfg.Keywords.Features)},
			{category: model.Fixes, keywords: lowerAll(cfg.Keywords.Fixes)},
			{category: model.Improvements, keywords: lowerAll(cfg.Keywords.Improvements)},
		},
	}
}

// Classify buckets subjects, dropping automated commits. Original casing is kept.
func (c Classifier) Classify(subjects []string) model.Buckets {
	buckets := model.Buckets{}
	for _, subject := range subjects {
		lower := strings.ToLower(subject)
		if containsAny(lower, c.skip) {
			continue
		}
		buckets.Add(c.categoryOf(lower), subject)
	}
	return buckets
}

// Category returns the category for a single subject and whether it would be kept at all.
func (c Classifier) Category(subject string) (model.Category, bool) {
	lower := strings.ToLower(subject)
	if containsAny(lower, c.skip) {
		return model.Other, false
	}
	return c.categoryOf(lower), true
}

func (c Classifier) categoryOf(lower string) model.Category {
	for _, g := range c.groups {
		if containsAny(lower, g.keywords) {
			return g.category
		}
	}
	return model.Other
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
