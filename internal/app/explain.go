package app

import (
	"context"
	"log"

	"shortnotes/internal/classify"
	"shortnotes/internal/config"
	"shortnotes/internal/gitlog"
	"shortnotes/internal/model"
	"shortnotes/internal/simplify"
)

// Decision records how one commit subject was handled.
type Decision struct {
	Subject  string
	Category model.Category
	Skipped  bool
	Text     string
}

// Explain classifies every commit in the release range without rendering.
func Explain(ctx context.Context, cfg config.Config, src gitlog.Source, logger *log.Logger) []Decision {
	commits, err := src.Subjects(ctx, releaseRange(ctx, src, logger))
	if err != nil {
		logger.Printf("warning: %v", err)
		return nil
	}

	c := classify.New(cfg)
	s := simplify.New(cfg.Jargon)
	decisions := make([]Decision, 0, len(commits))
	for _, subject := range commits {
		category, kept := c.Category(subject)
		d := Decision{Subject: subject, Category: category, Skipped: !kept}
		if kept {
			d.Text = s.Simplify(subject)
		}
		decisions = append(decisions, d)
	}
	return decisions
}
