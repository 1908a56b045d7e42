package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"tribuna/internal/model"
)

// LoadArticles reads and decodes the article collection from the given slot.
// An unreadable store, a never-written slot and an undecodable value all
// report ok=false: the caller treats every one of them as "no prior state".
func LoadArticles(ctx context.Context, s SlotStore, slot string) ([]model.NewsArticle, bool) {
	raw, ok, err := s.Get(ctx, slot)
	if err != nil {
		slog.Error("error reading slot", "slot", slot, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var articles []model.NewsArticle
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		slog.Warn("discarding undecodable slot value", "slot", slot, "error", err)
		return nil, false
	}
	return articles, true
}

// SaveArticles replaces the slot with a snapshot of the whole collection.
func SaveArticles(ctx context.Context, s SlotStore, slot string, articles []model.NewsArticle) error {
	if articles == nil {
		articles = []model.NewsArticle{}
	}
	raw, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return s.Set(ctx, slot, string(raw))
}

func LoadReports(ctx context.Context, s SlotStore, slot string) ([]model.Report, bool) {
	raw, ok, err := s.Get(ctx, slot)
	if err != nil {
		slog.Error("error reading slot", "slot", slot, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var reports []model.Report
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		slog.Warn("discarding undecodable slot value", "slot", slot, "error", err)
		return nil, false
	}
	return reports, true
}

func SaveReports(ctx context.Context, s SlotStore, slot string, reports []model.Report) error {
	if reports == nil {
		reports = []model.Report{}
	}
	raw, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return s.Set(ctx, slot, string(raw))
}
