package llm

import (
	"context"
	"log/slog"
	"strings"
)

// Fallback strings surfaced instead of errors. Callers of Service never see
// a failure: a broken or missing model only degrades the generated text.
const (
	FallbackSummaryEmpty  = "Sem resumo disponível."
	FallbackSummaryError  = "Erro ao processar resumo."
	FallbackAnalysisEmpty = "Análise indisponível."
	FallbackAnalysisError = "Erro na análise."
)

// Service wraps a Client and absorbs every failure mode. Each call is
// attempted exactly once; there is no retry and no caller-side timeout.
type Service struct {
	client Client
}

// NewService builds a Service. A nil client is allowed and yields the
// "unavailable" fallbacks, so the server can run without an API key.
func NewService(client Client) *Service {
	return &Service{client: client}
}

func (s *Service) Summarize(ctx context.Context, content string) string {
	if s.client == nil {
		return FallbackSummaryEmpty
	}

	text, err := s.client.Summarize(ctx, content)
	if err != nil {
		slog.Error("error generating summary", "error", err)
		return FallbackSummaryError
	}

	if strings.TrimSpace(text) == "" {
		return FallbackSummaryEmpty
	}
	return strings.TrimSpace(text)
}

func (s *Service) AnalyzeReport(ctx context.Context, description string) string {
	if s.client == nil {
		return FallbackAnalysisEmpty
	}

	text, err := s.client.AnalyzeReport(ctx, description)
	if err != nil {
		slog.Error("error analyzing report", "error", err)
		return FallbackAnalysisError
	}

	if strings.TrimSpace(text) == "" {
		return FallbackAnalysisEmpty
	}
	return strings.TrimSpace(text)
}
