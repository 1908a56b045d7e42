package llm

import (
	"context"
	"fmt"
)

const summaryPrompt = "Resuma o seguinte conteúdo de notícia em no máximo duas frases impactantes: %s"

const analysisPrompt = "Analise esta denúncia de um cidadão e classifique sua urgência em Baixa, Média ou Alta, explicando o porquê brevemente: %s"

// Client is a text-generation backend. Implementations return whatever the
// model produced; fallback handling lives in Service, not here.
type Client interface {
	Summarize(ctx context.Context, content string) (string, error)
	AnalyzeReport(ctx context.Context, description string) (string, error)
}

func summaryUserPrompt(content string) string {
	return fmt.Sprintf(summaryPrompt, content)
}

func analysisUserPrompt(description string) string {
	return fmt.Sprintf(analysisPrompt, description)
}
