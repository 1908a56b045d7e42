package model

const (
	StatusPending     = "Pendente"
	StatusUnderReview = "Em Análise"
	StatusResolved    = "Resolvido"
)

// Report is a citizen-submitted incident record, independent of the news
// collection. New reports always start as StatusPending.
type Report struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}
