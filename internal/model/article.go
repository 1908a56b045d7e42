package model

// CategoryAll is the identity filter label, not a real category.
const CategoryAll = "Tudo"

// Categories is the closed set of article categories. There are no dynamic
// categories; anything outside this list is rejected at the boundary.
var Categories = []string{"Geral", "Política", "Economia", "Esportes", "Cultura", "Segurança"}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// NewsArticle is immutable after creation: it is published by the author,
// read by everyone, and only ever removed as a whole.
type NewsArticle struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Author     string `json:"author"`
	Date       string `json:"date"`
	ImageURL   string `json:"imageUrl"`
	IsBreaking bool   `json:"isBreaking,omitempty"`
}
