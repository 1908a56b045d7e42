package model

// SeedNews returns the articles installed on first run, when no news
// collection has ever been persisted. Reports have no seed: an absent
// reports slot always initializes to an empty collection.
func SeedNews() []NewsArticle {
	return []NewsArticle{
		{
			ID:         "1",
			Title:      "Nova praça será inaugurada no centro de Almas",
			Summary:    "A prefeitura confirmou a entrega da revitalização da Praça da Matriz para o próximo sábado.",
			Content:    "A obra, que durou seis meses, incluiu nova iluminação LED, bancos de madeira tratada e um parquinho moderno para as crianças. O prefeito ressaltou que este é um passo importante para o lazer da população local...",
			Category:   "Geral",
			Author:     "Redação Tribuna",
			Date:       "2024-05-20",
			ImageURL:   "https://picsum.photos/seed/square/800/400",
			IsBreaking: true,
		},
		{
			ID:       "2",
			Title:    "Time local vence campeonato regional de futsal",
			Summary:  "Em uma partida emocionante decidida nos pênaltis, o Almas FC conquistou o título inédito.",
			Content:  "O ginásio municipal estava lotado. Com uma atuação brilhante do goleiro, a equipe conseguiu segurar o empate no tempo normal e brilhou nas cobranças alternadas...",
			Category: "Esportes",
			Author:   "Marcos Silva",
			Date:     "2024-05-19",
			ImageURL: "https://picsum.photos/seed/sports/800/400",
		},
		{
			ID:       "3",
			Title:    "Festival de Inverno atrai turistas para a região",
			Summary:  "Gastronomia e música local são os destaques da edição deste ano.",
			Content:  "O Festival de Inverno de Almas começou com recorde de público. Os hotéis da cidade registram 95% de ocupação. Entre as atrações, destacam-se os pratos típicos da culinária quilombola e apresentações de artistas regionais...",
			Category: "Cultura",
			Author:   "Ana Clara",
			Date:     "2024-05-18",
			ImageURL: "https://picsum.photos/seed/culture/800/400",
		},
	}
}
