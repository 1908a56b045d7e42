package handler

import "tribuna/internal/model"

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	// Collected to match the login form, never verified: the role is a pure
	// function of the email.
	Password string `json:"password"`
}

type CreateArticleRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Category   string `json:"category" binding:"required"`
	IsBreaking bool   `json:"isBreaking"`
}

type CreateReportRequest struct {
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type ViewRequest struct {
	View string `json:"view" binding:"required"`
}

type ArticleResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Author     string `json:"author"`
	Date       string `json:"date"`
	ImageURL   string `json:"imageUrl"`
	IsBreaking bool   `json:"isBreaking"`
}

type NewsResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Category string            `json:"category"`
	Total    int               `json:"total"`
}

type ReportResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

type ReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}

type AnalysisResponse struct {
	ID       string `json:"id"`
	Analysis string `json:"analysis"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toArticleResponse(a model.NewsArticle) ArticleResponse {
	return ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Summary:    a.Summary,
		Content:    a.Content,
		Category:   a.Category,
		Author:     a.Author,
		Date:       a.Date,
		ImageURL:   a.ImageURL,
		IsBreaking: a.IsBreaking,
	}
}

func toReportResponse(r model.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Date:        r.Date,
		Status:      r.Status,
	}
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
