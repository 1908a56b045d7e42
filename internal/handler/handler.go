package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tribuna/internal/app"
	"tribuna/internal/model"
	"tribuna/internal/session"
)

// Controller defines the operations the handlers require from the
// application state controller.
type Controller interface {
	CreateArticle(ctx context.Context, user *model.User, req app.ArticleRequest) (*model.NewsArticle, error)
	DeleteArticle(ctx context.Context, user *model.User, id string) error
	CreateReport(ctx context.Context, req app.ReportRequest) (*model.Report, error)
	AnalyzeReport(ctx context.Context, user *model.User, id string) (string, error)
	Login(email string) model.User
	Logout()
	SetActiveCategory(category string) bool
	SetActiveView(view string) bool
	SelectArticle(id string) (*model.NewsArticle, bool)
	FilteredNews() []model.NewsArticle
	BreakingNews() *model.NewsArticle
	Reports() []model.Report
	ActiveCategory() string
	Health(ctx context.Context) error
}

type Handler struct {
	controller Controller
	sessions   *session.Registry
}

func NewHandler(controller Controller, sessions *session.Registry) *Handler {
	return &Handler{controller: controller, sessions: sessions}
}

// Register mounts all routes on the given router group.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/health", h.GetHealth)

	r.GET("/news", h.GetNews)
	r.GET("/breaking", h.GetBreakingNews)
	r.GET("/news/:id", h.GetArticle)
	r.POST("/news", h.CreateArticle)
	r.DELETE("/news/:id", h.DeleteArticle)

	r.GET("/reports", h.GetReports)
	r.POST("/reports", h.CreateReport)
	r.GET("/reports/:id/analysis", h.AnalyzeReport)

	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/session", h.GetSession)

	r.GET("/categories", h.GetCategories)
	r.PUT("/view", h.SetView)
}

func (h *Handler) GetHealth(c *gin.Context) {
	if err := h.controller.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"store":  "connected",
	})
}

// GetNews lists the news feed. A category query switches the active filter
// before listing; "Tudo" restores the unfiltered feed.
func (h *Handler) GetNews(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		if !h.controller.SetActiveCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
	}

	articles := h.controller.FilteredNews()
	res := NewsResponse{
		Articles: make([]ArticleResponse, 0, len(articles)),
		Category: h.controller.ActiveCategory(),
		Total:    len(articles),
	}
	for _, a := range articles {
		res.Articles = append(res.Articles, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetBreakingNews(c *gin.Context) {
	article := h.controller.BreakingNews()
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No breaking news"})
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(*article))
}

func (h *Handler) GetArticle(c *gin.Context) {
	article, ok := h.controller.SelectArticle(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(*article))
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article payload"})
		return
	}

	if !model.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	article, err := h.controller.CreateArticle(c.Request.Context(), sessionUser(c), app.ArticleRequest{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		IsBreaking: req.IsBreaking,
	})
	if errors.Is(err, app.ErrNotAuthorized) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Author access required"})
		return
	}
	if err != nil {
		slog.Error("error creating article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create article"})
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(*article))
}

// DeleteArticle removes an article. The DELETE request itself is the
// affirmative confirmation; deleting an unknown id still answers 204.
func (h *Handler) DeleteArticle(c *gin.Context) {
	err := h.controller.DeleteArticle(c.Request.Context(), sessionUser(c), c.Param("id"))
	if errors.Is(err, app.ErrNotAuthorized) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Author access required"})
		return
	}
	if err != nil {
		slog.Error("error deleting article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete article"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetReports(c *gin.Context) {
	reports := h.controller.Reports()
	res := ReportsResponse{
		Reports: make([]ReportResponse, 0, len(reports)),
		Total:   len(reports),
	}
	for _, r := range reports {
		res.Reports = append(res.Reports, toReportResponse(r))
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report payload"})
		return
	}

	report, err := h.controller.CreateReport(c.Request.Context(), app.ReportRequest{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		slog.Error("error creating report", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create report"})
		return
	}

	c.JSON(http.StatusCreated, toReportResponse(*report))
}

func (h *Handler) AnalyzeReport(c *gin.Context) {
	id := c.Param("id")
	analysis, err := h.controller.AnalyzeReport(c.Request.Context(), sessionUser(c), id)
	if errors.Is(err, app.ErrNotAuthorized) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Author access required"})
		return
	}
	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		slog.Error("error analyzing report", "error", err, "report_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not analyze report"})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{ID: id, Analysis: analysis})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login payload"})
		return
	}

	user := h.controller.Login(req.Email)
	token := h.sessions.Issue(user)

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: toUserResponse(user)})
}

func (h *Handler) Logout(c *gin.Context) {
	if token := sessionToken(c); token != "" {
		h.sessions.Revoke(token)
	}
	h.controller.Logout()
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetSession(c *gin.Context) {
	user := sessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}

func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": model.Categories})
}

func (h *Handler) SetView(c *gin.Context) {
	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid view payload"})
		return
	}
	if !h.controller.SetActiveView(req.View) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown view"})
		return
	}
	c.Status(http.StatusNoContent)
}
