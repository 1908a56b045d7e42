package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"tribuna/internal/app"
	"tribuna/internal/model"
	"tribuna/internal/session"
)

type fakeController struct {
	news     []model.NewsArticle
	breaking *model.NewsArticle
	reports  []model.Report
	selected *model.NewsArticle
	analysis string
	category string

	healthErr error

	deletedIDs []string
}

func (f *fakeController) CreateArticle(ctx context.Context, user *model.User, req app.ArticleRequest) (*model.NewsArticle, error) {
	if user == nil || user.Role != model.RoleAuthor {
		return nil, app.ErrNotAuthorized
	}
	article := model.NewsArticle{
		ID:         "100",
		Title:      req.Title,
		Summary:    "Resumo gerado.",
		Content:    req.Content,
		Category:   req.Category,
		Author:     user.Name,
		IsBreaking: req.IsBreaking,
	}
	return &article, nil
}

func (f *fakeController) DeleteArticle(ctx context.Context, user *model.User, id string) error {
	if user == nil || user.Role != model.RoleAuthor {
		return app.ErrNotAuthorized
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeController) CreateReport(ctx context.Context, req app.ReportRequest) (*model.Report, error) {
	report := model.Report{
		ID:          "200",
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Status:      model.StatusPending,
	}
	return &report, nil
}

func (f *fakeController) AnalyzeReport(ctx context.Context, user *model.User, id string) (string, error) {
	if user == nil || user.Role != model.RoleAuthor {
		return "", app.ErrNotAuthorized
	}
	for _, r := range f.reports {
		if r.ID == id {
			return f.analysis, nil
		}
	}
	return "", app.ErrNotFound
}

func (f *fakeController) Login(email string) model.User {
	if strings.EqualFold(email, app.AuthorEmail) {
		return model.User{ID: "admin-01", Name: app.AuthorName, Email: email, Role: model.RoleAuthor}
	}
	return model.User{ID: "visitor-1", Name: "Leitor", Email: email, Role: model.RoleVisitor}
}

func (f *fakeController) Logout() {}

func (f *fakeController) SetActiveCategory(category string) bool {
	if category != model.CategoryAll && !model.ValidCategory(category) {
		return false
	}
	f.category = category
	return true
}

func (f *fakeController) SetActiveView(view string) bool {
	switch view {
	case app.ViewHome, app.ViewAdmin, app.ViewDenuncias, app.ViewDetail:
		return true
	}
	return false
}

func (f *fakeController) SelectArticle(id string) (*model.NewsArticle, bool) {
	if f.selected != nil && f.selected.ID == id {
		return f.selected, true
	}
	return nil, false
}

func (f *fakeController) FilteredNews() []model.NewsArticle { return f.news }

func (f *fakeController) BreakingNews() *model.NewsArticle { return f.breaking }

func (f *fakeController) Reports() []model.Report { return f.reports }

func (f *fakeController) ActiveCategory() string {
	if f.category == "" {
		return model.CategoryAll
	}
	return f.category
}

func (f *fakeController) Health(ctx context.Context) error { return f.healthErr }

func newTestRouter(ctrl Controller) (*gin.Engine, *session.Registry) {
	gin.SetMode(gin.TestMode)
	registry := session.NewRegistry()
	h := NewHandler(ctrl, registry)
	r := gin.New()
	r.Use(Sessions(registry))
	h.Register(r)
	return r, registry
}

func authorToken(registry *session.Registry) string {
	return registry.Issue(model.User{ID: "admin-01", Name: app.AuthorName, Role: model.RoleAuthor})
}

func visitorToken(registry *session.Registry) string {
	return registry.Issue(model.User{ID: "visitor-1", Name: "Leitor", Role: model.RoleVisitor})
}

func TestLogin_AuthorEmailGetsAuthorRole(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	body := `{"email":"` + app.AuthorEmail + `","password":"qualquer"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res LoginResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, model.RoleAuthor, res.User.Role)
	assert.NotEqual(t, "", res.Token)
}

func TestLogin_OtherEmailGetsVisitorRole(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	body := `{"email":"leitor@example.com","password":"qualquer"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res LoginResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, model.RoleVisitor, res.User.Role)
}

func TestLogin_MissingEmail(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNews_ReturnsArticles(t *testing.T) {
	ctrl := &fakeController{
		news: []model.NewsArticle{
			{ID: "1", Title: "Nova praça", Category: "Geral"},
			{ID: "2", Title: "Campeonato", Category: "Esportes"},
		},
	}
	r, _ := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "Nova praça", res.Articles[0].Title)
	assert.Equal(t, model.CategoryAll, res.Category)
}

func TestGetNews_UnknownCategory(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?category=Inexistente", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBreakingNews(t *testing.T) {
	ctrl := &fakeController{
		breaking: &model.NewsArticle{ID: "1", Title: "Urgente", IsBreaking: true},
	}
	r, _ := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/breaking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Urgente", res.Title)
}

func TestGetBreakingNews_None(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/breaking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArticle(t *testing.T) {
	ctrl := &fakeController{
		selected: &model.NewsArticle{ID: "3", Title: "Festival"},
	}
	r, _ := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Festival", res.Title)
}

func TestGetArticle_NotFound(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateArticle_Anonymous(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	body := `{"title":"Título","content":"Conteúdo","category":"Geral"}`
	req := httptest.NewRequest("POST", "/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateArticle_Visitor(t *testing.T) {
	r, registry := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	body := `{"title":"Título","content":"Conteúdo","category":"Geral"}`
	req := httptest.NewRequest("POST", "/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+visitorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateArticle_Author(t *testing.T) {
	r, registry := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	body := `{"title":"Título","content":"Conteúdo","category":"Geral","isBreaking":true}`
	req := httptest.NewRequest("POST", "/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var res ArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Título", res.Title)
	assert.Equal(t, app.AuthorName, res.Author)
	assert.Equal(t, true, res.IsBreaking)
}

func TestCreateArticle_UnknownCategory(t *testing.T) {
	r, registry := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	body := `{"title":"Título","content":"Conteúdo","category":"Fofocas"}`
	req := httptest.NewRequest("POST", "/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateArticle_MissingFields(t *testing.T) {
	r, registry := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/news", strings.NewReader(`{"title":"Só título"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteArticle_Author(t *testing.T) {
	ctrl := &fakeController{}
	r, registry := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/news/1", nil)
	req.Header.Set("Authorization", "Bearer "+authorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"1"}, ctrl.deletedIDs)
}

func TestDeleteArticle_Visitor(t *testing.T) {
	ctrl := &fakeController{}
	r, registry := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/news/1", nil)
	req.Header.Set("Authorization", "Bearer "+visitorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, len(ctrl.deletedIDs))
}

func TestCreateReport_NoAuthRequired(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	body := `{"title":"Buraco na rua","location":"Centro","description":"Buraco grande"}`
	req := httptest.NewRequest("POST", "/reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var res ReportResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, "Buraco na rua", res.Title)
}

func TestCreateReport_MissingFields(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports", strings.NewReader(`{"title":"Sem local"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReports(t *testing.T) {
	ctrl := &fakeController{
		reports: []model.Report{
			{ID: "1", Title: "Poste apagado", Status: model.StatusPending},
		},
	}
	r, _ := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ReportsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Poste apagado", res.Reports[0].Title)
}

func TestAnalyzeReport_Author(t *testing.T) {
	ctrl := &fakeController{
		reports:  []model.Report{{ID: "1", Description: "Fio caído"}},
		analysis: "Urgência Alta: risco imediato.",
	}
	r, registry := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/1/analysis", nil)
	req.Header.Set("Authorization", "Bearer "+authorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res AnalysisResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Urgência Alta: risco imediato.", res.Analysis)
}

func TestAnalyzeReport_Anonymous(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/1/analysis", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAnalyzeReport_NotFound(t *testing.T) {
	r, registry := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/999/analysis", nil)
	req.Header.Set("Authorization", "Bearer "+authorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSession(t *testing.T) {
	r, registry := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/session", nil)
	req.Header.Set("Authorization", "Bearer "+authorToken(registry))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res UserResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, model.RoleAuthor, res.Role)
}

func TestGetSession_Anonymous(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/session", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	r, registry := newTestRouter(&fakeController{})
	token := authorToken(registry)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCategories(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string][]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, model.Categories, res["categories"])
}

func TestSetView(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/view", strings.NewReader(`{"view":"denuncias"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetView_Unknown(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/view", strings.NewReader(`{"view":"configuracoes"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHealth_Healthy(t *testing.T) {
	r, _ := newTestRouter(&fakeController{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r, _ := newTestRouter(&fakeController{healthErr: errors.New("store down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "unhealthy", res["status"])
}
