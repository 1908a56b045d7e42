package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"tribuna/internal/model"
	"tribuna/internal/store"
	"tribuna/pkg/llm"
)

// AuthorEmail is the only login that yields the author role. There is no
// other privilege path; the password collected at login is never checked.
const (
	AuthorEmail = "jornalistarinaldodanobrega@gmail.com"
	AuthorName  = "Rinaldo Nóbrega"

	authorID    = "admin-01"
	visitorName = "Leitor"
)

const (
	ViewHome      = "home"
	ViewAdmin     = "admin"
	ViewDenuncias = "denuncias"
	ViewDetail    = "detail"
)

var (
	// ErrNotAuthorized means an author-only operation was invoked without
	// the author role. No state was touched and nothing was persisted.
	ErrNotAuthorized = errors.New("author role required")

	ErrNotFound = errors.New("not found")
)

// ArticleRequest is the validated form payload for publishing an article.
type ArticleRequest struct {
	Title      string
	Content    string
	Category   string
	IsBreaking bool
}

// ReportRequest is the validated form payload for submitting a report.
type ReportRequest struct {
	Title       string
	Description string
	Location    string
}

// Controller owns the in-memory collections and the session/view state, and
// is the sole writer to the slot store. Every state-mutating operation
// mutates first and then issues exactly one full-collection write, both
// under the same lock, so persisted snapshots land in mutation order. The
// only call made outside the lock is the summary generation in
// CreateArticle: it can take arbitrarily long and must not block deletes or
// other creates while it is in flight.
type Controller struct {
	store   store.SlotStore
	summary *llm.Service

	mu              sync.Mutex
	news            []model.NewsArticle
	reports         []model.Report
	currentUser     *model.User
	activeView      string
	activeCategory  string
	selectedArticle *model.NewsArticle
	lastID          int64
}

func New(s store.SlotStore, summary *llm.Service) *Controller {
	return &Controller{
		store:          s,
		summary:        summary,
		activeView:     ViewHome,
		activeCategory: model.CategoryAll,
	}
}

// Initialize loads both collections from the store. An absent or
// undecodable news slot installs the built-in seed; an absent or
// undecodable reports slot installs an empty collection. Seeding writes the
// installed value back so a first run leaves the store primed.
func (c *Controller) Initialize(ctx context.Context) error {
	news, ok := store.LoadArticles(ctx, c.store, store.NewsSlot)
	if !ok {
		news = model.SeedNews()
		if err := store.SaveArticles(ctx, c.store, store.NewsSlot, news); err != nil {
			return fmt.Errorf("seeding news: %w", err)
		}
	}

	reports, ok := store.LoadReports(ctx, c.store, store.ReportsSlot)
	if !ok {
		reports = []model.Report{}
		if err := store.SaveReports(ctx, c.store, store.ReportsSlot, reports); err != nil {
			return fmt.Errorf("seeding reports: %w", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.news = news
	c.reports = reports
	return nil
}

// CreateArticle publishes a new article at the front of the news sequence.
// Author-only: any other caller is refused without touching state. The id
// is assigned before the summary call, so an article being summarized can
// already be referenced (and raced against) by other operations; a failed
// summary still publishes, with the fallback text.
func (c *Controller) CreateArticle(ctx context.Context, user *model.User, req ArticleRequest) (*model.NewsArticle, error) {
	if user == nil || user.Role != model.RoleAuthor {
		return nil, ErrNotAuthorized
	}

	id := c.nextID()
	summary := c.summary.Summarize(ctx, req.Content)

	article := model.NewsArticle{
		ID:         id,
		Title:      req.Title,
		Summary:    summary,
		Content:    req.Content,
		Category:   req.Category,
		Author:     user.Name,
		Date:       time.Now().Format("2006-01-02"),
		ImageURL:   fmt.Sprintf("https://picsum.photos/seed/%s/800/400", id),
		IsBreaking: req.IsBreaking,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.news = append([]model.NewsArticle{article}, c.news...)
	c.persistNews(ctx)
	return &article, nil
}

// DeleteArticle removes the article with the given id. Deleting an id that
// does not exist is a no-op: nothing changes and nothing is written.
func (c *Controller) DeleteArticle(ctx context.Context, user *model.User, id string) error {
	if user == nil || user.Role != model.RoleAuthor {
		return ErrNotAuthorized
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.news[:0:0]
	for _, a := range c.news {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(c.news) {
		return nil
	}

	c.news = kept
	c.persistNews(ctx)
	return nil
}

// CreateReport accepts a submission from any caller, no privilege check.
func (c *Controller) CreateReport(ctx context.Context, req ReportRequest) (*model.Report, error) {
	report := model.Report{
		ID:          c.nextID(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        time.Now().Format("02/01/2006"),
		Status:      model.StatusPending,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = append([]model.Report{report}, c.reports...)
	c.persistReports(ctx)
	return &report, nil
}

// AnalyzeReport classifies a report's urgency via the analysis service.
// Author-only; the submission flow never calls this.
func (c *Controller) AnalyzeReport(ctx context.Context, user *model.User, id string) (string, error) {
	if user == nil || user.Role != model.RoleAuthor {
		return "", ErrNotAuthorized
	}

	c.mu.Lock()
	var description string
	found := false
	for _, r := range c.reports {
		if r.ID == id {
			description = r.Description
			found = true
			break
		}
	}
	c.mu.Unlock()

	if !found {
		return "", ErrNotFound
	}
	return c.summary.AnalyzeReport(ctx, description), nil
}

// Login derives the role from the email alone and replaces the current
// session wholesale. It always succeeds: any non-author email logs in as a
// visitor with a fresh timestamped id.
func (c *Controller) Login(email string) model.User {
	var user model.User
	if strings.EqualFold(strings.TrimSpace(email), AuthorEmail) {
		user = model.User{ID: authorID, Name: AuthorName, Email: email, Role: model.RoleAuthor}
	} else {
		user = model.User{
			ID:    fmt.Sprintf("visitor-%d", time.Now().UnixMilli()),
			Name:  visitorName,
			Email: email,
			Role:  model.RoleVisitor,
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentUser = &user
	return user
}

// Logout clears the session and returns to the home view.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentUser = nil
	c.activeView = ViewHome
}

func (c *Controller) SetActiveCategory(category string) bool {
	if category != model.CategoryAll && !model.ValidCategory(category) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeCategory = category
	return true
}

func (c *Controller) SetActiveView(view string) bool {
	switch view {
	case ViewHome, ViewAdmin, ViewDenuncias, ViewDetail:
	default:
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeView = view
	return true
}

// SelectArticle picks an article for the detail view and switches to it.
func (c *Controller) SelectArticle(id string) (*model.NewsArticle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.news {
		if c.news[i].ID == id {
			article := c.news[i]
			c.selectedArticle = &article
			c.activeView = ViewDetail
			return &article, true
		}
	}
	return nil, false
}

// FilteredNews returns the news sequence filtered by the active category,
// preserving relative order. The "Tudo" category is the identity filter.
func (c *Controller) FilteredNews() []model.NewsArticle {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeCategory == model.CategoryAll {
		return append([]model.NewsArticle(nil), c.news...)
	}
	var filtered []model.NewsArticle
	for _, a := range c.news {
		if a.Category == c.activeCategory {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// BreakingNews returns the first article in current order flagged as
// breaking, or nil. Exclusivity of the flag is not enforced; first wins.
func (c *Controller) BreakingNews() *model.NewsArticle {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.news {
		if c.news[i].IsBreaking {
			article := c.news[i]
			return &article
		}
	}
	return nil
}

func (c *Controller) News() []model.NewsArticle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.NewsArticle(nil), c.news...)
}

func (c *Controller) Reports() []model.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Report(nil), c.reports...)
}

func (c *Controller) CurrentUser() *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentUser == nil {
		return nil
	}
	user := *c.currentUser
	return &user
}

func (c *Controller) ActiveView() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeView
}

func (c *Controller) ActiveCategory() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeCategory
}

func (c *Controller) SelectedArticle() *model.NewsArticle {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedArticle == nil {
		return nil
	}
	article := *c.selectedArticle
	return &article
}

func (c *Controller) Health(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// nextID returns a fresh millisecond-timestamp id, bumped past the previous
// one when two creations land on the same millisecond.
func (c *Controller) nextID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return strconv.FormatInt(id, 10)
}

// persistNews and persistReports snapshot the whole collection. The store
// mirrors memory: a failed write is logged but does not undo the mutation,
// matching the fire-and-forget contract of the original persistence layer.
// Callers must hold c.mu.
func (c *Controller) persistNews(ctx context.Context) {
	if err := store.SaveArticles(ctx, c.store, store.NewsSlot, c.news); err != nil {
		slog.Error("error persisting news", "error", err)
	}
}

func (c *Controller) persistReports(ctx context.Context) {
	if err := store.SaveReports(ctx, c.store, store.ReportsSlot, c.reports); err != nil {
		slog.Error("error persisting reports", "error", err)
	}
}
