package handlers

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goblog/blog-service/internal/middleware"
	"github.com/goblog/blog-service/internal/models"
	"github.com/goblog/blog-service/internal/service"
	"github.com/goblog/blog-service/internal/session"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// =============================================================================
// Mock Services
// =============================================================================

type mockAuthService struct {
	registerFunc func(ctx context.Context, name, email, password string) (*models.User, error)
	loginFunc    func(ctx context.Context, email, password string) (*models.User, error)
	userByIDFunc func(ctx context.Context, id int64) (*models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, name, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) UserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.userByIDFunc != nil {
		return m.userByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("failed to find user by id %d: %w", id, gorm.ErrRecordNotFound)
}

type mockPostService struct {
	listFunc   func(ctx context.Context) ([]models.Post, error)
	getFunc    func(ctx context.Context, id int64) (*models.Post, error)
	createFunc func(ctx context.Context, authorID int64, in service.PostInput) (*models.Post, error)
	updateFunc func(ctx context.Context, id int64, in service.PostInput) (*models.Post, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockPostService) List(ctx context.Context) ([]models.Post, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) Create(ctx context.Context, authorID int64, in service.PostInput) (*models.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, authorID, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) Update(ctx context.Context, id int64, in service.PostInput) (*models.Post, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockCommentService struct {
	createFunc func(ctx context.Context, authorID, postID int64, text string) (*models.Comment, error)
}

func (m *mockCommentService) Create(ctx context.Context, authorID, postID int64, text string) (*models.Comment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, authorID, postID, text)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

// testTemplates is a stripped-down template set exposing just enough of the
// rendered data to assert on.
const testTemplates = `
{{define "index.html"}}index:{{len .Posts}}{{end}}
{{define "post.html"}}post:{{.Post.Title}}{{range .Flashes}}|{{.}}{{end}}{{end}}
{{define "register.html"}}register{{range .Flashes}}|{{.}}{{end}}{{with .Error}}|err:{{.}}{{end}}{{end}}
{{define "login.html"}}login{{range .Flashes}}|{{.}}{{end}}{{with .Error}}|err:{{.}}{{end}}{{end}}
{{define "make-post.html"}}make:{{.Heading}}{{range .Flashes}}|{{.}}{{end}}{{end}}
{{define "about.html"}}about{{end}}
{{define "contact.html"}}contact{{end}}
{{define "404.html"}}not found{{end}}
`

type testEnv struct {
	router   *gin.Engine
	auth     *mockAuthService
	posts    *mockPostService
	comments *mockCommentService
}

// knownTestUsers resolves ids 1 (admin) and 2.
func knownTestUsers(ctx context.Context, id int64) (*models.User, error) {
	if id == 1 || id == 2 {
		return &models.User{ID: id, Name: "Tester", Email: "t@x.com"}, nil
	}
	return nil, fmt.Errorf("failed to find user by id %d: %w", id, gorm.ErrRecordNotFound)
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		auth:     &mockAuthService{userByIDFunc: knownTestUsers},
		posts:    &mockPostService{},
		comments: &mockCommentService{},
	}

	authHandler := NewAuthHandler(env.auth)
	postHandler := NewPostHandler(env.posts, env.comments)

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("test").Parse(testTemplates)))
	router.Use(session.Middleware("test-secret"))
	router.Use(middleware.LoadUser(env.auth))

	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/", postHandler.Index)
	router.GET("/post/:id", postHandler.Show)
	router.POST("/post/:id", postHandler.Comment)
	router.GET("/new-post", middleware.AdminOnly(), postHandler.ShowNew)
	router.POST("/new-post", middleware.AdminOnly(), postHandler.Create)
	router.GET("/delete/:id", middleware.AdminOnly(), postHandler.Delete)

	// Test-only route for establishing a session.
	router.GET("/test-signin/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		require.NoError(t, err)
		require.NoError(t, session.SignIn(c, id))
		c.Status(http.StatusOK)
	})

	env.router = router
	return env
}

func (e *testEnv) get(path string, cookies []string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.Header.Add("Cookie", c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values, cookies []string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.Header.Add("Cookie", c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) signIn(t *testing.T, id int64) []string {
	t.Helper()
	w := e.get(fmt.Sprintf("/test-signin/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Header().Values("Set-Cookie")
	require.NotEmpty(t, cookies)
	return cookies
}

// mergeCookies carries session state forward: a response that re-set the
// cookie supersedes whatever the client held before.
func mergeCookies(cookies []string, w *httptest.ResponseRecorder) []string {
	if updated := w.Header().Values("Set-Cookie"); len(updated) > 0 {
		return updated
	}
	return cookies
}
