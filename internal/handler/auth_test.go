package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vitrine/internal/config"
	"vitrine/internal/dto"
	"vitrine/internal/model"
	"vitrine/internal/repository"
	"vitrine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct{}

func (stubAuthService) Session(_ context.Context, req dto.SessionRequest) (string, *model.User, error) {
	return "token-de-teste", &model.User{ID: 1, OpenID: req.OpenID, Role: model.RoleUser}, nil
}

var _ service.AuthService = stubAuthService{}

func buildAuthEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SessionCookieName: "vitrine_session", SessionTTLHours: 1}
	h := NewAuthHandler(stubAuthService{}, cfg)
	r := gin.New()
	r.POST("/v1/auth/session", h.Session)
	r.POST("/v1/auth/logout", h.Logout)
	r.GET("/v1/auth/me", h.Me)
	return r
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSession_DefineCookieDeSessao(t *testing.T) {
	r := buildAuthEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/session",
		strings.NewReader(`{"openId":"alice","name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := findCookie(t, w, "vitrine_session")
	assert.Equal(t, "token-de-teste", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	// Plain-HTTP request — Secure must stay off for local development.
	assert.False(t, cookie.Secure)
}

func TestSession_OpenIDObrigatorio(t *testing.T) {
	r := buildAuthEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/session",
		strings.NewReader(`{"name":"Anônimo"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogout_ExpiraCookie(t *testing.T) {
	r := buildAuthEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := findCookie(t, w, "vitrine_session")
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

// memUserRepo backs the full-stack session tests: the real AuthService runs
// against it so the persisted role is observable.
type memUserRepo struct{ users map[string]*model.User }

func (r *memUserRepo) Upsert(_ context.Context, u *model.User, updateCols []string) error {
	existing, ok := r.users[u.OpenID]
	if !ok {
		nu := *u
		nu.ID = int64(len(r.users) + 1)
		if nu.Role == "" {
			nu.Role = model.RoleUser
		}
		r.users[u.OpenID] = &nu
		return nil
	}
	for _, col := range updateCols {
		switch col {
		case "last_signed_in":
			existing.LastSignedIn = u.LastSignedIn
		case "name":
			existing.Name = u.Name
		case "email":
			existing.Email = u.Email
		case "login_method":
			existing.LoginMethod = u.LoginMethod
		case "role":
			existing.Role = u.Role
		}
	}
	return nil
}

func (r *memUserRepo) FindByOpenID(_ context.Context, openID string) (*model.User, error) {
	u, ok := r.users[openID]
	if !ok {
		return nil, nil
	}
	return u, nil
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func buildFullAuthEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := &memUserRepo{users: make(map[string]*model.User)}
	h := NewAuthHandler(service.NewAuthService(repo, cfg), cfg)
	r := gin.New()
	r.POST("/v1/auth/session", h.Session)
	return r
}

func TestSession_PapelNoPayloadNaoElevaPrivilegio(t *testing.T) {
	cfg := &config.Config{
		SessionSecret:     "test-secret",
		SessionCookieName: "vitrine_session",
		SessionTTLHours:   1,
		OwnerOpenID:       "dono",
	}
	r := buildFullAuthEngine(cfg)

	// A role key in the public payload is ignored: role assignment is
	// server-side only.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/session",
		strings.NewReader(`{"openId":"intruso","role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestSession_DonoSempreAdminMesmoComPapelNoPayload(t *testing.T) {
	cfg := &config.Config{
		SessionSecret:     "test-secret",
		SessionCookieName: "vitrine_session",
		SessionTTLHours:   1,
		OwnerOpenID:       "dono",
	}
	r := buildFullAuthEngine(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/session",
		strings.NewReader(`{"openId":"dono","role":"user"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestSession_SegredoDoGatewayObrigatorio(t *testing.T) {
	cfg := &config.Config{
		SessionSecret:     "test-secret",
		SessionCookieName: "vitrine_session",
		SessionTTLHours:   1,
		GatewaySecret:     "segredo-do-gateway",
	}
	r := buildFullAuthEngine(cfg)

	body := `{"openId":"alice"}`

	// Without the header the mint is rejected before any upsert.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// With it, the gateway call goes through.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/auth/session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Gateway-Secret", "segredo-do-gateway")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMe_AnonimoRespondeNull(t *testing.T) {
	r := buildAuthEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
