package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/backend"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/gate"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/identity"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const studentDoc = `{"_id":"u1","email":"ana@uni.edu","firstName":"Ana",` +
	`"lastName":"García","role":"estudiante"}`

func newAuthTest(t *testing.T, api http.HandlerFunc) (*gin.Engine, session.Store, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewRedisStore(rdb, time.Hour)

	srv := httptest.NewServer(api)
	manager := session.NewManager(store, backend.New(srv.URL))

	opts := session.CookieOptions{Secure: false, SameSite: http.SameSiteLaxMode}
	h := NewHandler(manager, opts, time.Hour)
	requireUser := gate.RequireRoles(manager,
		identity.RoleStudent, identity.RoleEmployer, identity.RoleAdmin)

	router := gin.New()
	h.RegisterRoutes(router.Group("/api"), requireUser)

	return router, store, func() {
		srv.Close()
		rdb.Close()
		mr.Close()
	}
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsCookieAndReportsRole(t *testing.T) {
	router, store, done := newAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"token":"tok-1","user":` + studentDoc + `}`))
	})
	defer done()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ana@uni.edu","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	cookie := sessionCookie(w)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("login must set the session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if tok, err := store.Load(t.Context(), cookie.Value); err != nil || tok != "tok-1" {
		t.Fatalf("stored credential = %q, %v", tok, err)
	}

	var body struct {
		Success bool   `json:"success"`
		Role    string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Role != "estudiante" {
		t.Fatalf("response = %+v", body)
	}
}

func TestLoginRejectionHasSpanishMessageAndNoCookie(t *testing.T) {
	router, _, done := newAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"nope"}`))
	})
	defer done()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ana@uni.edu","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if sessionCookie(w) != nil {
		t.Fatalf("failed login must not touch the cookie")
	}
	if !strings.Contains(w.Body.String(), "Email o contraseña incorrectos") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	router, store, done := newAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("logout must not call the backend")
	})
	defer done()

	if err := store.Save(t.Context(), "sid-1", "tok-1"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-1"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("logout #%d status = %d", i+1, w.Code)
		}
		cookie := sessionCookie(w)
		if cookie == nil || cookie.MaxAge >= 0 {
			t.Fatalf("logout #%d must expire the cookie", i+1)
		}
	}

	if _, err := store.Load(t.Context(), "sid-1"); !errors.Is(err, session.ErrNoCredential) {
		t.Fatalf("credential survived logout: %v", err)
	}
}

func TestRegisterForwardsFieldsVerbatim(t *testing.T) {
	payload := `{"email":"x@uni.edu","password":"pw","role":"estudiante","studentId":"A0001"}`
	var got string
	router, _, done := newAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true}`))
	})
	defer done()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got != payload {
		t.Fatalf("backend saw %s, want %s", got, payload)
	}
	if sessionCookie(w) != nil {
		t.Fatalf("register must not create a session")
	}
}

func TestProfileWithoutSessionIsPlain401(t *testing.T) {
	router, _, done := newAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no backend call expected without a credential")
	})
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no autenticado") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestProfileReturnsBackendDocument(t *testing.T) {
	router, store, done := newAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"user":` + studentDoc + `}`))
	})
	defer done()

	if err := store.Save(t.Context(), "sid-1", "tok-1"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"email":"ana@uni.edu"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}
