package middleware

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shopperhq/shopper/internal/domain/model"
	pkgAuth "github.com/shopperhq/shopper/internal/pkg/auth"
	testhelpers "github.com/shopperhq/shopper/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthRequired(t *testing.T) {
	router := gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{}))
	router.GET("/", func(c *gin.Context) {})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken}))
	router.GET("/", func(c *gin.Context) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{Err: errors.New("backend down")}))
	router.GET("/", func(c *gin.Context) {})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer any")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for parser failure, got %d", resp.Code)
	}
}

func TestAuthRequiredSetsIdentity(t *testing.T) {
	parser := testhelpers.TokenParserStub{Identity: pkgAuth.Identity{UserID: 42, Role: model.RoleVendor}}

	var gotID int64
	var gotRole model.Role
	router := gin.New()
	router.Use(AuthRequired(parser))
	router.GET("/", func(c *gin.Context) {
		id, _ := c.Get(UserIDContextKey)
		role, _ := c.Get(RoleContextKey)
		gotID, _ = id.(int64)
		gotRole, _ = role.(model.Role)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotID != 42 || gotRole != model.RoleVendor {
		t.Fatalf("unexpected identity %d/%s", gotID, gotRole)
	}
}

func TestAuthRequiredReadsCookie(t *testing.T) {
	var called bool
	parser := testhelpers.TokenParserStub{ParseFn: func(token string) (pkgAuth.Identity, error) {
		if token != "cookie-token" {
			return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
		}
		called = true
		return pkgAuth.Identity{UserID: 1, Role: model.RoleCustomer}, nil
	}}

	router := gin.New()
	router.Use(AuthRequired(parser))
	router.GET("/", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "shopper_token", Value: "cookie-token"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK || !called {
		t.Fatalf("expected cookie token to authenticate, got %d", resp.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	newRouter := func(role model.Role, allowed ...model.Role) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if role != "" {
				c.Set(RoleContextKey, role)
			}
		})
		router.Use(RequireRoles(allowed...))
		router.GET("/", func(c *gin.Context) {})
		return router
	}

	resp := httptest.NewRecorder()
	newRouter(model.RoleVendor, model.RoleVendor).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for allowed role, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	newRouter(model.RoleCustomer, model.RoleVendor, model.RoleAdmin).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for denied role, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	newRouter("", model.RoleVendor).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without role, got %d", resp.Code)
	}
}

func TestDecompressRequest(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
	})

	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	_, _ = writer.Write([]byte("payload"))
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK || body != "payload" {
		t.Fatalf("expected decompressed payload, got code=%d body=%q", resp.Code, body)
	}
}

func TestDecompressRequestRejectsBrokenGzip(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken gzip, got %d", resp.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/ping")) {
		t.Fatalf("expected request path in log, got %s", buf.String())
	}
}

func TestAssignRequestID(t *testing.T) {
	router := gin.New()
	router.Use(AssignRequestID())
	var seen string
	router.GET("/", func(c *gin.Context) { seen = RequestID(c) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || resp.Header().Get("X-Request-Id") != seen {
		t.Fatalf("expected generated request id, got %q header %q", seen, resp.Header().Get("X-Request-Id"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-id")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if seen != "client-id" {
		t.Fatalf("expected client id to be honoured, got %q", seen)
	}
}

func TestRequestIDWithoutMiddleware(t *testing.T) {
	router := gin.New()
	var seen string
	router.GET("/", func(c *gin.Context) { seen = RequestID(c) })
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if seen != "" {
		t.Fatalf("expected empty id, got %q", seen)
	}
}

func TestSetAuthCookie(t *testing.T) {
	router := gin.New()
	router.GET("/", func(c *gin.Context) { SetAuthCookie(c, "tok") })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Header().Get("Authorization") != "Bearer tok" {
		t.Fatal("expected authorization header")
	}
	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "shopper_token" || cookies[0].Value != "tok" {
		t.Fatalf("unexpected cookies %v", cookies)
	}
}
