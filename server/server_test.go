package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/scopekit/component"
	"github.com/kbukum/scopekit/di"
	apperrors "github.com/kbukum/scopekit/errors"
	"github.com/kbukum/scopekit/logger"
	"github.com/kbukum/scopekit/server/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := Config{Host: "127.0.0.1"}
	cfg.ApplyDefaults()
	cfg.Port = 0
	return New(cfg, logger.Nop())
}

func do(s *Server, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(method, path, http.NoBody))
	return rr
}

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Port != 8080 || cfg.ReadTimeout != 15 || cfg.WriteTimeout != 15 || cfg.IdleTimeout != 60 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Scope != "activity" {
		t.Errorf("expected scope activity, got %q", cfg.Scope)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"port too large", Config{Port: 70000}},
		{"negative timeout", Config{ReadTimeout: -1}},
		{"bad scope", Config{Scope: "Request Scope"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !apperrors.HasCode(err, apperrors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

type counter struct{ n int }

func TestServer_ScopedRoute(t *testing.T) {
	s := testServer(t)
	s.ApplyMiddleware(nil)

	root, err := di.New(di.NameSingleton, []di.Declaration{
		di.Provide(func() *counter { return &counter{} }, di.As(di.Singleton)),
	}, di.WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.RegisterDefaultEndpoints("svc", nil, root)

	scoped := s.Scoped("/screens", root, nil)
	scoped.GET("/count", func(c *gin.Context) {
		child := ContainerFrom(c)
		if child == nil {
			RespondWithError(c, apperrors.NotFound("container", ""))
			return
		}
		cnt, err := di.Resolve[*counter](child)
		if err != nil {
			RespondWithError(c, err)
			return
		}
		cnt.n++
		RespondOK(c, gin.H{"count": cnt.n, "scope": child.Name()})
	})

	for want := 1; want <= 2; want++ {
		rr := do(s, "GET", "/screens/count")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
		}
		var body struct {
			Data struct {
				Count int    `json:"count"`
				Scope string `json:"scope"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body.Data.Count != want {
			t.Errorf("expected the root singleton to be shared, count %d want %d", body.Data.Count, want)
		}
		if body.Data.Scope != "activity" {
			t.Errorf("expected scope activity, got %q", body.Data.Scope)
		}
		if rr.Header().Get(middleware.HeaderRequestID) == "" {
			t.Error("expected request id header")
		}
	}

	if rr := do(s, "GET", "/health"); rr.Code != http.StatusOK {
		t.Errorf("expected /health 200, got %d", rr.Code)
	}
	if rr := do(s, "GET", "/bindings"); rr.Code != http.StatusOK {
		t.Errorf("expected /bindings 200, got %d", rr.Code)
	}
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"app error", apperrors.ContainerClosed("view"), http.StatusServiceUnavailable},
		{"plain error", context.Canceled, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)
			RespondWithError(c, tc.err)
			if rr.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, rr.Code)
			}
		})
	}
}

func TestServerComponent_Lifecycle(t *testing.T) {
	s := testServer(t)
	s.GinEngine().GET("/dogs", func(c *gin.Context) {})
	s.GinEngine().POST("/dogs", func(c *gin.Context) {})
	s.GinEngine().GET("/health", func(c *gin.Context) {})

	sc := NewComponent(s)
	if sc.Name() != "http-server" {
		t.Errorf("unexpected name %q", sc.Name())
	}
	if h := sc.Health(t.Context()); h.Status != component.StatusUnhealthy {
		t.Errorf("expected unhealthy before start, got %s", h.Status)
	}

	if err := sc.Start(t.Context()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if h := sc.Health(t.Context()); h.Status != component.StatusHealthy {
		t.Errorf("expected healthy after start, got %s", h.Status)
	}

	resp, err := http.Get("http://" + s.Addr() + "/dogs")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	routes := sc.Routes()
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}
	if routes[0].Method != "GET" || routes[1].Method != "POST" || routes[2].Path != "/health" {
		t.Errorf("unexpected route order %+v", routes)
	}

	if err := sc.Stop(t.Context()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if h := sc.Health(t.Context()); h.Status != component.StatusUnhealthy {
		t.Errorf("expected unhealthy after stop, got %s", h.Status)
	}
}

func TestFormatHandlerName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"github.com/kbukum/scopekit/sample/screen.(*Main).Show-fm", "Main.Show"},
		{"github.com/kbukum/scopekit/server/endpoint.Health.func1", "health"},
		{"main.listDogs", "listDogs"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := formatHandlerName(tc.in); got != tc.want {
				t.Errorf("formatHandlerName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
