package endpoint_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/scopekit/component"
	"github.com/kbukum/scopekit/di"
	"github.com/kbukum/scopekit/logger"
	"github.com/kbukum/scopekit/server/endpoint"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	engine := gin.New()
	engine.GET("/", h)
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return rr, body
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		statuses []component.HealthStatus
		want     component.HealthStatus
		code     int
	}{
		{"no checker", nil, component.StatusHealthy, http.StatusOK},
		{"all healthy", []component.HealthStatus{component.StatusHealthy, component.StatusHealthy}, component.StatusHealthy, http.StatusOK},
		{"degraded", []component.HealthStatus{component.StatusHealthy, component.StatusDegraded}, component.StatusDegraded, http.StatusOK},
		{"unhealthy wins", []component.HealthStatus{component.StatusDegraded, component.StatusUnhealthy}, component.StatusUnhealthy, http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var checker endpoint.HealthChecker
			if tc.statuses != nil {
				checker = func(context.Context) []component.Health {
					out := make([]component.Health, len(tc.statuses))
					for i, s := range tc.statuses {
						out[i] = component.Health{Name: "c", Status: s}
					}
					return out
				}
			}

			rr, body := get(t, endpoint.Health("svc", checker))
			if rr.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, rr.Code)
			}
			if body["status"] != string(tc.want) {
				t.Errorf("expected status %s, got %v", tc.want, body["status"])
			}
			if body["service"] != "svc" {
				t.Errorf("expected service svc, got %v", body["service"])
			}
		})
	}
}

func TestInfo(t *testing.T) {
	rr, body := get(t, endpoint.Info("svc"))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body["service"] != "svc" {
		t.Errorf("expected service svc, got %v", body["service"])
	}
	if _, ok := body["version"]; !ok {
		t.Error("expected version field")
	}
}

type animal interface{ Sound() string }

type dog struct{}

func (dog) Sound() string { return "woof" }

func TestBindings(t *testing.T) {
	root, err := di.New(di.NameSingleton, di.Module("animals",
		di.Provide(func() *dog { return &dog{} }, di.As(di.Singleton)),
	), di.WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	child, err := root.Child(di.NameActivity, []di.Declaration{
		di.Bind[animal, *dog](),
	})
	if err != nil {
		t.Fatalf("Child: %v", err)
	}

	rr, body := get(t, endpoint.Bindings(child))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body["container"] != di.NameActivity {
		t.Errorf("expected container activity, got %v", body["container"])
	}
	chain, _ := body["chain"].([]any)
	if len(chain) != 2 || chain[0] != di.NameActivity || chain[1] != di.NameSingleton {
		t.Errorf("unexpected chain %v", chain)
	}
	bindings, _ := body["bindings"].([]any)
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	first, _ := bindings[0].(map[string]any)
	if first["kind"] != "delegate" || first["owner"] != di.NameActivity {
		t.Errorf("unexpected first binding %v", first)
	}
	second, _ := bindings[1].(map[string]any)
	if second["module"] != "animals" || second["scope"] != "singleton" {
		t.Errorf("unexpected second binding %v", second)
	}
}
