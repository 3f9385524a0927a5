package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kbukum/scopekit/component"
	"github.com/kbukum/scopekit/di"
)

// Summary renders the startup summary of a host.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	out             io.Writer
}

// NewSummary creates a summary that writes to out.
func NewSummary(serviceName, version string, out io.Writer) *Summary {
	return &Summary{serviceName: serviceName, version: version, out: out}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// Display prints components, containers, routes and live health.
func (s *Summary) Display(ctx context.Context, registry *component.Registry, containers []*di.Container) {
	w := s.out
	fmt.Fprintf(w, "\n🚀 %s v%s started in %.2fs\n\n", s.serviceName, s.version, s.startupDuration.Seconds())

	var routes []component.Route
	if registry != nil {
		comps := registry.All()
		fmt.Fprintf(w, "📦 Components\n")
		if len(comps) == 0 {
			fmt.Fprintf(w, "   └── No components registered\n")
		}
		for i, c := range comps {
			desc := component.Description{Name: c.Name()}
			if d, ok := c.(component.Describable); ok {
				desc = d.Describe()
				if desc.Name == "" {
					desc.Name = c.Name()
				}
			}
			details := desc.Details
			if desc.Port > 0 {
				details = fmt.Sprintf("%s (:%d)", details, desc.Port)
			}
			fmt.Fprintf(w, "   %s %s [%s] %s\n", branch(i, len(comps)), desc.Name, desc.Type, details)

			if rp, ok := c.(component.RouteProvider); ok {
				routes = append(routes, rp.Routes()...)
			}
		}
	}

	if len(containers) > 0 {
		fmt.Fprintf(w, "\n🧩 Containers\n")
		for i, c := range containers {
			own, built := 0, 0
			for _, b := range c.Bindings() {
				if b.Owner != c.Name() {
					continue
				}
				own++
				if b.Initialized {
					built++
				}
			}
			parent := "-"
			if p := c.Parent(); p != nil {
				parent = p.Name()
			}
			fmt.Fprintf(w, "   %s %s (parent: %s) bindings=%d initialized=%d\n",
				branch(i, len(containers)), c.Name(), parent, own, built)
		}
	}

	if len(routes) > 0 {
		fmt.Fprintf(w, "\n🌐 Routes (%d)\n", len(routes))
		for i, r := range routes {
			fmt.Fprintf(w, "   %s %-7s %s → %s\n", branch(i, len(routes)), r.Method, r.Path, r.Handler)
		}
	}

	if registry != nil {
		health := registry.HealthAll(ctx)
		if len(health) > 0 {
			fmt.Fprintf(w, "\n🏥 Health Check\n")
			healthy := 0
			for i, h := range health {
				msg := ""
				if h.Message != "" {
					msg = " (" + h.Message + ")"
				}
				if h.Status == component.StatusHealthy {
					healthy++
				}
				fmt.Fprintf(w, "   %s %s %s: %s%s\n", branch(i, len(health)), healthIcon(h.Status), h.Name, strings.ToLower(string(h.Status)), msg)
			}
			if healthy == len(health) {
				fmt.Fprintf(w, "\n✅ All components healthy (%d/%d)\n", healthy, len(health))
			} else {
				fmt.Fprintf(w, "\n⚠️  Some components have issues (%d/%d healthy)\n", healthy, len(health))
			}
		}
	}

	fmt.Fprintf(w, "\n")
}

func branch(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func healthIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	case component.StatusUnhealthy:
		return "❌"
	default:
		return "❓"
	}
}
