package blog

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/3-lines-studio/blog/internal/adapters/env"
	"github.com/3-lines-studio/blog/internal/pages"
)

func TestModeDetection(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     Mode
	}{
		{name: "dev mode with 1", envValue: "1", want: ModeDev},
		{name: "prod mode with empty", envValue: "", want: ModeProd},
		{name: "prod mode with 0", envValue: "0", want: ModeProd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(env.DevEnvVar, tt.envValue)

			app, err := New(nil, WithLogger(quietLogger()))
			if err != nil {
				t.Fatal(err)
			}
			if app.Mode() != tt.want {
				t.Errorf("Mode() = %v, want %v", app.Mode(), tt.want)
			}
		})
	}
}

func TestWithModeOverridesEnvironment(t *testing.T) {
	t.Setenv(env.DevEnvVar, "1")

	app, err := New(nil, WithMode(ModeProd), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	if app.Mode() != ModeProd {
		t.Errorf("Mode() = %v, want prod", app.Mode())
	}
}

func failingRoutes() []Route {
	return []Route{
		Page("/broken", pages.AboutComponent, WithLoader(func(*http.Request) (map[string]any, error) {
			return nil, errors.New("database exploded")
		})),
	}
}

func TestErrorPageDetailsOnlyInDev(t *testing.T) {
	tests := []struct {
		name        string
		mode        Mode
		wantMessage bool
	}{
		{name: "dev", mode: ModeDev, wantMessage: true},
		{name: "prod", mode: ModeProd, wantMessage: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := New(failingRoutes(), WithMode(tt.mode), WithLogger(quietLogger()))
			if err != nil {
				t.Fatal(err)
			}

			rr := get(t, app.Handler(), "/broken")
			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rr.Code)
			}
			if got := strings.Contains(rr.Body.String(), "database exploded"); got != tt.wantMessage {
				t.Errorf("message shown = %v, want %v\n%s", got, tt.wantMessage, rr.Body.String())
			}
		})
	}
}
