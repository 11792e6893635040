package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "loadboard/internal/adapters/in/http"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenResolver struct {
	seen []string
}

func (r *tokenResolver) Handle(_ context.Context, query queries.GetAccessQuery) (services.Access, error) {
	r.seen = append(r.seen, query.Token())
	if query.Token() == "good" {
		return services.Access{IsAuthenticated: true}, nil
	}
	return services.Access{}, nil
}

func TestResolveAccess(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		wantToken     string
		authenticated bool
	}{
		{"bearer", "Bearer good", "good", true},
		{"scheme is case insensitive", "bearer good", "good", true},
		{"no header", "", "", false},
		{"other scheme", "Basic good", "", false},
		{"unknown token", "Bearer stale", "stale", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &tokenResolver{}
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			var got bool
			handler := httpin.ResolveAccess(resolver)(func(c echo.Context) error {
				got = c.Get("access").(services.Access).IsAuthenticated
				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.authenticated, got)
			assert.Equal(t, []string{tt.wantToken}, resolver.seen)
		})
	}
}
