package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
)

var testScope = domain.Scope{CompanyID: 3, SiteID: 14}

func TestHTTPGateway_GetSite(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/companies/3/sites/14", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":14,"company_id":3,"name":"north hub","active":true}`))
		}))
		defer srv.Close()

		gw := NewHTTPGateway(srv.URL, srv.Client())
		site, err := gw.GetSite(context.Background(), testScope)
		require.NoError(t, err)
		require.Equal(t, &Site{ID: 14, CompanyID: 3, Name: "north hub", Active: true}, site)
	})

	t.Run("unknown site maps to nil", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		gw := NewHTTPGateway(srv.URL, srv.Client())
		site, err := gw.GetSite(context.Background(), testScope)
		require.NoError(t, err)
		require.Nil(t, site)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		gw := NewHTTPGateway(srv.URL, srv.Client())
		_, err := gw.GetSite(context.Background(), testScope)
		var se *statusError
		require.ErrorAs(t, err, &se)
		require.Equal(t, http.StatusInternalServerError, se.Code)
	})

	t.Run("empty base url disables the gateway", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, NewHTTPGateway("", nil))
	})
}

type stubGateway struct {
	site  *Site
	errs  []error
	calls int
}

func (s *stubGateway) GetSite(context.Context, domain.Scope) (*Site, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return nil, err
	}
	return s.site, nil
}

func TestChecker_SiteActive(t *testing.T) {
	t.Parallel()

	t.Run("active", func(t *testing.T) {
		t.Parallel()
		c := NewChecker(&stubGateway{site: &Site{ID: 14, Active: true}})
		active, err := c.SiteActive(context.Background(), testScope)
		require.NoError(t, err)
		require.True(t, active)
	})

	t.Run("inactive", func(t *testing.T) {
		t.Parallel()
		c := NewChecker(&stubGateway{site: &Site{ID: 14}})
		active, err := c.SiteActive(context.Background(), testScope)
		require.NoError(t, err)
		require.False(t, active)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		c := NewChecker(&stubGateway{})
		_, err := c.SiteActive(context.Background(), testScope)
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
