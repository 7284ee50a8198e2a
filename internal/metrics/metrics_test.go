package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	assert.Equal(t, "/", canonicalPath(""))
	assert.Equal(t, "/", canonicalPath("/"))
	assert.Equal(t, "/galleries", canonicalPath("/galleries/abc/def"))
}

func TestInstrumentHandler_UsesRouteTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.Use(InstrumentHandler)
	router.HandleFunc("/galleries/{gallery_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/galleries/{gallery_id}", "418"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/galleries/123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/galleries/{gallery_id}", "418"))
	assert.Equal(t, before+1, after)
}

func TestDomainCounters(t *testing.T) {
	views := testutil.ToFloat64(postingViews)
	RecordPostingView()
	assert.Equal(t, views+1, testutil.ToFloat64(postingViews))

	RecordToggle("bookmark", "created")
	assert.GreaterOrEqual(t, testutil.ToFloat64(toggles.WithLabelValues("bookmark", "created")), 1.0)

	RecordProviderLogin("", false)
	assert.GreaterOrEqual(t, testutil.ToFloat64(providerLogins.WithLabelValues("unknown", "failure")), 1.0)
}

func TestHandler_ExposesRegistry(t *testing.T) {
	RecordPostingView()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "galleryhub_posting_views_total"))
}
