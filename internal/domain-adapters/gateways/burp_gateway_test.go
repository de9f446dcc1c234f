package gateways

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burpctl/burpctl/internal/domain/entities"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *BurpGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw, err := NewBurpGateway(Config{BaseURL: server.URL})
	require.NoError(t, err)
	return gw
}

func TestNewBurpGateway_RequiresBaseURL(t *testing.T) {
	_, err := NewBurpGateway(Config{})
	require.ErrorIs(t, err, ErrNoBaseURL)
}

func TestJoinURL_TrailingSlashIdempotent(t *testing.T) {
	withSlash := joinURL("http://localhost:8090/", epTargetScope)
	withoutSlash := joinURL("http://localhost:8090", epTargetScope)

	assert.Equal(t, "http://localhost:8090/burp/target/scope", withSlash)
	assert.Equal(t, withSlash, withoutSlash)
}

func TestIsInScope(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/burp/target/scope", r.URL.Path)
		assert.Equal(t, "http://a", r.URL.Query().Get("url"))
		w.Write([]byte(`{"inScope": true}`))
	})

	inScope, err := gw.IsInScope(context.Background(), "http://a")
	require.NoError(t, err)
	assert.True(t, inScope)
}

func TestIncludeInScope_FormEncoded(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/burp/target/scope", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "http://a", r.PostFormValue("url"))
	})

	require.NoError(t, gw.IncludeInScope(context.Background(), "http://a"))
}

func TestSeedSpider(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/burp/spider", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "http://a", r.PostFormValue("baseUrl"))
	})

	require.NoError(t, gw.SeedSpider(context.Background(), "http://a"))
}

func TestSpiderStatus(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burp/spider/status", r.URL.Path)
		w.Write([]byte(`{"spiderPercentage": 42}`))
	})

	percent, err := gw.SpiderStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, percent)
}

func TestScanStatus(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burp/scanner/status", r.URL.Path)
		w.Write([]byte(`{"scanPercentage": 100}`))
	})

	percent, err := gw.ScanStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, percent)
}

func TestStatus_IgnoresSiblingFields(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"spiderPercentage": 42, "state": "running"}`))
	})

	percent, err := gw.SpiderStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, percent)
}

func TestStatus_MissingField(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := gw.SpiderStatus(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spiderPercentage")
}

func TestStartScans(t *testing.T) {
	var gotPath string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "http://a", r.PostFormValue("baseUrl"))
	})

	require.NoError(t, gw.StartActiveScan(context.Background(), "http://a"))
	assert.Equal(t, "/burp/scanner/scans/active", gotPath)

	require.NoError(t, gw.StartPassiveScan(context.Background(), "http://a"))
	assert.Equal(t, "/burp/scanner/scans/passive", gotPath)
}

func TestStopActiveScan(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/burp/scanner/scans/active", r.URL.Path)
	})

	require.NoError(t, gw.StopActiveScan(context.Background()))
}

func TestIssues_PrefixQuery(t *testing.T) {
	var gotQuery string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burp/scanner/issues", r.URL.Path)
		gotQuery = r.URL.Query().Get("urlPrefix")
		w.Write([]byte(`{"issues": []}`))
	})

	_, err := gw.Issues(context.Background(), "http://a")
	require.NoError(t, err)
	assert.Equal(t, "http://a", gotQuery)

	_, err = gw.Issues(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestSitemap_Passthrough(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burp/target/sitemap", r.URL.Path)
		w.Write([]byte(`{"messages": [{"url": "http://a/login", "statusCode": 200}]}`))
	})

	doc, err := gw.Sitemap(context.Background(), "")
	require.NoError(t, err)

	m, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, m, "messages")
}

func TestReport_Verbatim(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burp/report", r.URL.Path)
		assert.Equal(t, "HTML", r.URL.Query().Get("reportType"))
		w.Write([]byte("<html>report</html>"))
	})

	data, err := gw.Report(context.Background(), entities.ReportHTML)
	require.NoError(t, err)
	assert.Equal(t, "<html>report</html>", string(data))
}

func TestShutdown(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/burp/stop", r.URL.Path)
	})

	require.NoError(t, gw.Shutdown(context.Background()))
}

func TestAPIError_JSONMessage(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "X"}`))
	})

	err := gw.SeedSpider(context.Background(), "http://a")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "X", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "HTTP 500")
}

func TestAPIError_RawBody(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("no scan is running"))
	})

	err := gw.StopActiveScan(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "no scan is running", apiErr.Message)
}

func TestAPIKeyHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("API-KEY"))
	}))
	t.Cleanup(server.Close)

	gw, err := NewBurpGateway(Config{BaseURL: server.URL, APIKey: "secret"})
	require.NoError(t, err)
	require.NoError(t, gw.Shutdown(context.Background()))
}

func TestUpdateConfiguration_RejectsInvalidJSON(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for invalid JSON")
	})

	err := gw.UpdateConfiguration(context.Background(), []byte("{not json"))
	require.Error(t, err)
}

func TestIsConnectionError(t *testing.T) {
	gw, err := NewBurpGateway(Config{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	err = gw.Shutdown(context.Background())
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))

	assert.False(t, IsConnectionError(&APIError{Status: 500}))
}
