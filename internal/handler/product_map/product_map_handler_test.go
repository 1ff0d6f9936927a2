package product_map

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	service "github.com/dinerozz/product-map-backend/internal/service/product_map"
)

const testLog = `# filename | url | session | device | type | app | ts
1.png | https://x.com/login | s1 | d1 | None | app | 100
2.png | https://x.com/acme/home | s1 | d1 | None | app | 200
3.png | https://x.com/login | s2 | d2 | desktop | app | 50
4.png | https://x.com/acme/home | s2 | d2 | desktop | app | 150
5.png | https://x.com/settings | s2 | d2 | desktop | app | 300
`

const testFunnels = `[{"funnel_name":"Activation","funnel_type":"conversion","description":"","steps":["Login","Home"],"estimated_importance":"high"}]`

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Meta    json.RawMessage `json:"meta"`
}

func setupRouter(t *testing.T, metadataPath string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	funnelsPath := filepath.Join(dir, "funnels.json")
	require.NoError(t, os.WriteFile(funnelsPath, []byte(testFunnels), 0o644))

	if metadataPath == "" {
		metadataPath = filepath.Join(dir, "metadata.txt")
		require.NoError(t, os.WriteFile(metadataPath, []byte(testLog), 0o644))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewProductMapService(service.NewFileSource(metadataPath, funnelsPath), nil, time.Minute, logger)
	h := NewProductMapHandler(svc)

	r := gin.New()
	g := r.Group("/api/v1/product-map")
	g.GET("", h.GetProductMap)
	g.POST("/refresh", h.RefreshProductMap)
	g.GET("/pages", h.GetPages)
	g.GET("/pages/lookup", h.GetPage)
	g.GET("/edges", h.GetEdges)
	g.GET("/journeys", h.GetJourneys)
	g.POST("/analyze", h.Analyze)

	return r
}

func do(t *testing.T, r *gin.Engine, method, target string, body []byte) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestGetProductMap(t *testing.T) {
	r := setupRouter(t, "")

	code, env := do(t, r, http.MethodGet, "/api/v1/product-map", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	var data struct {
		Pages    []map[string]interface{} `json:"pages"`
		Edges    []map[string]interface{} `json:"edges"`
		Journeys []map[string]interface{} `json:"journeys"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Pages, 3)
	assert.Len(t, data.Edges, 2)
	assert.Len(t, data.Journeys, 1)
	assert.NotEmpty(t, env.Meta)
}

func TestGetProductMap_MissingLogServesEmptyMap(t *testing.T) {
	r := setupRouter(t, filepath.Join(t.TempDir(), "absent.txt"))

	code, env := do(t, r, http.MethodGet, "/api/v1/product-map", nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Pages []interface{} `json:"pages"`
		Edges []interface{} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Pages)
	assert.Empty(t, data.Edges)
}

func TestGetPages_Limit(t *testing.T) {
	r := setupRouter(t, "")

	code, env := do(t, r, http.MethodGet, "/api/v1/product-map/pages?limit=1", nil)
	require.Equal(t, http.StatusOK, code)

	var pages []struct {
		ID       string `json:"id"`
		Sessions int    `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pages))
	require.Len(t, pages, 1)
	assert.Equal(t, "https://x.com/login", pages[0].ID)
	assert.Equal(t, 2, pages[0].Sessions)

	var meta struct {
		Total    int `json:"total"`
		Returned int `json:"returned"`
	}
	require.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 1, meta.Returned)
}

func TestGetPages_InvalidLimit(t *testing.T) {
	r := setupRouter(t, "")

	code, env := do(t, r, http.MethodGet, "/api/v1/product-map/pages?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "limit")
}

func TestGetPage(t *testing.T) {
	r := setupRouter(t, "")

	code, env := do(t, r, http.MethodGet, "/api/v1/product-map/pages/lookup?id="+url.QueryEscape("https://x.com/settings"), nil)
	require.Equal(t, http.StatusOK, code)

	var p struct {
		Title    string `json:"title"`
		PageType string `json:"pageType"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "settings", p.Title)
	assert.Equal(t, "Settings", p.PageType)
}

func TestGetPage_NotFoundAndMissingID(t *testing.T) {
	r := setupRouter(t, "")

	code, _ := do(t, r, http.MethodGet, "/api/v1/product-map/pages/lookup?id=nope", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, r, http.MethodGet, "/api/v1/product-map/pages/lookup", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetEdges_MinSessions(t *testing.T) {
	r := setupRouter(t, "")

	code, env := do(t, r, http.MethodGet, "/api/v1/product-map/edges?min_sessions=2", nil)
	require.Equal(t, http.StatusOK, code)

	var edges []struct {
		Source     string   `json:"source"`
		Target     string   `json:"target"`
		Sessions   int      `json:"sessions"`
		JourneyIDs []string `json:"journeyIds"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &edges))
	require.Len(t, edges, 1)
	assert.Equal(t, "https://x.com/login", edges[0].Source)
	assert.Equal(t, "https://x.com/acme/home", edges[0].Target)
	assert.Equal(t, []string{"journey-0"}, edges[0].JourneyIDs)
}

func TestGetJourneys(t *testing.T) {
	r := setupRouter(t, "")

	code, env := do(t, r, http.MethodGet, "/api/v1/product-map/journeys", nil)
	require.Equal(t, http.StatusOK, code)

	var journeys []struct {
		ID    string `json:"id"`
		Steps []struct {
			PageID     string `json:"pageId"`
			StepNumber int    `json:"stepNumber"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &journeys))
	require.Len(t, journeys, 1)
	assert.Equal(t, "journey-0", journeys[0].ID)
	require.Len(t, journeys[0].Steps, 2)
	assert.Equal(t, 1, journeys[0].Steps[0].StepNumber)
	assert.Equal(t, "https://x.com/login", journeys[0].Steps[0].PageID)
}

func TestRefreshProductMap(t *testing.T) {
	r := setupRouter(t, "")

	code, env := do(t, r, http.MethodPost, "/api/v1/product-map/refresh", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestAnalyze(t *testing.T) {
	r := setupRouter(t, "")

	body, err := json.Marshal(map[string]interface{}{
		"metadata": "a.png | /login | s1 | d1 | None | app | 1\nb.png | /dashboard | s1 | d1 | None | app | 2\n",
	})
	require.NoError(t, err)

	code, env := do(t, r, http.MethodPost, "/api/v1/product-map/analyze", body)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Edges []struct {
			ID string `json:"id"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Edges, 1)
	assert.Equal(t, "/login→/dashboard", data.Edges[0].ID)
}

func TestAnalyze_BadRequests(t *testing.T) {
	r := setupRouter(t, "")

	code, _ := do(t, r, http.MethodPost, "/api/v1/product-map/analyze", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, code)

	body := []byte(`{"metadata":"x","funnels":[{"funnel_name":"f","funnel_type":"viral","steps":["a"],"estimated_importance":"low"}]}`)
	code, env := do(t, r, http.MethodPost, "/api/v1/product-map/analyze", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "invalid funnels")
}
