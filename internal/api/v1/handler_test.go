package v1

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/store"
)

const sampleCSV = "Store Code,Store Name,State,City,Rating,Response Date,Comments\n" +
	"S001,Trends Indiranagar,Karnataka,Bengaluru,9,2024-05-01,Great staff\n" +
	"S002,Trends CP,Delhi,New Delhi,3,2024-05-02,Slow billing\n" +
	"S003,Trends Mysuru,Karnataka,Mysuru,7,2024-05-03,Okay\n"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	router := gin.New()
	api := router.Group("/api")
	NewHandler(st, zap.NewNop(), 10).RegisterRoutes(api)
	return router
}

func uploadCSV(t *testing.T, router *gin.Engine, csv string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "survey.csv")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write([]byte(csv))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/nps/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("upload status: %d body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"type":"done"`) {
		t.Fatalf("upload stream missing done event: %s", rec.Body.String())
	}
}

func getJSON(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("%s %s: invalid JSON response: %s", method, path, rec.Body.String())
	}
	return rec.Code, out
}

func TestGetStatus_Empty(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	code, body := getJSON(t, router, http.MethodGet, "/api/nps/status", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if body["initialized"] != false {
		t.Fatalf("fresh system should not be initialized: %v", body)
	}
}

func TestUploadAndStatus(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	uploadCSV(t, router, sampleCSV)

	code, body := getJSON(t, router, http.MethodGet, "/api/nps/status", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if body["initialized"] != true || body["totalRecords"] != float64(3) {
		t.Fatalf("status after upload: %v", body)
	}
}

func TestFilter_NoData(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	code, body := getJSON(t, router, http.MethodPost, "/api/nps/filter", `{"filters":{}}`)
	if code != http.StatusNotFound {
		t.Fatalf("want 404, got %d: %v", code, body)
	}
}

func TestFilter_ByState(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	uploadCSV(t, router, sampleCSV)

	code, body := getJSON(t, router, http.MethodPost, "/api/nps/filter",
		`{"filters":{"state":"Karnataka"}}`)
	if code != http.StatusOK {
		t.Fatalf("filter status: %d %v", code, body)
	}
	if body["totalRecords"] != float64(2) {
		t.Fatalf("totalRecords: %v", body["totalRecords"])
	}

	agg, ok := body["aggregates"].(map[string]interface{})
	if !ok {
		t.Fatalf("aggregates missing: %v", body)
	}
	// One promoter and one passive: NPS = 50.
	if agg["npsScore"] != float64(50) {
		t.Fatalf("npsScore: %v", agg["npsScore"])
	}
}

func TestFilterOptions(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Empty dataset returns the empty-arrays shape, not an error.
	code, body := getJSON(t, router, http.MethodGet, "/api/nps/filter-options", "")
	if code != http.StatusOK || body["success"] != false {
		t.Fatalf("empty options: %d %v", code, body)
	}

	uploadCSV(t, router, sampleCSV)

	code, body = getJSON(t, router, http.MethodGet, "/api/nps/filter-options", "")
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("options: %d %v", code, body)
	}
	states, ok := body["states"].([]interface{})
	if !ok || len(states) != 2 {
		t.Fatalf("states: %v", body["states"])
	}
	if states[0] != "Delhi" || states[1] != "Karnataka" {
		t.Fatalf("states should sort alphabetically: %v", states)
	}
}

func TestCurrentDataAndClear(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	uploadCSV(t, router, sampleCSV)

	code, body := getJSON(t, router, http.MethodGet, "/api/nps/current-data", "")
	if code != http.StatusOK || body["hasData"] != true {
		t.Fatalf("current-data: %d %v", code, body)
	}
	preview, ok := body["dataPreview"].([]interface{})
	if !ok || len(preview) != 3 {
		t.Fatalf("preview: %v", body["dataPreview"])
	}

	code, _ = getJSON(t, router, http.MethodDelete, "/api/nps/clear", "")
	if code != http.StatusOK {
		t.Fatalf("clear: %d", code)
	}

	_, body = getJSON(t, router, http.MethodGet, "/api/nps/current-data", "")
	if body["hasData"] != false {
		t.Fatalf("data should be gone: %v", body)
	}
}

func TestGetTrend(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	uploadCSV(t, router, sampleCSV)

	code, body := getJSON(t, router, http.MethodGet, "/api/nps/trend?groupBy=day", "")
	if code != http.StatusOK {
		t.Fatalf("trend: %d %v", code, body)
	}
	trend, ok := body["trend"].([]interface{})
	if !ok || len(trend) != 3 {
		t.Fatalf("trend points: %v", body["trend"])
	}

	code, _ = getJSON(t, router, http.MethodGet, "/api/nps/trend?groupBy=hour", "")
	if code != http.StatusBadRequest {
		t.Fatalf("invalid groupBy should 400, got %d", code)
	}
}

func TestGetInsights(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	uploadCSV(t, router, sampleCSV)

	code, body := getJSON(t, router, http.MethodGet, "/api/nps/insights", "")
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("insights: %d %v", code, body)
	}
	// The keys are always present, even when empty.
	for _, key := range []string{"anomalies", "benchmarkDrops", "topReasons"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing %q: %v", key, body)
		}
	}
}

func TestExport_CSV(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	uploadCSV(t, router, sampleCSV)

	req := httptest.NewRequest(http.MethodPost, "/api/nps/export?format=csv", strings.NewReader(""))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("export: %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "nps-data-") {
		t.Fatalf("disposition: %q", rec.Header().Get("Content-Disposition"))
	}
	if !strings.Contains(rec.Body.String(), "S001") {
		t.Fatalf("export body missing data: %s", rec.Body.String())
	}
}

func TestUploadFromURL_MissingURL(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	code, body := getJSON(t, router, http.MethodPost, "/api/nps/upload-url", `{}`)
	if code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d: %v", code, body)
	}
}

func TestDebug(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	uploadCSV(t, router, sampleCSV)

	code, body := getJSON(t, router, http.MethodGet, "/api/nps/debug", "")
	if code != http.StatusOK {
		t.Fatalf("debug: %d %v", code, body)
	}
	debug, ok := body["debug"].(map[string]interface{})
	if !ok {
		t.Fatalf("debug block missing: %v", body)
	}
	if debug["totalRecords"] != float64(3) {
		t.Fatalf("totalRecords: %v", debug["totalRecords"])
	}
	if debug["recordsWithValidDates"] != float64(3) {
		t.Fatalf("recordsWithValidDates: %v", debug["recordsWithValidDates"])
	}
}
