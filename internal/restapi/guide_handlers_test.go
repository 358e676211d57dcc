package restapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/scale.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, 15.0, entry["viewMin"])
	assert.Equal(t, 35.0, entry["viewMax"])

	bands, ok := entry["bands"].([]interface{})
	require.True(t, ok)
	require.Len(t, bands, 4)

	first := bands[0].(map[string]interface{})
	assert.Equal(t, "Underweight", first["category"])
	assert.Equal(t, "lightblue", first["color"])
	assert.Equal(t, 18.5, first["to"])

	last := bands[3].(map[string]interface{})
	assert.Equal(t, "Obese", last["category"])
	assert.Equal(t, 30.0, last["from"])
	assert.Equal(t, 40.0, last["to"])

	refs := model.Data.(map[string]interface{})["references"].(map[string]interface{})
	assert.Len(t, refs["categories"], 4)
}

func TestGuideHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/guide.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.NotEmpty(t, entry["nutrition"])
	assert.NotEmpty(t, entry["lifestyle"])
	assert.Contains(t, entry["disclaimer"], "healthcare")
}

func TestCurrentTimeHandler(t *testing.T) {
	before := time.Now().UnixMilli()
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/current-time.json?key=TEST")
	after := time.Now().UnixMilli()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	ts, ok := entry["time"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, int64(ts), before)
	assert.LessOrEqual(t, int64(ts), after)
	assert.NotEmpty(t, entry["readableTime"])
}

func TestHealthzHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, model.Data)
}

func TestMetricsEndpoint(t *testing.T) {
	api := createTestApi(t)
	handler := api.Handler()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/bmi.json?key=TEST&weight=70&height=170", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bmi_assessments_total{category="Normal weight",unit_system="metric"} 1`)
	assert.Contains(t, string(body), `http_requests_total{route="bmi",status="200"} 1`)
}
