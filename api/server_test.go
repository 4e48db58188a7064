package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foobos/promotx/sequence"
)

func newTestApi() *Api {
	var config sequence.Config
	config.ApplyDefaults()
	return NewApi(config, sequence.NewTagline(config.Palette))
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSnapshotEndpoint(t *testing.T) {
	handler := newTestApi().Handler()

	w := get(t, handler, "/api/snapshot?frame=45")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var snap sequence.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 100.0, snap.DividerWidth)
	assert.Equal(t, 0.0, snap.TitleOffsetX)
}

func TestSnapshotEndpointAllowsAnyFrame(t *testing.T) {
	handler := newTestApi().Handler()

	for _, target := range []string{
		"/api/snapshot?frame=-50",
		"/api/snapshot?frame=0",
		"/api/snapshot?frame=999999",
	} {
		w := get(t, handler, target)
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestSnapshotEndpointRejectsBadFrame(t *testing.T) {
	handler := newTestApi().Handler()

	for _, target := range []string{
		"/api/snapshot",
		"/api/snapshot?frame=abc",
		"/api/snapshot?frame=1.5",
	} {
		w := get(t, handler, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestSequenceEndpoint(t *testing.T) {
	w := get(t, newTestApi().Handler(), "/api/sequence")
	require.Equal(t, http.StatusOK, w.Code)

	var meta struct {
		URL            string  `json:"url"`
		DurationFrames int64   `json:"durationFrames"`
		FPS            float64 `json:"fps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
	assert.Equal(t, "foobos.net", meta.URL)
	assert.Equal(t, int64(sequence.SequenceEnd+15), meta.DurationFrames)
	assert.Equal(t, 30.0, meta.FPS)
}
