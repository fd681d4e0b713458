package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/way"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/antmaze/model"
)

func levelsRouter(s *GameServer) *way.Router {
	router := way.NewRouter()
	router.HandleFunc("GET", "/levels", s.HandleListLevels())
	router.HandleFunc("GET", "/levels/:id", s.HandleGetLevel())
	return router
}

func TestHandleGetLevel(t *testing.T) {
	s := NewGameServer(DefaultConfig())
	s.History.Add(testLevel("known"))
	router := levelsRouter(s)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/levels/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/levels/known", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var setup model.Setup
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&setup))
	assert.Equal(t, "known", setup.LevelID)
	assert.Equal(t, 4, setup.MinSteps)
	assert.Equal(t, 400, setup.MaxFood)
	assert.Equal(t, model.Wall, setup.Grid.At(model.Position{Row: 1, Col: 0}))
}

func TestHandleListLevels(t *testing.T) {
	s := NewGameServer(DefaultConfig())
	router := levelsRouter(s)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/levels", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	s.History.Add(testLevel("one"))
	s.History.Add(testLevel("two"))
	_, _, err := s.History.RecordScore("one", 81)
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/levels", nil))
	var summaries []model.LevelSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "two", summaries[0].LevelID)
	assert.Equal(t, "one", summaries[1].LevelID)
	assert.True(t, summaries[1].HasBest)
	assert.Equal(t, 81, summaries[1].BestScore)
}
