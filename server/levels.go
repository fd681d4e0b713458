package server

import (
	"encoding/json"
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antmaze/model"
)

func (s *GameServer) HandleListLevels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		levels := s.History.List()
		out := make([]model.LevelSummary, 0, len(levels))
		for _, l := range levels {
			out = append(out, l.Summary())
		}
		writeJSON(w, HTTP_SUCCESS, out)
	}
}

func (s *GameServer) HandleGetLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := way.Param(r.Context(), "id")
		level, err := s.History.Get(id)
		if err != nil {
			w.WriteHeader(ToHttp(err))
			return
		}
		writeJSON(w, HTTP_SUCCESS, level.Setup())
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("writeJSON %v", err)
	}
}
