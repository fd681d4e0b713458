package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/play"
const URI_LEVELS = "/levels"
const URI_LEVEL = "/levels/:id"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_LEVELS, s.GameServer.HandleListLevels())
	s.router.HandleFunc("GET", URI_LEVEL, s.GameServer.HandleGetLevel())
}
