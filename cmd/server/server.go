package main

import (
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antmaze/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	Server := Server{
		GameServer: server.NewGameServer(cfg),
	}
	go Server.GameServer.Loop()
	Server.routes()
	log.WithFields(log.Fields{
		"port":     cfg.Port,
		"defaults": cfg.Defaults,
		"seed":     cfg.Seed,
	}).Info("antmaze server listening")
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, Server.router))
}
