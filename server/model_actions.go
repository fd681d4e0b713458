package server

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antmaze/generator"
	"github.com/zucenko/antmaze/model"
)

func NewGameServer(cfg Config) *GameServer {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &GameServer{
		Config:        cfg,
		History:       NewHistory(),
		LevelRequests: make(chan LevelRequest),
		Upgrader:      &websocket.Upgrader{},
		generator:     generator.NewSeeded(seed),
	}
}

// Loop owns the generator; every new level is built here, one at a time.
func (s *GameServer) Loop() {
	log.Printf("GameServer.Loop starting")
	for req := range s.LevelRequests {
		level, err := s.newLevel(req.Config)
		req.Reply <- LevelReply{Level: level, Err: err}
	}
	log.Printf("GameServer.Loop ended")
}

func (s *GameServer) newLevel(cfg model.LevelConfig) (Level, error) {
	cfg.Rows, cfg.Cols = model.Clamp(cfg.Rows), model.Clamp(cfg.Cols)
	gen := s.generator.Generate(generator.Options{
		Rows: cfg.Rows, Cols: cfg.Cols, MoreWalls: cfg.MoreWalls, MoreFood: cfg.MoreFood,
	})
	minSteps, err := model.OptimalSteps(gen.Grid, gen.Start, gen.Exit)
	if err != nil {
		log.WithFields(log.Fields{"config": cfg, "start": gen.Start, "exit": gen.Exit}).
			Error("GameServer.newLevel generated a disconnected grid")
		return Level{}, errors.Wrapf(err, "level %dx%d", cfg.Rows, cfg.Cols)
	}
	level := Level{
		ID:         uuid.NewString(),
		Created:    time.Now(),
		Config:     cfg,
		Grid:       gen.Grid,
		Start:      gen.Start,
		Exit:       gen.Exit,
		MinSteps:   minSteps,
		MaxFood:    model.TotalFoodValue(gen.Grid),
		TotalCells: gen.Grid.Cells(),
	}
	log.WithFields(log.Fields{
		"levelID":  level.ID,
		"rows":     cfg.Rows,
		"cols":     cfg.Cols,
		"walls":    gen.WallsPlaced,
		"food":     gen.FoodPlaced,
		"minSteps": minSteps,
	}).Info("level generated")
	return level, nil
}

// RequestLevel asks Loop for a new level and waits at most Config.Timeout.
// Only a level handed back to the caller enters the history.
func (s *GameServer) RequestLevel(cfg model.LevelConfig) (Level, error) {
	reply := make(chan LevelReply, 1)
	select {
	case s.LevelRequests <- LevelRequest{Config: cfg, Reply: reply}:
	case <-time.After(s.Config.Timeout):
		log.Warn("LevelRequests TIMEOUTED")
		return Level{}, ErrTimeout
	}
	select {
	case r := <-reply:
		if r.Err != nil {
			return Level{}, r.Err
		}
		s.History.Add(r.Level)
		return r.Level, nil
	case <-time.After(s.Config.Timeout):
		log.Warn("LevelReply TIMEOUTED")
		return Level{}, ErrTimeout
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - Conection received")
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		ps := s.NewPlayerSession(con)
		go ps.LoopChannelWrite()
		go ps.Loop()
		ps.LoopChannelRead()
		<-ps.GameOver
		log.Info("HandleHttpCall session over")
	}
}

func (s *GameServer) NewPlayerSession(con *websocket.Conn) *PlayerSession {
	return &PlayerSession{
		State:          PS_NEW,
		Server:         s,
		Conn:           con,
		GameOver:       make(chan struct{}),
		Events:         make(chan model.ClientMessage, 10),
		MessagesToSend: make(chan model.ServerMessage, 10),
	}
}

// LoopChannelRead decodes client messages until the connection fails, then
// closes Events so Loop can wind the session down.
func (ps *PlayerSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
	defer close(ps.Events)
	for {
		messageType, r, err := ps.Conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("LoopChannelRead closed by client")
			} else {
				log.Printf("LoopChannelRead err reading message from Conn %v", err)
			}
			break
		}
		log.Debugf("LoopChannelRead received message type: %d", messageType)
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			break
		}
		ps.DebugLastMessage = time.Now()
		ps.DebugInMessages++

		// blocks while Loop is busy, so commands are never dropped
		ps.Events <- cm
	}
	log.Printf("LoopChannelRead ENDED")
}

// Loop is the only goroutine touching ps.Play.
func (ps *PlayerSession) Loop() {
	log.Info("PlayerSession.Loop start")
	for cm := range ps.Events {
		ps.MessagesToSend <- ps.Handle(cm)
	}
	ps.State = PS_OVER
	close(ps.MessagesToSend)
	log.Info("PlayerSession.Loop end")
}

// Handle applies one client command and builds the reply.
func (ps *PlayerSession) Handle(cm model.ClientMessage) model.ServerMessage {
	log.WithFields(log.Fields{
		"command": cm.Command.Name(),
		"session": ps.State.Name(),
	}).Debug("PlayerSession.Handle")
	switch cm.Command {
	case model.CmdNew:
		cfg := cm.Config
		if cfg.Rows == 0 && cfg.Cols == 0 {
			cfg = ps.Server.Config.Defaults
		}
		level, err := ps.Server.RequestLevel(cfg)
		if err != nil {
			return errorMessage(err)
		}
		return ps.start(level)
	case model.CmdReplay:
		id := cm.LevelID
		if id == "" {
			if ps.Play == nil {
				return errorMessage(ErrNoLevel)
			}
			id = ps.Play.Level.ID
		}
		level, err := ps.Server.History.Get(id)
		if err != nil {
			return errorMessage(errors.Wrapf(err, "replay %s", id))
		}
		return ps.start(level)
	case model.CmdMove:
		if ps.Play == nil {
			return errorMessage(ErrNoLevel)
		}
		return ps.move(cm.Direction)
	case model.CmdHistory:
		levels := ps.Server.History.List()
		out := model.ServerMessage{History: make([]model.LevelSummary, 0, len(levels))}
		for _, l := range levels {
			out.History = append(out.History, l.Summary())
		}
		return out
	default:
		return errorMessage(errors.Errorf("unknown command %d", cm.Command))
	}
}

func (ps *PlayerSession) start(level Level) model.ServerMessage {
	ps.Play = NewPlay(level)
	ps.State = PS_PLAY
	setup := level.Setup()
	setup.Visited = ps.Play.VisitedCells()
	return model.ServerMessage{Setup: []model.Setup{setup}}
}

func (ps *PlayerSession) move(d model.Direction) model.ServerMessage {
	play := ps.Play
	out := model.ServerMessage{Moves: []model.MoveSuccess{play.Step(d)}}
	if play.State != PlayWon {
		return out
	}

	best, improved, err := ps.Server.History.RecordScore(play.Level.ID, play.Score.FinalScore)
	if err != nil {
		log.WithError(err).Warn("PlayerSession.move cant record score")
		best = play.Score.FinalScore
	}
	play.Level.BestScore, play.Level.HasBest = best, true
	out.Results = []model.Result{{
		LevelID:           play.Level.ID,
		Steps:             play.Steps,
		MinSteps:          play.Level.MinSteps,
		EfficiencyPercent: play.Score.EfficiencyPercent,
		FoodPercent:       play.Score.FoodPercent,
		FinalScore:        play.Score.FinalScore,
		BestScore:         best,
		Improved:          improved,
	}}
	log.WithFields(log.Fields{
		"levelID": play.Level.ID,
		"steps":   play.Steps,
		"final":   play.Score.FinalScore,
		"best":    best,
		"play":    play.State.Name(),
	}).Info("level completed")
	// ready for another run on the same level
	play.Reset()
	return out
}

func errorMessage(err error) model.ServerMessage {
	log.WithError(err).Warn("PlayerSession request failed")
	return model.ServerMessage{Errors: []string{err.Error()}}
}

// this function only consumes. no worries about full buffer stuck
func (ps *PlayerSession) LoopChannelWrite() {
	log.Printf("PlayerSession.LoopChannelWrite STARTED")
	defer close(ps.GameOver)
	broken := false
	for mes := range ps.MessagesToSend {
		if broken {
			continue
		}
		if err := ps.write(mes); err != nil {
			log.Warnf("PlayerSession.LoopChannelWrite %v", err)
			broken = true
			// unblocks LoopChannelRead
			ps.Conn.Close()
			continue
		}
		ps.DebugOutMessages++
	}
	log.Printf("LoopChannelWrite ENDED")
}

func (ps *PlayerSession) write(mes model.ServerMessage) error {
	w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return errors.Wrap(err, "cant get writer")
	}
	if err = gob.NewEncoder(w).Encode(mes); err != nil {
		return errors.Wrap(err, "cant encode")
	}
	return errors.Wrap(w.Close(), "cant close writer")
}
