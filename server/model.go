package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/antmaze/generator"
	"github.com/zucenko/antmaze/model"
	"github.com/zucenko/antmaze/score"
	"github.com/zyedidia/generic/mapset"
)

type GameServer struct {
	Config        Config
	History       *History
	LevelRequests chan LevelRequest
	Upgrader      *websocket.Upgrader
	generator     *generator.Generator
}

// Level is one generated maze as kept in the history. Grid is the original
// layout and is never played on directly.
type Level struct {
	ID         string
	Created    time.Time
	Config     model.LevelConfig
	Grid       *model.Grid
	Start      model.Position
	Exit       model.Position
	MinSteps   int
	MaxFood    int
	TotalCells int
	BestScore  int
	HasBest    bool
}

type LevelRequest struct {
	Config model.LevelConfig
	Reply  chan LevelReply
}

type LevelReply struct {
	Level Level
	Err   error
}

type PlayState int

const (
	PlayPlaying PlayState = iota + 1
	PlayWon
)

// Play is the mutable state of one attempt at a level.
type Play struct {
	Level     Level
	Grid      *model.Grid
	Ant       model.Position
	Visited   mapset.Set[model.Position]
	Steps     int
	Collected int
	State     PlayState
	Score     score.Result
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
)

type PlayerSession struct {
	State    PlayerSessionState
	Server   *GameServer
	Conn     *websocket.Conn
	Play     *Play
	GameOver chan struct{}

	Events         chan model.ClientMessage
	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
}
