package server

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/zucenko/antmaze/model"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

var (
	ErrLevelNotFound = errors.New("level not found")
	ErrNoLevel       = errors.New("no level loaded")
	ErrTimeout       = errors.New("level request timed out")
	ErrBadConfig     = errors.New("bad configuration")
)

// ToHttp maps a server error to the status code used by the HTTP handlers.
func ToHttp(err error) int {
	switch errors.Cause(err) {
	case nil:
		return HTTP_SUCCESS
	case ErrLevelNotFound:
		return HTTP_NOT_FOUND
	case ErrTimeout:
		return HTTP_TIMEOUT
	case ErrNoLevel:
		return HTTP_BAD_REQUEST
	default:
		return HTTP_SERVER_ERR
	}
}

func (s PlayState) Name() string {
	switch s {
	case PlayPlaying:
		return "PLAYING"
	case PlayWon:
		return "WON"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

func (ps PlayerSessionState) Name() string {
	switch ps {
	case PS_NEW:
		return "NEW"
	case PS_PLAY:
		return "PLAY"
	case PS_OVER:
		return "OVER"
	default:
		return "N/A"
	}
}

func (l Level) Summary() model.LevelSummary {
	return model.LevelSummary{
		LevelID:   l.ID,
		Created:   l.Created,
		Rows:      l.Config.Rows,
		Cols:      l.Config.Cols,
		MoreWalls: l.Config.MoreWalls,
		MoreFood:  l.Config.MoreFood,
		MinSteps:  l.MinSteps,
		MaxFood:   l.MaxFood,
		BestScore: l.BestScore,
		HasBest:   l.HasBest,
	}
}

func (l Level) Setup() model.Setup {
	return model.Setup{
		LevelID:    l.ID,
		Grid:       *l.Grid.Clone(),
		Start:      l.Start,
		Exit:       l.Exit,
		MinSteps:   l.MinSteps,
		MaxFood:    l.MaxFood,
		TotalCells: l.TotalCells,
		BestScore:  l.BestScore,
		HasBest:    l.HasBest,
	}
}
