package server

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	appplayers "github.com/preston-bernstein/team-roster-bot/internal/app/players"
	appteams "github.com/preston-bernstein/team-roster-bot/internal/app/teams"
	"github.com/preston-bernstein/team-roster-bot/internal/commands"
	"github.com/preston-bernstein/team-roster-bot/internal/interactions"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
	"github.com/preston-bernstein/team-roster-bot/internal/store"
)

// Core is the platform-independent part of the bot: the loaded roster, its
// services and the two front-end dispatchers.
type Core struct {
	Store    *store.Store
	Players  *appplayers.Service
	Teams    *appteams.Service
	Router   *interactions.Router
	Commands *commands.Handler
}

// globalRand draws from the runtime's goroutine-safe generator.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// NewCore loads the data file and wires services around it.
func NewCore(dataPath string, logger *slog.Logger, recorder *metrics.Recorder) (*Core, error) {
	st := store.New(store.NewFileStore(dataPath), logger, recorder)
	if err := st.Open(); err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	players := appplayers.NewService(st, globalRand{})
	teams := appteams.NewService(st)
	return &Core{
		Store:    st,
		Players:  players,
		Teams:    teams,
		Router:   interactions.NewRouter(st, players, teams, logger),
		Commands: commands.NewHandler(st, players, teams, logger, recorder),
	}, nil
}
