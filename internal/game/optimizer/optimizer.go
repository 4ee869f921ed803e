// Package optimizer fans many independent fight simulations out over a
// bounded worker pool: ranking candidate loadouts against one monster and
// estimating a stochastic win rate.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/fightsim/internal/game/dice"
	"github.com/cory-johannsen/fightsim/internal/game/effect"
	"github.com/cory-johannsen/fightsim/internal/game/simulator"
)

// Candidate is a named character setup to evaluate.
type Candidate struct {
	Name      string
	Character simulator.Character
}

// Ranked pairs a Candidate with its averaged fight result.
type Ranked struct {
	Candidate
	Result simulator.Result
}

// WinRate summarises a batch of stochastic trials.
type WinRate struct {
	RunID  string
	Trials int
	Wins   int
	// MeanTurns and MeanHPLost average over all trials.
	MeanTurns  float64
	MeanHPLost float64
}

// Rate returns Wins/Trials, or 0 when no trials ran.
func (w WinRate) Rate() float64 {
	if w.Trials == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.Trials)
}

// Optimizer runs simulations concurrently.
type Optimizer struct {
	logger  *zap.Logger
	workers int
}

// New returns an Optimizer with at most workers concurrent simulations.
//
// Precondition: logger must not be nil.
// Postcondition: workers <= 0 is replaced by runtime.NumCPU().
func New(logger *zap.Logger, workers int) *Optimizer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Optimizer{logger: logger, workers: workers}
}

// Workers returns the concurrency limit.
func (o *Optimizer) Workers() int { return o.workers }

// Rank simulates every candidate against monster in Averaged mode and orders
// them best first: wins before losses, then least health lost, then fewest
// turns, then by name.
//
// Postcondition: Returns ctx.Err() if ctx is cancelled before all candidates
// are evaluated. p.OnTurn is ignored.
func (o *Optimizer) Rank(ctx context.Context, candidates []Candidate, monster effect.Table, p simulator.Params) ([]Ranked, error) {
	if len(candidates) == 0 {
		return nil, errors.New("optimizer: Rank: no candidates")
	}
	runID := uuid.New().String()
	log := o.logger.With(zap.String("run_id", runID))
	log.Info("ranking candidates", zap.Int("candidates", len(candidates)), zap.Int("workers", o.workers))
	start := time.Now()

	p = p.Averaged()
	p.OnTurn = nil
	out := make([]Ranked, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Ranked{Candidate: c, Result: simulator.Fight(c.Character, monster, p)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("optimizer: Rank: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool { return better(out[i], out[j]) })
	log.Info("ranking complete",
		zap.String("best", out[0].Name),
		zap.Stringer("best_outcome", out[0].Result.Outcome),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

func better(a, b Ranked) bool {
	if a.Result.Outcome != b.Result.Outcome {
		return a.Result.Outcome == simulator.Win
	}
	if a.Result.HPLost != b.Result.HPLost {
		return a.Result.HPLost < b.Result.HPLost
	}
	if a.Result.Turns != b.Result.Turns {
		return a.Result.Turns < b.Result.Turns
	}
	return a.Name < b.Name
}

// WinRate runs trials stochastic fights of char against monster. Trial i
// draws its crit rolls from dice.NewSeededSource(seed+i), so a given seed
// reproduces the same WinRate regardless of worker count.
//
// Precondition: trials > 0.
// Postcondition: Returns ctx.Err() if ctx is cancelled before all trials complete.
func (o *Optimizer) WinRate(ctx context.Context, char simulator.Character, monster effect.Table, p simulator.Params, trials int, seed uint64) (WinRate, error) {
	if trials <= 0 {
		return WinRate{}, fmt.Errorf("optimizer: WinRate: trials must be > 0, got %d", trials)
	}
	runID := uuid.New().String()
	log := o.logger.With(zap.String("run_id", runID))
	log.Info("estimating win rate", zap.Int("trials", trials), zap.Uint64("seed", seed), zap.Int("workers", o.workers))
	start := time.Now()

	p.Mode = simulator.Stochastic
	p.OnTurn = nil
	results := make([]simulator.Result, trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range trials {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tp := p
			tp.Source = dice.NewSeededSource(seed + uint64(i))
			results[i] = simulator.Fight(char, monster, tp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return WinRate{}, fmt.Errorf("optimizer: WinRate: %w", err)
	}

	wr := WinRate{RunID: runID, Trials: trials}
	var turns, lost int
	for _, r := range results {
		if r.IsWinning() {
			wr.Wins++
		}
		turns += r.Turns
		lost += r.HPLost
	}
	wr.MeanTurns = float64(turns) / float64(trials)
	wr.MeanHPLost = float64(lost) / float64(trials)

	log.Info("win rate estimated",
		zap.Int("wins", wr.Wins),
		zap.Float64("rate", wr.Rate()),
		zap.Float64("mean_turns", wr.MeanTurns),
		zap.Duration("elapsed", time.Since(start)),
	)
	return wr, nil
}

// Farmable reports whether char beats monster in an Averaged simulation.
func Farmable(char simulator.Character, monster effect.Table, p simulator.Params) bool {
	p.OnTurn = nil
	return simulator.Fight(char, monster, p.Averaged()).IsWinning()
}
