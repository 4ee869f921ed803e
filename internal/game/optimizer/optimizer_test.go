package optimizer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fightsim/internal/game/effect"
	"github.com/cory-johannsen/fightsim/internal/game/optimizer"
	"github.com/cory-johannsen/fightsim/internal/game/simulator"
)

var training = effect.Table{
	{Code: effect.HP, Value: 200},
	{Code: "attack_fire", Value: 20},
}

func fighter(crit int, extra ...effect.Effect) simulator.Character {
	fx := effect.Table{
		{Code: "attack_fire", Value: 50},
		{Code: effect.CriticalStrike, Value: crit},
	}
	return simulator.Character{Level: 30, Effects: append(fx, extra...)}
}

func TestRank_OrdersWinsThenHealthLost(t *testing.T) {
	opt := optimizer.New(zap.NewNop(), 2)
	ranked, err := opt.Rank(context.Background(), []optimizer.Candidate{
		{Name: "idle", Character: simulator.Character{Level: 30}},
		{Name: "striker", Character: fighter(10)},
		{Name: "tank", Character: fighter(10, effect.Effect{Code: "res_fire", Value: 50})},
	}, training, simulator.DefaultParams())
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "tank", ranked[0].Name)
	assert.Equal(t, 30, ranked[0].Result.HPLost)
	assert.Equal(t, "striker", ranked[1].Name)
	assert.Equal(t, 60, ranked[1].Result.HPLost)
	assert.Equal(t, "idle", ranked[2].Name)
	assert.Equal(t, simulator.Loss, ranked[2].Result.Outcome)
}

func TestRank_TiesBreakByName(t *testing.T) {
	opt := optimizer.New(zap.NewNop(), 4)
	ranked, err := opt.Rank(context.Background(), []optimizer.Candidate{
		{Name: "b", Character: fighter(10)},
		{Name: "a", Character: fighter(10)},
	}, training, simulator.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

func TestRank_Errors(t *testing.T) {
	opt := optimizer.New(zap.NewNop(), 1)
	_, err := opt.Rank(context.Background(), nil, training, simulator.DefaultParams())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = opt.Rank(ctx, []optimizer.Candidate{{Name: "x", Character: fighter(10)}}, training, simulator.DefaultParams())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWinRate_CertainCritAlwaysWins(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	opt := optimizer.New(zap.New(core), 3)

	wr, err := opt.WinRate(context.Background(), fighter(100), training, simulator.DefaultParams(), 25, 7)
	require.NoError(t, err)
	assert.Equal(t, 25, wr.Trials)
	assert.Equal(t, 25, wr.Wins)
	assert.InDelta(t, 1.0, wr.Rate(), 1e-9)
	assert.NotEmpty(t, wr.RunID)

	done := logs.FilterMessage("win rate estimated").All()
	require.Len(t, done, 1)
	assert.Equal(t, wr.RunID, done[0].ContextMap()["run_id"])
}

func TestWinRate_Errors(t *testing.T) {
	opt := optimizer.New(zap.NewNop(), 1)
	_, err := opt.WinRate(context.Background(), fighter(10), training, simulator.DefaultParams(), 0, 1)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = opt.WinRate(ctx, fighter(10), training, simulator.DefaultParams(), 5, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWinRate_ZeroValue(t *testing.T) {
	assert.Zero(t, optimizer.WinRate{}.Rate())
}

func TestNew_DefaultsWorkers(t *testing.T) {
	assert.Positive(t, optimizer.New(zap.NewNop(), 0).Workers())
	assert.Equal(t, 3, optimizer.New(zap.NewNop(), 3).Workers())
}

func TestFarmable(t *testing.T) {
	p := simulator.DefaultParams()
	assert.True(t, optimizer.Farmable(fighter(10), training, p))
	assert.False(t, optimizer.Farmable(simulator.Character{Level: 30}, training, p))
}

func TestProperty_WinRate_ReproducibleAcrossWorkerCounts(t *testing.T) {
	// A lean character with a coin-flip crit makes the outcome depend on the rolls.
	monster := effect.Table{
		{Code: effect.HP, Value: 400},
		{Code: "attack_earth", Value: 30},
	}
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		workers := rapid.IntRange(1, 8).Draw(rt, "workers")
		char := simulator.Character{Level: 1, Effects: effect.Table{
			{Code: "attack_fire", Value: 20},
			{Code: effect.CriticalStrike, Value: 50},
		}}

		a, err := optimizer.New(zap.NewNop(), 1).WinRate(context.Background(), char, monster, simulator.DefaultParams(), 10, seed)
		require.NoError(rt, err)
		b, err := optimizer.New(zap.NewNop(), workers).WinRate(context.Background(), char, monster, simulator.DefaultParams(), 10, seed)
		require.NoError(rt, err)

		assert.Equal(rt, a.Wins, b.Wins)
		assert.Equal(rt, a.MeanTurns, b.MeanTurns)
		assert.Equal(rt, a.MeanHPLost, b.MeanHPLost)
	})
}
