// Package main provides the fightsim binary, which simulates a character's
// fight against a monster using static item and monster content.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/fightsim/internal/config"
	"github.com/cory-johannsen/fightsim/internal/game/dice"
	"github.com/cory-johannsen/fightsim/internal/game/gear"
	"github.com/cory-johannsen/fightsim/internal/game/item"
	"github.com/cory-johannsen/fightsim/internal/game/monster"
	"github.com/cory-johannsen/fightsim/internal/game/optimizer"
	"github.com/cory-johannsen/fightsim/internal/game/simulator"
	"github.com/cory-johannsen/fightsim/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults and FIGHTSIM_* env")
	level := flag.Int("level", 1, "character level")
	monsterCode := flag.String("monster", "", "monster code to fight; empty = list farmable monsters")
	gearSpec := flag.String("gear", "", "equipped items as slot=code pairs, e.g. weapon=copper_dagger,ring1=copper_ring")
	missingHP := flag.Int("missing-hp", 0, "health missing at fight start")
	trials := flag.Int("trials", 0, "stochastic trials for the win rate; 0 = simulation.trials from config")
	mode := flag.String("mode", "", "stochastic or averaged; empty = simulation.mode from config")
	ignoreDeath := flag.Bool("ignore-death", false, "keep fighting after the character dies")
	rank := flag.Bool("rank", false, "rank every weapon usable at -level in place of the equipped one against -monster")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *mode != "" {
		cfg.Simulation.Mode = *mode
	}
	if *trials > 0 {
		cfg.Simulation.Trials = *trials
	}
	simMode, ok := simulator.ParseMode(cfg.Simulation.Mode)
	if !ok {
		logger.Fatal("unknown simulation mode", zap.String("mode", cfg.Simulation.Mode))
	}

	items, err := item.LoadItems(cfg.Content.ItemsDir)
	if err != nil {
		logger.Fatal("loading items", zap.Error(err))
	}
	itemReg, err := item.NewRegistryFrom(items)
	if err != nil {
		logger.Fatal("registering items", zap.Error(err))
	}
	defs, err := monster.LoadDefinitions(cfg.Content.MonstersDir)
	if err != nil {
		logger.Fatal("loading monsters", zap.Error(err))
	}
	monsterReg, err := monster.NewRegistry(defs)
	if err != nil {
		logger.Fatal("registering monsters", zap.Error(err))
	}
	logger.Info("content loaded", zap.Int("items", itemReg.Len()), zap.Int("monsters", len(defs)))

	codes, err := parseGear(*gearSpec)
	if err != nil {
		logger.Fatal("parsing gear", zap.Error(err))
	}
	g, err := gear.FromCodes(itemReg, codes)
	if err != nil {
		logger.Fatal("equipping gear", zap.Error(err))
	}
	char := g.Character(*level)

	params := simulator.DefaultParams()
	params.Utility1Quantity = cfg.Simulation.Utility1Quantity
	params.Utility2Quantity = cfg.Simulation.Utility2Quantity
	params.MissingHP = *missingHP
	params.Mode = simMode
	params.IgnoreDeath = *ignoreDeath

	ctx := context.Background()
	if cfg.Simulation.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Simulation.Timeout)
		defer cancel()
	}
	opt := optimizer.New(logger, cfg.Simulation.Workers)

	if *monsterCode == "" {
		listFarmable(char, monsterReg.UpToLevel(*level), params)
		return
	}

	def, ok := monsterReg.Get(*monsterCode)
	if !ok {
		logger.Fatal("unknown monster", zap.String("monster", *monsterCode))
	}
	target := def.Table()

	if *rank {
		candidates := weaponCandidates(g, itemReg, *level)
		ranked, err := opt.Rank(ctx, candidates, target, params)
		if err != nil {
			logger.Fatal("ranking weapons", zap.Error(err))
		}
		for i, r := range ranked {
			fmt.Fprintf(os.Stdout, "%2d. %-24s %s in %d turns, hp lost %d\n",
				i+1, r.Name, r.Result.Outcome, r.Result.Turns, r.Result.HPLost)
		}
		return
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	single := params
	single.Source = dice.NewLoggedSource(dice.NewSeededSource(seed), logger)
	single.OnTurn = observability.TurnLogger(logger)
	res := simulator.Fight(char, target, single)
	fmt.Fprintf(os.Stdout, "level %d vs %s (%s): %s in %d turns, hp %d, monster hp %d, hp lost %d, cooldown %s\n",
		*level, def.Name, simMode, res.Outcome, res.Turns,
		res.HP, res.MonsterHP, res.HPLost, res.Cooldown())

	if simMode != simulator.Stochastic {
		return
	}
	wr, err := opt.WinRate(ctx, char, target, params, cfg.Simulation.Trials, seed)
	if err != nil {
		logger.Fatal("estimating win rate", zap.Error(err))
	}
	fmt.Fprintf(os.Stdout, "win rate %.1f%% over %d trials (mean %.1f turns, mean hp lost %.1f)\n",
		100*wr.Rate(), wr.Trials, wr.MeanTurns, wr.MeanHPLost)
}

// listFarmable prints every monster the character beats in an averaged fight.
func listFarmable(char simulator.Character, defs []*monster.Definition, p simulator.Params) {
	for _, d := range defs {
		if optimizer.Farmable(char, d.Table(), p) {
			fmt.Fprintf(os.Stdout, "%-24s level %d\n", d.Code, d.Level)
		}
	}
}

// weaponCandidates returns one candidate per weapon usable at level, each
// wearing base with that weapon swapped into the weapon slot.
func weaponCandidates(base *gear.Gear, reg *item.Registry, level int) []optimizer.Candidate {
	var out []optimizer.Candidate
	for _, w := range reg.EquipableAt(item.TypeWeapon, level) {
		g := base.Clone()
		if err := g.Equip(gear.SlotWeapon, w); err != nil {
			continue
		}
		out = append(out, optimizer.Candidate{Name: w.Code, Character: g.Character(level)})
	}
	return out
}

// parseGear splits "slot=code,slot=code" into a slot name to item code map.
func parseGear(spec string) (map[string]string, error) {
	out := make(map[string]string)
	if strings.TrimSpace(spec) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(spec, ",") {
		slot, code, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || slot == "" || code == "" {
			return nil, fmt.Errorf("gear entry %q must be slot=code", pair)
		}
		if _, dup := out[slot]; dup {
			return nil, fmt.Errorf("slot %q given more than once", slot)
		}
		out[slot] = code
	}
	return out, nil
}
