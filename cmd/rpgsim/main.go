// Command rpgsim runs a synthetic host-game loop against the RPG overlay:
// it registers the skill library, spawns a pair of players, feeds game
// events through their skill sets, and levels skills through the economy.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gorpg/internal/config"
	"github.com/udisondev/gorpg/internal/economy"
	"github.com/udisondev/gorpg/internal/model"
	"github.com/udisondev/gorpg/internal/skill"
	"github.com/udisondev/gorpg/internal/skill/skills"
	"github.com/udisondev/gorpg/internal/tick"
)

const configPath = "config/overlay.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("rpgsim failed", "error", err)
		os.Exit(1)
	}
}

// participant is one simulated player with a credit bank and skill set.
type participant struct {
	player *model.Player
	bank   *economy.Bank
	skills []*skill.Skill
}

func run(ctx context.Context) error {
	cfg, err := config.LoadOverlay(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogger(cfg.LogLevel)

	catalog := skill.NewCatalog()
	if err := skills.RegisterAllSkills(catalog); err != nil {
		return fmt.Errorf("registering skills: %w", err)
	}
	for _, d := range catalog.List() {
		if info, ok := catalog.Describe(d.ClassID()); ok && cfg.SkillEnabled(info.ClassID) {
			slog.Debug("skill available",
				"skill", info.DisplayName,
				"maxLevel", info.MaxLevel,
				"description", info.Description)
		}
	}

	sched := tick.NewScheduler()
	defer sched.Shutdown()

	parts, closers, err := setupParticipants(cfg, catalog, sched)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return eventLoop(ctx, parts) })
	g.Go(func() error { return economyLoop(ctx, parts) })

	slog.Info("rpgsim running", "players", len(parts), "skills", catalog.Len())
	return g.Wait()
}

// setupParticipants creates the simulated players and instantiates every
// enabled skill for each of them.
func setupParticipants(cfg config.Overlay, catalog *skill.Catalog, sched *tick.Scheduler) ([]*participant, []*skill.TickSkill, error) {
	var parts []*participant
	var closers []*skill.TickSkill

	for i, name := range []string{"Alice", "Bob"} {
		player, err := model.NewPlayer(uint32(i+1), name)
		if err != nil {
			return nil, nil, fmt.Errorf("creating player %s: %w", name, err)
		}

		p := &participant{
			player: player,
			bank:   economy.NewBank(cfg.StartCredits),
		}

		for _, desc := range catalog.List() {
			if !cfg.SkillEnabled(desc.ClassID()) {
				continue
			}
			if desc.ClassID() == "Regeneration" {
				ts, err := skills.NewRegenerationSkill(desc, 0, sched, cfg.TickInterval(), player)
				if err != nil {
					return nil, nil, fmt.Errorf("creating %s for %s: %w", desc.ClassID(), name, err)
				}
				closers = append(closers, ts)
				p.skills = append(p.skills, ts.Skill)
				continue
			}
			s, err := skill.NewSkill(desc, 0)
			if err != nil {
				return nil, nil, fmt.Errorf("creating %s for %s: %w", desc.ClassID(), name, err)
			}
			p.skills = append(p.skills, s)
		}

		parts = append(parts, p)
	}

	return parts, closers, nil
}

// eventLoop feeds synthetic spawn/attack events through the skill sets.
func eventLoop(ctx context.Context, parts []*participant) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for round := 0; ; round++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		attacker := parts[round%len(parts)]
		victim := parts[(round+1)%len(parts)]
		damage := int32(10 + rand.IntN(20))

		events := []*skill.Event{
			skill.NewEvent("player_attack", attacker.player).
				WithParam("damage", damage).
				WithParam("victim", victim.player),
			skill.NewEvent("player_victim", victim.player).
				WithParam("damage", damage).
				WithParam("attacker", attacker.player),
		}
		victim.player.AddHealth(-damage)
		if !victim.player.IsAlive() {
			victim.player.SetHealth(victim.player.MaxHealth())
			events = append(events, skill.NewEvent("player_spawn", victim.player))
		}

		for _, ev := range events {
			target := attacker
			if ev.Player != attacker.player {
				target = victim
			}
			for _, s := range target.skills {
				if err := s.HandleEvent(ev); err != nil {
					slog.Error("event dispatch failed", "event", ev.Name, "error", err)
				}
			}
		}
	}
}

// economyLoop periodically grants credits and buys random skill upgrades.
func economyLoop(ctx context.Context, parts []*participant) error {
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		for _, p := range parts {
			if len(p.skills) == 0 {
				continue
			}
			p.bank.Deposit(10)
			s := p.skills[rand.IntN(len(p.skills))]
			if err := economy.Upgrade(p.bank, s); err != nil {
				slog.Debug("upgrade skipped", "player", p.player.Name(), "error", err)
				continue
			}
			slog.Info("skill upgraded",
				"player", p.player.Name(),
				"skill", s.Descriptor().DisplayName(),
				"level", s.Level())
		}
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
