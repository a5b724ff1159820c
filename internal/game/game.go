package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mysterymachine/internal/encounter"
	"github.com/samdwyer/mysterymachine/internal/entity"
	"github.com/samdwyer/mysterymachine/internal/event"
	"github.com/samdwyer/mysterymachine/internal/logger"
	"github.com/samdwyer/mysterymachine/internal/rng"
	"github.com/samdwyer/mysterymachine/internal/storage"
	"github.com/samdwyer/mysterymachine/internal/telemetry"
	"github.com/samdwyer/mysterymachine/internal/ui"
	"github.com/samdwyer/mysterymachine/internal/world"
)

const (
	travelCost  = 1 // Fuel per tile travelled
	travelHours = 6 // Hours per tile travelled
	searchHours = 1 // Hours per search
)

// Game holds the entire game state.
type Game struct {
	cfg   Config
	out   ui.Presenter
	rand  rng.Source
	slot  storage.Slot
	world *World
}

// New creates a new game instance. The world is created or loaded by Init.
func New(cfg Config, out ui.Presenter, src rng.Source, slot storage.Slot) *Game {
	return &Game{
		cfg:  cfg,
		out:  out,
		rand: src,
		slot: slot,
	}
}

// World returns the current world, or nil before Init.
func (g *Game) World() *World { return g.world }

// scene bundles the party with the game's collaborators.
func (g *Game) scene() *entity.Scene {
	return &entity.Scene{
		Party: g.world.Party,
		Names: g.world.NamePool,
		Out:   g.out,
		Rand:  g.rand,
	}
}

// Run executes the main game loop until the party is wiped out.
// It returns an error only when the world cannot be saved.
func (g *Game) Run(ctx context.Context) error {
	g.Init(ctx)

	for !g.world.Party.Extinct() {
		if err := g.Turn(ctx); err != nil {
			return err
		}
	}

	g.end()
	return nil
}

// Init loads the saved world if the player wants it, otherwise erases the
// save and starts a new run.
func (g *Game) Init(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.out.Clear()

	if w := g.load(); w != nil {
		g.world = w
		span.SetAttributes(attribute.Bool("loaded", true))
		logger.Log.WithField("clock", w.Clock.String()).Info("Game loaded")
		return
	}

	if err := g.slot.Erase(); err != nil {
		logger.Log.WithError(err).Warn("Failed to erase save")
	}
	g.world = g.newWorld(ctx)
	span.SetAttributes(
		attribute.Bool("loaded", false),
		attribute.Int("map.width", g.world.Map.Width),
		attribute.Int("map.height", g.world.Map.Height),
	)
	logger.Log.WithField("character", g.world.Party.Members[0].Name).Info("New game started")
}

// load returns the saved world when one exists and the player accepts it.
// Unreadable saves count as no save.
func (g *Game) load() *World {
	data, err := g.slot.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrNoSave) {
			logger.Log.WithError(err).Debug("Save unreadable")
		}
		return nil
	}
	w, err := DecodeWorld(data)
	if err != nil {
		logger.Log.WithError(err).Debug("Save unreadable")
		return nil
	}

	g.out.PrintLine("Savegame found.")
	g.out.Pause()
	g.out.PrintLine("Would you like to load it? (y/n)")
	g.out.PrintLine("If you select no, the savegame will be erased.")
	for {
		g.out.Print(": ")
		switch ui.Input(g.out) {
		case "y", "yes":
			return w
		case "n", "no":
			return nil
		default:
			g.out.PrintLine("Invalid option.")
		}
	}
}

// newWorld plays the intro and character selection.
func (g *Game) newWorld(ctx context.Context) *World {
	out := g.out
	out.Print("Day 0")
	out.Ellipsis()
	out.PrintLine("\nEver since the outbreak, the gang were completely separated.")
	out.Pause()
	out.PrintLine("With the power grid down, it's almost impossible to contact others.")
	out.Pause()
	out.PrintLine("Resources are limited, and the infection gets worse with every passing day.")
	out.Wait()

	chosen := g.chooseCharacter()
	scoob := entity.Scoob()
	party := entity.NewParty(g.rand.IntRange(4, 5), g.rand.IntRange(4, 6), chosen, scoob)

	ui.Printf(out, "%s is able to locate the mystery machine", chosen.Name)
	out.Ellipsis()
	ui.Linef(out, "\n%s is still inside.", scoob.Name)
	for _, m := range party.Members {
		out.PrintLine(m.String() + "\n")
	}
	out.Wait()

	return &World{
		Clock:    world.NewClock(),
		Map:      world.NewMap(ctx, g.rand, g.cfg.MapWidth, g.cfg.MapHeight),
		Party:    party,
		NamePool: entity.NewNamePool(),
	}
}

func (g *Game) chooseCharacter() *entity.Member {
	playable := entity.Playable()
	for {
		g.out.PrintLine("Please choose a character by selecting their number: ")
		for i, def := range playable {
			ui.Linef(g.out, "(%d) %s", i+1, def.Name)
		}
		g.out.Print(": ")

		choice, err := strconv.Atoi(ui.Input(g.out))
		if err == nil && choice >= 1 && choice <= len(playable) {
			return entity.FromDef(playable[choice-1])
		}
		g.out.PrintLine("Invalid option.")
	}
}

// header prints the clock and the party summary.
func (g *Game) header() {
	g.out.PrintLine(g.world.Clock.String())
	g.out.PrintLine(g.world.Party.Summary())
}

// Turn shows the action menu, performs one action and saves the world.
func (g *Game) Turn(ctx context.Context) error {
	g.out.Clear()
	g.header()

	action := g.chooseAction()

	tracer := telemetry.Tracer("game")
	actx, span := tracer.Start(ctx, "game.action")
	span.SetAttributes(attribute.String("action", action.String()))
	logger.Log.WithField("action", action.String()).Info("Action chosen")

	switch action {
	case ActionShowMembers:
		g.scene().ShowMembers()
	case ActionShowMap:
		g.showMap()
	case ActionExplore:
		g.search(actx)
	case ActionFeed:
		g.scene().Feed()
	case ActionCure:
		g.scene().Cure()
	}
	span.End()

	return g.save(ctx)
}

func (g *Game) chooseAction() Action {
	for {
		g.out.PrintLine("\nWhat is your next action?")
		for _, item := range menu {
			ui.Linef(g.out, "(%d) %s", int(item.action), item.label)
		}
		g.out.Print(": ")

		action, ok := ParseAction(ui.Input(g.out))
		g.out.PrintLine("")
		if ok {
			return action
		}
		g.out.PrintLine("Invalid option.")
	}
}

// showMap displays the map and lets the party travel one tile at a time
// until the player closes it or the fuel runs out.
func (g *Game) showMap() {
	w := g.world
	for {
		g.out.Clear()
		g.out.PrintLine(w.Clock.String())
		g.out.PrintLine(w.Map.String())
		ui.Linef(g.out, "Travel will cost %d fuel and will take %d hours.", travelCost, travelHours)

		if w.Party.Fuel < travelCost {
			g.out.PrintLine("You do not have enough fuel to travel.")
			g.out.Wait()
			return
		}
		ui.Linef(g.out, "You have %d fuel.", w.Party.Fuel)

		dir, ok := g.askDirection()
		if !ok {
			return
		}

		w.Map.Travel(dir)
		w.Clock.Advance(travelHours)
		w.Party.Fuel -= travelCost
		logger.Log.WithFields(logrus.Fields{
			"direction": dir.String(),
			"x":         w.Map.Position.X,
			"y":         w.Map.Position.Y,
			"fuel":      w.Party.Fuel,
		}).Debug("Travelled")

		ui.Printf(g.out, "The party packs into the mystery machine, and you spend the next %d hours travelling", travelHours)
		g.out.Ellipsis()
		g.out.Ellipsis()
		g.out.PrintLine("")
	}
}

// askDirection reads a compass direction, or ok=false for back.
func (g *Game) askDirection() (world.Direction, bool) {
	for {
		g.out.PrintLine("Enter a compass direction to travel, or `back` to close the map.")
		g.out.Print(": ")
		in := ui.Input(g.out)
		if in == "back" {
			return 0, false
		}
		if dir, ok := world.ParseDirection(in); ok {
			return dir, true
		}
		g.out.PrintLine("Invalid option.")
	}
}

// search explores the current tile: a scripted encounter on the first
// visit to a point of interest, otherwise a roll on the tile's table.
func (g *Game) search(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "party.search")
	defer span.End()

	w := g.world
	tile := w.Map.Current()
	s := g.scene()

	g.out.Clear()
	g.header()
	g.out.PrintLine("")

	if tile.HasLocation() && !tile.Explored {
		span.SetAttributes(attribute.String("location", tile.Location.String()))
		encounter.Run(ctx, s, tile.Location)
	} else {
		e := event.Roll(g.rand, tile.EventTable(w.Clock.IsNight()))
		span.SetAttributes(attribute.String("event", e.String()))
		event.Handle(ctx, s, e)
	}

	w.Party.Normalise()
	w.Clock.Advance(searchHours)

	if !w.Party.Extinct() {
		s.InfectionTick(ctx)
		g.out.Wait()
	}

	w.Map.Explore()
	span.SetAttributes(attribute.Int("members", len(w.Party.Members)))
}

// save writes the world to the slot.
func (g *Game) save(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.save")
	defer span.End()

	data, err := g.world.Encode()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("save world: %w", err)
	}
	if err := g.slot.Save(data); err != nil {
		span.RecordError(err)
		return fmt.Errorf("save world: %w", err)
	}
	span.SetAttributes(attribute.Int("bytes", len(data)))
	logger.Log.WithField("bytes", len(data)).Debug("World saved")
	return nil
}

// end erases the save and shows the final report.
func (g *Game) end() {
	w := g.world
	if err := g.slot.Erase(); err != nil {
		logger.Log.WithError(err).Warn("Failed to erase save")
	}
	logger.Log.WithField("clock", w.Clock.String()).Info("Party wiped out")

	g.out.PrintLine("As the last member collapses to the ground, the surrounding area grows quiet once again...")
	g.out.Wait()
	g.out.Clear()
	g.out.PrintLine("Final stats for this run:\n" + w.Party.String())
	g.out.PrintLine("\nMap:\n\n" + w.Map.String())
	g.out.Wait()
}
