// Package game is the frame driver: it owns the level and the player and
// runs input, render, combat and enemy passes in a fixed order every tick.
package game

import (
	"gridshot/internal/audio"
	"gridshot/internal/character"
	"gridshot/internal/collision"
	"gridshot/internal/combat"
	"gridshot/internal/config"
	"gridshot/internal/event"
	"gridshot/internal/graphics"
	"gridshot/internal/items"
	"gridshot/internal/monster"
	"gridshot/internal/perf"
	"gridshot/internal/render"
	"gridshot/internal/world"
	"gridshot/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// GameState is the screen the game is on
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateVictory
	StateDead
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateVictory:
		return "victory"
	case StateDead:
		return "dead"
	}
	return "menu"
}

// Options are the optional collaborators of a Game.
type Options struct {
	Textures render.Textures
	Feedback *audio.Feedback // nil plays no sound
	Records  *RecordStore    // nil keeps records for this process only
	Monitor  *perf.PerformanceMonitor
}

type Game struct {
	config  *config.Config
	mapData *world.MapData
	roller  *items.Roller

	level  *Level
	player *character.Player
	cs     *collision.CollisionSystem
	scene  render.Scene

	renderer *render.Renderer
	resolver *combat.Resolver
	monitor  *perf.PerformanceMonitor
	events   *event.Queue
	sink     event.Sink
	feedback *audio.Feedback
	hud      *HUD
	records  *RecordStore
	input    *InputHandler

	gameState GameState
	elapsed   float64
	lastRank  int
	frame     render.Frame

	view   *ebiten.Image
	screen *graphics.Screen
	log    *logrus.Entry
}

// NewGame prepares a game on the title screen.
func NewGame(cfg *config.Config, md *world.MapData, opts Options) *Game {
	g := &Game{
		config:   cfg,
		mapData:  md,
		roller:   items.NewRoller(cfg.Spawns),
		monitor:  opts.Monitor,
		events:   event.NewQueue(),
		feedback: opts.Feedback,
		hud:      NewHUD(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		records:  opts.Records,
		input:    NewInputHandler(),
		log:      logger.Component("game"),
	}
	if g.monitor == nil {
		g.monitor = perf.NewPerformanceMonitor()
	}
	if g.records == nil {
		g.records = NewRecordStore(nil)
	}
	g.renderer = render.NewRenderer(cfg, opts.Textures, g.monitor)

	sinks := event.Fanout{g.hud}
	if g.feedback != nil {
		sinks = append(sinks, g.feedback)
	}
	g.sink = sinks
	return g
}

// Start (re)builds the level from the map and begins playing.
func (g *Game) Start() {
	g.level = BuildLevel(g.mapData, g.config, g.roller)
	g.player = character.NewPlayer(g.mapData.StartX, g.mapData.StartY, 0, g.config)
	g.cs = collision.NewCollisionSystem(g.level.Grid, g.level.Blockers())
	g.resolver = combat.NewResolver(g.config.Combat, g.events)
	g.events.Consume(func(event.Event) {})
	g.elapsed = 0
	g.lastRank = 0
	g.gameState = StatePlaying

	g.log.WithFields(logrus.Fields{
		"enemies":     len(g.level.Enemies),
		"pickups":     len(g.level.Pickups),
		"chests":      len(g.level.Chests),
		"decorations": len(g.level.Decorations),
	}).Info("level started")
}

// Close releases the renderer workers and audio players.
func (g *Game) Close() {
	g.renderer.Close()
	if g.feedback != nil {
		g.feedback.Close()
	}
}

func (g *Game) State() GameState { return g.gameState }

func (g *Game) Player() *character.Player { return g.player }

func (g *Game) Level() *Level { return g.level }

func (g *Game) Kills() int {
	if g.resolver == nil {
		return 0
	}
	return g.resolver.Kills()
}

func (g *Game) Elapsed() float64 { return g.elapsed }

// Step advances the game by dt seconds. While playing the order is fixed:
// player input and movement, the render pass into s, the player's attack
// against that frame, the enemy pass, then the outcome check and event
// delivery.
func (g *Game) Step(dt float64, in Intent, s render.Surface) {
	g.hud.Update(dt)
	if in.TogglePerf {
		g.hud.ShowPerf = !g.hud.ShowPerf
	}

	switch g.gameState {
	case StateMenu:
		if in.Confirm {
			g.Start()
		}
		return
	case StateVictory, StateDead:
		if in.Confirm {
			g.Start()
		} else if in.Menu {
			g.gameState = StateMenu
		}
		return
	}

	if in.ToggleMap {
		g.hud.Minimap.Toggle()
	}

	g.elapsed += dt
	g.level.TickPickups(dt)
	g.player.Tick(dt)
	g.handlePlayerInput(dt, in)

	g.frame = g.renderer.Render(s, g.sceneFor())

	if in.Fire {
		g.attack()
	}

	pass := g.monitor.StartPass(perf.PassAI)
	monster.UpdateEnemies(g.level.Enemies, g.player, dt, g.config.EnemyAI, g.cs, g.events)
	pass.End()

	g.checkOutcome()
	g.events.Consume(g.sink.Emit)
}

func (g *Game) handlePlayerInput(dt float64, in Intent) {
	p := g.player
	if in.Turn != 0 {
		p.Rotate(in.Turn * g.config.GetRotSpeed() * dt)
	}
	if in.Move != 0 {
		p.Advance(g.cs, in.Move*g.config.GetMoveSpeed()*dt, g.config.Movement.CollisionRadius)
	}

	if in.Select != keepSlot {
		p.Select(in.Select)
	}
	if in.Consume && p.UseConsumable() {
		g.events.Emit(event.Event{Kind: event.ConsumableStarted})
	}
	if in.Interact {
		g.level.Interact(p, g.roller, g.events)
	}
	if in.Reload {
		if w, ok := p.ActiveWeapon(); ok && p.StartReload() {
			g.events.Emit(event.Event{Kind: event.ReloadStarted, Weapon: w.Weapon.Type})
		}
	}
}

// attack fires the selected weapon or, with empty hands, punches.
func (g *Game) attack() {
	pass := g.monitor.StartPass(perf.PassCombat)
	defer pass.End()

	if g.player.Selected == character.NoSlot {
		g.resolver.Punch(g.frame, g.level.Enemies, g.player)
		return
	}
	w, res := g.player.PullTrigger()
	switch res {
	case character.FireShot:
		g.resolver.Fire(g.frame, g.level.Enemies, w)
	case character.FireReload:
		g.events.Emit(event.Event{Kind: event.ReloadStarted, Weapon: w.Type})
	}
}

func (g *Game) checkOutcome() {
	if g.player.HP <= 0 {
		g.gameState = StateDead
		g.log.WithFields(logrus.Fields{"time": formatTime(g.elapsed), "kills": g.Kills()}).Info("player died")
		return
	}
	if g.level.EnemiesLeft() > 0 {
		return
	}
	g.gameState = StateVictory
	g.events.Emit(event.Event{Kind: event.Victory})
	g.lastRank = g.records.Add(RunRecord{Time: g.elapsed, Kills: g.Kills()})
	g.log.WithFields(logrus.Fields{
		"time":  formatTime(g.elapsed),
		"kills": g.Kills(),
		"rank":  g.lastRank,
	}).Info("level cleared")
}

func (g *Game) sceneFor() *render.Scene {
	p := g.player
	g.scene = render.Scene{
		Grid:        g.level.Grid,
		Viewer:      render.NewViewer(p.X, p.Y, p.Angle, g.config.GetFOV(), g.config.GetScreenWidth()),
		Enemies:     g.level.Enemies,
		Pickups:     g.level.Pickups,
		Decorations: g.level.Decorations,
		Chests:      g.level.Chests,
	}
	return &g.scene
}
