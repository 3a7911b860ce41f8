// Package game implements the main game loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/driftlabs/driftline/internal/config"
	"github.com/driftlabs/driftline/internal/engine/audio"
	"github.com/driftlabs/driftline/internal/engine/debug"
	"github.com/driftlabs/driftline/internal/engine/input"
	"github.com/driftlabs/driftline/internal/engine/renderer"
	"github.com/driftlabs/driftline/internal/engine/scene"
	"github.com/driftlabs/driftline/internal/engine/window"
	"github.com/driftlabs/driftline/internal/game/entity"
	"github.com/driftlabs/driftline/internal/game/hud"
	"github.com/driftlabs/driftline/internal/game/session"
	"github.com/driftlabs/driftline/internal/game/states"
	"github.com/driftlabs/driftline/internal/game/world"
	"github.com/driftlabs/driftline/internal/logger"
)

// tickRate is the fixed simulation rate. Rendering runs as fast as the
// display allows; the simulation always steps in 1/60 s increments.
const tickRate = 60

const tickDuration = time.Second / tickRate

// maxTicksPerFrame caps catch-up after a stall (window drag, debugger)
// so the simulation does not spiral.
const maxTicksPerFrame = 5

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager

	scene   *scene.Scene
	level   *world.Level
	session *session.Session
	states  *states.Manager

	screenshots    *debug.ScreenshotCapture
	takeScreenshot bool
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("quality", cfg.Graphics.Quality),
	)

	g := &Game{cfg: cfg}

	// Window first; it owns the OpenGL context the renderer needs.
	var err error
	g.window, err = window.New(window.Config{
		Title:      "Driftline",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.screenshots = debug.NewScreenshotCapture("screenshots", "driftline")

	if cfg.Audio.Enabled {
		g.audio = audio.New()
		if err := g.audio.Init(); err != nil {
			// No sound device is not fatal; race without cues.
			logger.Warn("audio unavailable", zap.Error(err))
			g.audio = nil
		} else {
			g.audio.SetMasterVolume(cfg.Audio.Volume)
		}
	}

	if err := g.loadRace(); err != nil {
		if g.audio != nil {
			g.audio.Close()
		}
		g.renderer.Close()
		g.window.Close()
		return nil, err
	}

	if cfg.Game.MouseLook {
		g.window.SetRelativeMouse(true)
	}

	logger.Info("game initialized")
	return g, nil
}

// loadRace builds the scene, the level, and the race session from the
// configured track definition.
func (g *Game) loadRace() error {
	def := world.DefaultDefinition()
	if g.cfg.Track.File != "" {
		loaded, err := world.LoadDefinition(g.cfg.Track.File)
		if err != nil {
			return fmt.Errorf("failed to load track %q: %w", g.cfg.Track.File, err)
		}
		def = loaded
	}
	logger.Info("track loaded",
		zap.String("name", def.Name),
		zap.Int("checkpoints", len(def.Checkpoints)),
		zap.Int("swords", len(def.Swords)),
	)

	tier := entity.ParseTier(g.cfg.Graphics.Quality)

	g.scene = scene.New()
	g.level = world.BuildLevel(g.scene, def, tier)

	h := hud.New(hud.NewTitleSink("Driftline", g.window))
	sess, err := session.New(g.scene, g.level, g.cfg.Vehicle, tier, h, time.Now())
	if err != nil {
		return err
	}
	sess.Camera().LookSensitivity = g.cfg.Game.LookSens
	g.session = sess

	g.states = states.NewManager()
	var sfx states.SFX
	if g.audio != nil {
		sess.SetSFX(g.audio)
		sfx = g.audio
	}
	g.states.Change(states.NewCountdown(g.session, g.states, sfx))
	return nil
}

// Run starts the main loop: poll input, advance the simulation in fixed
// ticks, render whatever time is left.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	var accumulator time.Duration

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		accumulator += now.Sub(lastTime)
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		sample := g.input.Sample()
		if !g.cfg.Game.MouseLook {
			sample.LookX, sample.LookY = 0, 0
		}

		if accumulator > maxTicksPerFrame*tickDuration {
			accumulator = maxTicksPerFrame * tickDuration
		}
		for accumulator >= tickDuration {
			accumulator -= tickDuration
			if err := g.states.Update(sample, now); err != nil {
				return fmt.Errorf("update error: %w", err)
			}
		}

		g.render()

		if g.takeScreenshot {
			g.takeScreenshot = false
			pixels, w, h := g.renderer.ReadPixels()
			if path, err := g.screenshots.CaptureFromPixels(pixels, w, h); err != nil {
				logger.Error("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.cfg.Game.ShowFPS {
				logger.Info("fps", zap.Int("frames", frameCount))
			} else {
				logger.Debug("fps", zap.Int("frames", frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(event.Width, event.Height)
		case input.EventKeyDown:
			switch event.Key {
			case 41: // SDL_SCANCODE_ESCAPE
				g.running = false
			case 69: // SDL_SCANCODE_F12
				g.takeScreenshot = true
			}
		}
	}
}

func (g *Game) render() {
	g.renderer.Begin(g.scene.ClearColor)
	g.renderer.DrawScene(g.scene, g.session.ViewMatrix())
	g.renderer.End()
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.scene != nil {
		g.scene.Dispose()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
