// Package main provides an interactive viewer for testing the excitement
// overlay against a neutral host background.
//
// Usage:
//
//	go run cmd/fanfare-viewer/main.go [flags]
//
// Flags:
//
//	--themes <path>   Load a theme override YAML file
//	--payload <path>  On start, apply a JSON payload file once
//
// Controls:
//
//	1    - Trigger "Authentic" verdict (confidence 0.92)
//	2    - Trigger "Authentic" verdict (confidence 0.70)
//	3    - Trigger "Plausible" verdict
//	4    - Trigger "Hallucination" verdict (confidence 0.85)
//	5    - Trigger echo_sense bonus only (score 0.95)
//	C    - Trigger a raw confetti payload (high intensity)
//	B    - Trigger a raw balloons payload
//	F    - Trigger a raw fireworks payload
//	Q/Escape - Quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/fanfare/internal/payload"
	"github.com/gonewx/fanfare/pkg/config"
	"github.com/gonewx/fanfare/pkg/overlay"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	themesFlag  = flag.String("themes", "", "Theme override YAML file")
	payloadFlag = flag.String("payload", "", "JSON payload file to apply on start")
)

// ViewerGame implements ebiten.Game and hosts one overlay instance.
type ViewerGame struct {
	overlay *overlay.Overlay

	statusMessage string
}

// NewViewerGame creates the viewer. Settings persist across runs via
// gdata; when the storage backend is unavailable the viewer falls back
// to in-memory settings.
func NewViewerGame() (*ViewerGame, error) {
	gdataManager, err := gdata.Open(gdata.Config{AppName: "fanfare-viewer"})
	if err != nil {
		log.Printf("Warning: persistent settings unavailable: %v", err)
		gdataManager = nil
	}

	sm, err := overlay.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to init settings: %w", err)
	}

	ov := overlay.New(screenWidth, screenHeight, sm)

	if *themesFlag != "" {
		themes, err := config.LoadThemeConfig(*themesFlag)
		if err != nil {
			log.Printf("Warning: failed to load themes: %v (using defaults)", err)
		} else {
			ov.SetThemes(themes)
		}
	}

	g := &ViewerGame{
		overlay:       ov,
		statusMessage: "Press 1-5 for verdicts, C/B/F for raw effects",
	}

	if *payloadFlag != "" {
		data, err := os.ReadFile(*payloadFlag)
		if err != nil {
			log.Printf("Warning: failed to read payload file: %v", err)
		} else {
			ov.TriggerPayload(data)
			g.statusMessage = fmt.Sprintf("Applied payload from %s", *payloadFlag)
		}
	}

	return g, nil
}

// Update handles input and advances the overlay one tick.
func (g *ViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.overlay.TriggerVerdict("Authentic", 0.92, 0.5)
		g.statusMessage = "Verdict: Authentic (0.92)"
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.overlay.TriggerVerdict("Authentic", 0.70, 0.5)
		g.statusMessage = "Verdict: Authentic (0.70)"
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.overlay.TriggerVerdict("Plausible", 0.50, 0.5)
		g.statusMessage = "Verdict: Plausible"
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		g.overlay.TriggerVerdict("Hallucination", 0.85, 0.5)
		g.statusMessage = "Verdict: Hallucination (0.85)"
	case inpututil.IsKeyJustPressed(ebiten.Key5):
		g.overlay.TriggerVerdict("", 0.0, 0.95)
		g.statusMessage = "EchoSense bonus (0.95)"
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.triggerRaw(payload.TriggerSpec{
			Type:      payload.EffectConfetti,
			Intensity: payload.IntensityHigh,
			Colors:    []string{"red", "gold", "blue", "green"},
			Message:   "Confetti!",
		})
		g.statusMessage = "Raw confetti (high)"
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.triggerRaw(payload.TriggerSpec{
			Type:   payload.EffectBalloons,
			Count:  8,
			Colors: []string{"pink", "purple", "yellow"},
		})
		g.statusMessage = "Raw balloons x8"
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.triggerRaw(payload.TriggerSpec{
			Type:   payload.EffectFireworks,
			Count:  4,
			Colors: []string{"gold", "silver", "red"},
		})
		g.statusMessage = "Raw fireworks x4"
	}

	g.overlay.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *ViewerGame) triggerRaw(spec payload.TriggerSpec) {
	g.overlay.Trigger(&payload.ExcitementPayload{
		ExcitementEnabled: true,
		Triggers:          []payload.TriggerSpec{spec},
	})
}

// Draw paints the neutral host background and composites the overlay.
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 28, B: 36, A: 255})

	ebitenutil.DebugPrintAt(screen, g.statusMessage, 10, 10)
	if g.overlay.Active() {
		ebitenutil.DebugPrintAt(screen, "[overlay active]", 10, 26)
	}

	g.overlay.Draw(screen)
}

// Layout 设置屏幕布局
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	game, err := NewViewerGame()
	if err != nil {
		log.Fatalf("Failed to create viewer: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Fanfare Overlay Viewer")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
