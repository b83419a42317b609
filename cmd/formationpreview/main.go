// Formation preview tool - interactive tuning of the tree spiral with sliders.
//
// Usage: go run ./cmd/formationpreview
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/config"
	"github.com/pthm-cable/arix/systems"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// previewParams holds the values exposed as sliders.
type previewParams struct {
	TreeHeight    float32
	TreeRadius    float32
	ScatterRadius float32
	GoldenAngle   float32
	LeafNoise     float32
	OrnamentNoise float32
	LeafCount     float32
	Seed          float32
}

// slider is one labelled row in the control panel.
type slider struct {
	label    string
	value    *float32
	min, max float32
	format   string
}

func paramsFromConfig(cfg *config.Config) previewParams {
	return previewParams{
		TreeHeight:    float32(cfg.Scene.TreeHeight),
		TreeRadius:    float32(cfg.Scene.TreeRadius),
		ScatterRadius: float32(cfg.Scene.ScatterRadius),
		GoldenAngle:   float32(cfg.Scene.GoldenAngle),
		LeafNoise:     float32(cfg.Leaf.Noise),
		OrnamentNoise: float32(cfg.Ornament.Noise),
		LeafCount:     float32(cfg.Leaf.Count),
		Seed:          42,
	}
}

// apply writes the slider values into a copy of base.
func (p previewParams) apply(base *config.Config) (*config.Config, error) {
	cfg := *base
	cfg.Scene.TreeHeight = float64(p.TreeHeight)
	cfg.Scene.TreeRadius = float64(p.TreeRadius)
	cfg.Scene.ScatterRadius = float64(p.ScatterRadius)
	cfg.Scene.GoldenAngle = float64(p.GoldenAngle)
	cfg.Leaf.Noise = float64(p.LeafNoise)
	cfg.Ornament.Noise = float64(p.OrnamentNoise)
	cfg.Leaf.Count = int(p.LeafCount)
	if err := cfg.Refresh(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	base, err := config.Load("")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	palette, err := base.Palette.Colors()
	if err != nil {
		slog.Error("invalid palette", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Formation Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	target := rl.LoadRenderTexture(previewSize, previewSize)
	defer rl.UnloadRenderTexture(target)

	params := paramsFromConfig(base)
	mode := components.Assembled
	var ds *systems.Dataset
	var cfg *config.Config
	var lastErr error
	needsRegen := true
	orbit := float32(0)

	cam := rl.Camera3D{
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	sliders := []slider{
		{"Tree height", &params.TreeHeight, 2, 30, "%.1f"},
		{"Tree radius", &params.TreeRadius, 0.5, 12, "%.2f"},
		{"Scatter radius", &params.ScatterRadius, 2, 40, "%.1f"},
		{"Golden angle (rad)", &params.GoldenAngle, 0.1, 6.2, "%.5f"},
		{"Leaf noise", &params.LeafNoise, 0, 3, "%.2f"},
		{"Ornament noise", &params.OrnamentNoise, 0, 3, "%.2f"},
		{"Leaf count", &params.LeafCount, 1, 5000, "%.0f"},
		{"Seed", &params.Seed, 0, 99999, "%.0f"},
	}

	for !rl.WindowShouldClose() {
		if needsRegen {
			cfg, lastErr = params.apply(base)
			if lastErr == nil {
				rng := rand.New(rand.NewSource(int64(params.Seed)))
				ds, lastErr = systems.BuildDataset(cfg, rng)
			}
			needsRegen = false
		}

		orbit += rl.GetFrameTime() * 0.3
		dist := params.ScatterRadius * 2.2
		cam.Position = rl.NewVector3(dist*sinf(orbit), params.TreeHeight*0.3, dist*cosf(orbit))

		// Preview
		rl.BeginTextureMode(target)
		rl.ClearBackground(palette.Background)
		rl.BeginMode3D(cam)
		if ds != nil && lastErr == nil {
			ds.Each(func(slot components.Slot, rec *components.ParticleRecord) {
				p := rec.Target(mode)
				c := palette.Emerald
				size := float32(0.06)
				if slot.Category == components.Ornament {
					c = palette.Gold
					size = 0.15
				}
				rl.DrawCube(rl.NewVector3(p.X(), p.Y(), p.Z()), size, size, size, c)
			})
		}
		rl.EndMode3D()
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Render textures are flipped vertically
		rl.DrawTextureRec(target.Texture,
			rl.Rectangle{X: 0, Y: 0, Width: previewSize, Height: -previewSize},
			rl.Vector2{X: 10, Y: 10}, rl.White)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		if lastErr != nil {
			rl.DrawText(lastErr.Error(), 15, statsY, 16, rl.Red)
		} else if ds != nil {
			rl.DrawText(fmt.Sprintf("Leaves: %d  Ornaments: %d  Mode: %s",
				ds.Len(components.Leaf), ds.Len(components.Ornament), mode), 15, statsY, 16, rl.DarkGray)
		}

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)
		rl.DrawText("Formation Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				*s.value, s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *s.value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if v != *s.value {
				*s.value = v
				needsRegen = true
			}
			panelY += 35
		}

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(mode == components.Assembled, "Show cloud", "Show tree")) {
			mode = mode.Toggled()
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = paramsFromConfig(base)
			needsRegen = true
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.Gray)
		if rl.IsKeyPressed(rl.KeyC) && cfg != nil {
			if out, err := sceneYAML(cfg); err == nil {
				rl.SetClipboardText(out)
			} else {
				slog.Warn("failed to marshal yaml", "error", err)
			}
		}

		rl.EndDrawing()
	}
}

// sceneYAML renders the sections the sliders edit.
func sceneYAML(cfg *config.Config) (string, error) {
	out, err := yaml.Marshal(struct {
		Scene    config.SceneConfig    `yaml:"scene"`
		Leaf     config.CategoryConfig `yaml:"leaf"`
		Ornament config.CategoryConfig `yaml:"ornament"`
	}{cfg.Scene, cfg.Leaf, cfg.Ornament})
	return string(out), err
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
