package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyH) && g.hud != nil {
		g.hud.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.camera.Reset()
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = int32(rl.GetScreenWidth())
	g.screenHeight = int32(rl.GetScreenHeight())
}

// handleCameraInput orbits on right or left drag and zooms on the wheel.
func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) || rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			g.camera.Rotate(delta.X, delta.Y, float32(g.screenHeight))
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.Zoom(wheel)
	}
}
