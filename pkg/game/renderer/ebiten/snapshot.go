package ebiten

import (
	"spence/pkg/game/renderer"
	"spence/pkg/game/state"
)

// RenderFrame captures a snapshot of g for the next Draw call. It runs on the
// game goroutine, so the scene is built here and never touched by Draw
// while the game changes.
func (e *EbitenRenderer) RenderFrame(g *state.Game, v renderer.View) {
	scene := renderer.BuildScene(g, v)

	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot = scene
}

func (e *EbitenRenderer) currentScene() *renderer.Scene {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}
