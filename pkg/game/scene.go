package game

import (
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one navigable scene in the zoom sequence.
// Each scene has its own update and rendering logic and owns the
// navigation hook that turns input into transitions.
type Scene interface {
	// ID returns the scene identifier used in the scene order.
	ID() types.SceneID

	// SetVisible is called by the SceneManager when the scene becomes
	// the current scene (true) or stops being the current scene (false).
	// Input listeners must only be active while the scene is visible.
	SetVisible(visible bool)

	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
