// internal/ui/lives_indicator.go
package ui

import (
	"go-word-rain/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LifeCircleRadius  = 8.0
	LifeCircleSpacing = 6.0
)

// LivesIndicator отображает оставшиеся жизни в виде ряда кружков.
type LivesIndicator struct {
	X, Y float32
}

// NewLivesIndicator создает новый индикатор жизней.
func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует один кружок на каждую возможную жизнь; потерянные
// жизни показываются пустым цветом.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	for j := 0; j < maxLives; j++ {
		cx := i.X + float32(j)*(LifeCircleRadius*2+LifeCircleSpacing) + LifeCircleRadius
		cy := i.Y + LifeCircleRadius

		c := config.LifeEmptyColor
		if j < lives {
			c = config.LifeFullColor
		}
		vector.DrawFilledCircle(screen, cx, cy, LifeCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, LifeCircleRadius, 1.5, config.LifeStrokeColor, true)
	}
}
