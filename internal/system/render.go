// internal/system/render.go
package system

import (
	"go-word-rain/internal/config"
	"go-word-rain/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem рисует падающие слова, базовую линию и строку ввода.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	baseLine := float32(config.ScreenHeight - config.BaseLineOffset)
	vector.StrokeLine(screen, 0, baseLine, config.ScreenWidth, baseLine, 2.0, config.BaseLineColor, true)

	face := basicfont.Face7x13
	for _, id := range s.ecs.WordIDs() {
		word := s.ecs.Words[id]
		pos := s.ecs.Positions[id]
		x, y := int(pos.X), int(pos.Y)

		// Набранный префикс подсвечивается, остаток рисуется обычным цветом.
		n := len(word.MatchedPrefix)
		if n > len(word.Text) {
			n = len(word.Text)
		}
		if n > 0 {
			text.Draw(screen, word.Text[:n], face, x, y, config.MatchedColor)
			text.Draw(screen, word.Text[n:], face, x+n*config.FontCharWidth, y, config.WordColor)
		} else {
			text.Draw(screen, word.Text, face, x, y, config.WordColor)
		}
	}

	text.Draw(screen, "> "+s.ecs.Session.Input, face, 10, config.ScreenHeight-config.BaseLineOffset+30, config.InputColor)
}
