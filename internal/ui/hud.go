// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"go-word-rain/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HudPanel отображает счёт и уровень в верхнем левом углу.
type HudPanel struct {
	X, Y int
}

// NewHudPanel создает новую панель счёта.
func NewHudPanel(x, y int) *HudPanel {
	return &HudPanel{X: x, Y: y}
}

func (p *HudPanel) Draw(screen *ebiten.Image, score, level int) {
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("score %d", score), face, p.X, p.Y, config.HudColor)
	text.Draw(screen, "level "+toRoman(level), face, p.X, p.Y+config.FontCharHeight+4, config.HudColor)
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
