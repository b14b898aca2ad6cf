// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"go-word-rain/internal/app"
	"go-word-rain/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.game.Start()
		m.sm.SetState(NewPlayState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	drawCentered(screen, "W O R D   R A I N", config.ScreenHeight/2-40, config.WordColor)
	drawCentered(screen, "type the falling words before they reach the base", config.ScreenHeight/2-10, config.HudColor)
	drawCentered(screen, "press enter to start", config.ScreenHeight/2+20, config.InputColor)

	// После ручного сброса счёт прошлого раунда остаётся на экране.
	if session := m.game.ECS.Session; session.Score > 0 {
		msg := fmt.Sprintf("last round: score %d, level %d", session.Score, session.Level)
		text.Draw(screen, msg, face, 10, config.ScreenHeight-10, config.HudColor)
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

// drawCentered рисует строку по центру экрана на заданной высоте.
func drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	x := (config.ScreenWidth - len(s)*config.FontCharWidth) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, y, c)
}
