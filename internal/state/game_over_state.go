// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-word-rain/internal/app"
	"go-word-rain/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — конец раунда. Счёт и уровень остаются на экране,
// тики остановлены; новый раунд начинается с полного сброса.
type GameOverState struct {
	sm   *StateMachine
	game *app.Game
}

func NewGameOverState(sm *StateMachine, game *app.Game) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.game.Start()
		g.sm.SetState(NewPlayState(g.sm, g.game))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.game))
	}
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	session := g.game.ECS.Session
	drawCentered(screen, "G A M E   O V E R", config.ScreenHeight/2-40, config.BaseLineColor)
	drawCentered(screen, fmt.Sprintf("score %d, level %d", session.Score, session.Level), config.ScreenHeight/2-10, config.WordColor)
	drawCentered(screen, "press enter to play again", config.ScreenHeight/2+20, config.InputColor)
}

func (g *GameOverState) Exit() {}
