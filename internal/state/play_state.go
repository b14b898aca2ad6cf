// internal/state/play_state.go
package state

import (
	"go-word-rain/internal/app"
	"go-word-rain/internal/component"
	"go-word-rain/internal/config"
	"go-word-rain/internal/system"
	"go-word-rain/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayState — состояние игры: здесь крутится тик симуляции и
// обрабатывается ввод игрока.
type PlayState struct {
	sm     *StateMachine
	game   *app.Game
	render *system.RenderSystem
	lives  *ui.LivesIndicator
	hud    *ui.HudPanel
	toasts *ui.ToastPanel
}

func NewPlayState(sm *StateMachine, game *app.Game) *PlayState {
	return &PlayState{
		sm:     sm,
		game:   game,
		render: system.NewRenderSystem(game.ECS),
		lives:  ui.NewLivesIndicator(config.ScreenWidth-90, 12),
		hud:    ui.NewHudPanel(10, 20),
		toasts: ui.NewToastPanel(config.ScreenWidth/2-80, 60),
	}
}

func (p *PlayState) Enter() {
	p.game.EventDispatcher.SubscribeAll(p.toasts)
}

func (p *PlayState) Update(deltaTime float64) {
	session := p.game.ECS.Session
	if session.Phase == component.GameOverPhase {
		p.sm.SetState(NewGameOverState(p.sm, p.game))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.game.Reset()
		p.sm.SetState(NewMenuState(p.sm, p.game))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.sm.SetState(NewPauseState(p.sm, p))
		return
	}

	// Сначала тик симуляции, затем ввод этого кадра.
	p.game.Update(deltaTime)
	p.handleTyping()
	p.toasts.Update(deltaTime)
}

// handleTyping переносит набранные символы в строку ввода и
// обрабатывает backspace и подтверждение.
func (p *PlayState) handleTyping() {
	session := p.game.ECS.Session
	input := session.Input
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= ' ' {
			input += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(input) > 0 {
		input = input[:len(input)-1]
	}
	if input != session.Input {
		p.game.HandleTextInput(input)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		p.game.HandleConfirm()
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	p.render.Draw(screen)

	session := p.game.ECS.Session
	p.hud.Draw(screen, session.Score, session.Level)
	p.lives.Draw(screen, session.Lives, config.StartingLives)
	p.toasts.Draw(screen)
}

func (p *PlayState) Exit() {
	p.game.EventDispatcher.UnsubscribeAll(p.toasts)
}
