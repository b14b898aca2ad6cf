// internal/ui/toast.go
package ui

import (
	"fmt"

	"go-word-rain/internal/config"
	"go-word-rain/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type toast struct {
	text string
	ttl  float64
}

// ToastPanel показывает временные сообщения об игровых событиях.
// Подписывается на диспетчер событий и ничего не знает об игровой логике.
type ToastPanel struct {
	X, Y   int
	toasts []toast
}

// NewToastPanel создает новую панель сообщений.
func NewToastPanel(x, y int) *ToastPanel {
	return &ToastPanel{X: x, Y: y}
}

// OnEvent реализует event.Listener.
func (p *ToastPanel) OnEvent(e event.Event) {
	msg := formatEvent(e)
	if msg == "" {
		return
	}
	p.toasts = append(p.toasts, toast{text: msg, ttl: config.ToastDuration})
	if len(p.toasts) > config.MaxToasts {
		p.toasts = p.toasts[1:]
	}
}

// Update списывает время жизни сообщений и убирает истёкшие.
func (p *ToastPanel) Update(deltaTime float64) {
	alive := p.toasts[:0]
	for _, t := range p.toasts {
		t.ttl -= deltaTime
		if t.ttl > 0 {
			alive = append(alive, t)
		}
	}
	p.toasts = alive
}

func (p *ToastPanel) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for i, t := range p.toasts {
		text.Draw(screen, t.text, face, p.X, p.Y+i*(config.FontCharHeight+4), config.ToastColor)
	}
}

func formatEvent(e event.Event) string {
	switch e.Type {
	case event.GameStarted:
		return "go!"
	case event.WordHit:
		if p, ok := e.Data.(event.WordHitPayload); ok {
			return fmt.Sprintf("+%d %s", p.Points, p.Text)
		}
	case event.WordMiss:
		return "miss"
	case event.WordArrived:
		if p, ok := e.Data.(event.WordArrivedPayload); ok {
			return fmt.Sprintf("%s hit the base!", p.Text)
		}
	case event.LevelUp:
		if p, ok := e.Data.(event.LevelUpPayload); ok {
			return fmt.Sprintf("level %s!", toRoman(p.Level))
		}
	case event.AllLivesLost:
		if p, ok := e.Data.(event.AllLivesLostPayload); ok {
			return fmt.Sprintf("game over, score %d", p.Score)
		}
	}
	return ""
}
