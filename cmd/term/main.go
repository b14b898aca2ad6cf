// cmd/term/main.go
//
// Терминальный хост поверх того же игрового ядра, что и ebiten-версия:
// рендерер читает снимок состояния из ECS, ввод идёт через те же
// обработчики, уведомления приходят из диспетчера событий.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go-word-rain/internal/app"
	"go-word-rain/internal/component"
	"go-word-rain/internal/config"
	"go-word-rain/internal/defs"
	"go-word-rain/internal/event"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
)

const tickRate = 60

type termHost struct {
	screen      tcell.Screen
	game        *app.Game
	notice      string
	noticeTicks int
}

func main() {
	_ = godotenv.Load()

	var seed int64
	if v := os.Getenv("WORDRAIN_SEED"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("invalid WORDRAIN_SEED %q: %v", v, err)
		}
		seed = parsed
	}
	if path := os.Getenv("WORDRAIN_WORDS"); path != "" {
		if err := defs.LoadWordTiers(path); err != nil {
			log.Fatal(err)
		}
	}

	game, err := app.NewGame(seed)
	if err != nil {
		log.Fatal(err)
	}
	// Ядро живёт в логических координатах 800x600, терминал только
	// масштабирует их при отрисовке.
	game.SetPlayArea(config.ScreenWidth, config.ScreenHeight)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	host := &termHost{screen: screen, game: game}
	game.EventDispatcher.SubscribeAll(event.ListenerFunc(host.onEvent))

	keys := make(chan *tcell.EventKey, 16)
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				keys <- ev
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-keys:
			if !host.handleKey(ev) {
				return
			}
		case <-ticker.C:
			host.tick()
		}
	}
}

// handleKey обрабатывает одно нажатие; false означает выход.
func (h *termHost) handleKey(ev *tcell.EventKey) bool {
	session := h.game.ECS.Session
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if session.Phase == component.PlayingPhase {
			h.game.Reset()
			return true
		}
		return false
	case tcell.KeyEnter:
		if session.Phase == component.PlayingPhase {
			h.game.HandleConfirm()
		} else {
			h.game.Start()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if input := session.Input; len(input) > 0 {
			h.game.HandleTextInput(input[:len(input)-1])
		}
	case tcell.KeyRune:
		if r := ev.Rune(); r >= ' ' {
			h.game.HandleTextInput(session.Input + string(r))
		}
	}
	return true
}

func (h *termHost) tick() {
	h.game.Update(1.0 / tickRate)
	if h.noticeTicks > 0 {
		h.noticeTicks--
	}
	h.draw()
}

func (h *termHost) onEvent(e event.Event) {
	msg := formatEvent(e)
	if msg == "" {
		return
	}
	h.notice = msg
	h.noticeTicks = tickRate * 2
}

func (h *termHost) draw() {
	s := h.screen
	s.Clear()
	cols, rows := s.Size()
	if cols == 0 || rows == 0 {
		return
	}
	sx := float64(cols) / config.ScreenWidth
	sy := float64(rows) / config.ScreenHeight

	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	wordStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	matchStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	inputStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	session := h.game.ECS.Session
	drawText(s, 0, 0, hudStyle, fmt.Sprintf("score %d  level %d  lives %d", session.Score, session.Level, session.Lives))
	if h.noticeTicks > 0 {
		drawText(s, 0, 1, matchStyle, h.notice)
	}

	baseRow := int((config.ScreenHeight - config.BaseLineOffset) * sy)
	for x := 0; x < cols; x++ {
		s.SetContent(x, baseRow, '-', nil, lineStyle)
	}

	ecs := h.game.ECS
	for _, id := range ecs.WordIDs() {
		word := ecs.Words[id]
		pos := ecs.Positions[id]
		x, y := int(pos.X*sx), int(pos.Y*sy)
		if y < 0 || y >= rows {
			continue
		}
		n := len(word.MatchedPrefix)
		if n > len(word.Text) {
			n = len(word.Text)
		}
		drawText(s, x, y, matchStyle, word.Text[:n])
		drawText(s, x+n, y, wordStyle, word.Text[n:])
	}

	switch session.Phase {
	case component.IdlePhase:
		drawCentered(s, cols, rows/2, wordStyle, "W O R D   R A I N")
		drawCentered(s, cols, rows/2+1, inputStyle, "press enter to start, esc to quit")
	case component.GameOverPhase:
		drawCentered(s, cols, rows/2, lineStyle, "G A M E   O V E R")
		drawCentered(s, cols, rows/2+1, wordStyle, fmt.Sprintf("score %d, level %d", session.Score, session.Level))
		drawCentered(s, cols, rows/2+2, inputStyle, "press enter to play again")
	}

	drawText(s, 0, rows-1, inputStyle, "> "+session.Input)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, msg string) {
	for i, r := range msg {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(s tcell.Screen, cols, y int, style tcell.Style, msg string) {
	drawText(s, (cols-len(msg))/2, y, style, msg)
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
			return fmt.Sprintf("level %d!", p.Level)
		}
	case event.AllLivesLost:
		if p, ok := e.Data.(event.AllLivesLostPayload); ok {
			return fmt.Sprintf("game over, score %d", p.Score)
		}
	}
	return ""
}
