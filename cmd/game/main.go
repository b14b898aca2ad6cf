// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"time"

	"go-word-rain/internal/app"
	"go-word-rain/internal/config"
	"go-word-rain/internal/defs"
	"go-word-rain/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	// .env необязателен: сид и словарь можно подменить переменными окружения.
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
	game.SetPlayArea(config.ScreenWidth, config.ScreenHeight)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Word Rain")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
