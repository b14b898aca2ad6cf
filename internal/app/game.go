// internal/app/game.go
package app

import (
	"fmt"
	"strings"

	"go-word-rain/internal/component"
	"go-word-rain/internal/config"
	"go-word-rain/internal/defs"
	"go-word-rain/internal/entity"
	"go-word-rain/internal/event"
	"go-word-rain/internal/system"
	"go-word-rain/internal/utils"
	"go-word-rain/pkg/wordbank"
)

// Game владеет ECS, системами и порядком тика. Всё состояние сессии
// живёт в ECS; системы изменяют его только из Update и обработчиков
// ввода, которые хост вызывает из одного потока.
type Game struct {
	ECS               *entity.ECS
	Bank              *wordbank.Bank
	Rng               *utils.PRNGService
	SpawnSystem       *system.SpawnSystem
	MovementSystem    *system.MovementSystem
	MatchSystem       *system.MatchSystem
	ProgressionSystem *system.ProgressionSystem
	EventDispatcher   *event.Dispatcher
}

// NewGame собирает игру поверх встроенных ярусов слов.
// Сид 0 означает недетерминированный рандом.
func NewGame(seed int64) (*Game, error) {
	rng := utils.NewPRNGService(seed)
	bank, err := wordbank.New(defs.WordTiers, rng, config.RecentWordsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to build word bank: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Bank:            bank,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, bank, rng)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.MatchSystem = system.NewMatchSystem(ecs)
	g.ProgressionSystem = system.NewProgressionSystem(ecs, eventDispatcher)
	return g, nil
}

// SetPlayArea сообщает системам размеры игрового поля. До первого
// вызова спавн пропускается — поле ещё не измерено.
func (g *Game) SetPlayArea(width, height float64) {
	g.SpawnSystem.SetPlayWidth(width)
	g.MovementSystem.SetPlayHeight(height)
}

// Start начинает раунд из Idle или GameOver: полный сброс счёта,
// уровня, жизней, слов и ввода.
func (g *Game) Start() {
	session := g.ECS.Session
	g.ECS.ClearWords()
	g.Bank.Reset()
	session.Phase = component.PlayingPhase
	session.Score = 0
	session.Level = 1
	session.Lives = config.StartingLives
	session.Input = ""
	session.LastSpawnMs = g.ECS.GameTime * 1000
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
}

// Reset — ручной выход из раунда в Idle. Слова и ввод очищаются, но
// счёт и уровень сохраняются: так вела себя исходная игра.
func (g *Game) Reset() {
	session := g.ECS.Session
	g.ECS.ClearWords()
	session.Input = ""
	session.Phase = component.IdlePhase
}

// Update — один тик симуляции: спавн → падение и коллизии → жизни.
// Вне PlayingPhase тик ничего не изменяет. Завершение раунда внутри
// OnArrivals отменяет оставшиеся шаги само собой: их после него нет.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.Session.Phase != component.PlayingPhase {
		return
	}
	g.ECS.GameTime += deltaTime
	g.SpawnSystem.Update()
	arrived := g.MovementSystem.Update()
	if len(arrived) > 0 {
		g.ProgressionSystem.OnArrivals(arrived)
	}
}

// HandleTextInput применяет новое значение строки ввода.
func (g *Game) HandleTextInput(input string) {
	if g.ECS.Session.Phase != component.PlayingPhase {
		return
	}
	g.MatchSystem.ApplyInput(input)
}

// HandleConfirm подтверждает текущий ввод: точное совпадение
// уничтожает слово и приносит очки, иначе фиксируется промах.
// Ввод очищается при любом исходе.
func (g *Game) HandleConfirm() {
	session := g.ECS.Session
	if session.Phase != component.PlayingPhase {
		return
	}
	input := session.Input
	if destroyed := g.MatchSystem.Confirm(input); destroyed != nil {
		g.ProgressionSystem.OnHit(destroyed)
		return
	}
	if strings.TrimSpace(input) != "" {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.WordMiss,
			Data: event.WordMissPayload{Input: input},
		})
	}
}
