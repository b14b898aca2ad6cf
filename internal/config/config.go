// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// Базовая линия находится на 100 пикселей выше нижнего края игрового поля.
	BaseLineOffset = 100.0

	// Интервал спавна: max(BaseSpawnInterval * (1 - (level-1)*SpawnIntervalPerLevel), MinSpawnInterval)
	BaseSpawnIntervalMs   = 2000.0
	MinSpawnIntervalMs    = 500.0
	SpawnIntervalPerLevel = 0.2

	// Скорость падения: BaseFallSpeed + level * FallSpeedPerLevel, пикселей за тик.
	BaseFallSpeed     = 1.0
	FallSpeedPerLevel = 0.5

	StartingLives   = 3
	PointsPerLetter = 10
	ScorePerLevel   = 1000

	// Глубина памяти недавно использованных слов в банке.
	RecentWordsLimit = 20

	// Запас по краям, чтобы слово целиком помещалось на экране.
	WordWidthAllowance  = 120.0
	WordHeightAllowance = 24.0

	MaxDeltaTime = 0.06

	// Геометрия шрифта basicfont.Face7x13.
	FontCharWidth  = 7
	FontCharHeight = 13

	ToastDuration = 2.0
	MaxToasts     = 4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BaseLineColor   = color.RGBA{220, 60, 60, 220}
	WordColor       = color.RGBA{240, 240, 240, 255}
	MatchedColor    = color.RGBA{255, 215, 0, 255}
	InputColor      = color.RGBA{50, 205, 50, 255}
	HudColor        = color.RGBA{70, 130, 180, 255}
	LifeFullColor   = color.RGBA{50, 205, 50, 255}
	LifeEmptyColor  = color.RGBA{60, 60, 70, 255}
	LifeStrokeColor = color.RGBA{240, 240, 240, 255}
	ToastColor      = color.RGBA{194, 178, 128, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
)
