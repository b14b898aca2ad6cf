// internal/event/payloads.go
package event

// WordHitPayload — данные события WordHit.
type WordHitPayload struct {
	Text   string
	Points int
}

// WordMissPayload — данные события WordMiss.
type WordMissPayload struct {
	Input string
}

// WordArrivedPayload — данные события WordArrived.
type WordArrivedPayload struct {
	Text string
}

// LevelUpPayload — данные события LevelUp.
type LevelUpPayload struct {
	Level int
}

// AllLivesLostPayload — данные события AllLivesLost.
type AllLivesLostPayload struct {
	Score int
}
