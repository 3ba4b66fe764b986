package display

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

// Sink receives display notifications
// Implementations draw HUD elements; they never read game state directly
type Sink interface {
	Score(score int)
	Level(level int)
	Hazard(visible bool, percent float64)
	Instructions(visible bool, text string)
	GameOver(visible bool, final, high int, reason string)
}
