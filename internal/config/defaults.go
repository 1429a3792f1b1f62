package config

import (
	_ "embed"

	"github.com/vovakirdan/ghostmaze/internal/entity"
)

//go:embed defaults/ghostmaze.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the classic 21x21 configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Width:      21,
			Height:     21,
			EmptySpace: 5,
		},
		Tokens: TokenConfig{
			Blue:   entity.TokenBlue.Score(),
			Violet: entity.TokenViolet.Score(),
			Orange: entity.TokenOrange.Score(),
			Green:  entity.TokenGreen.Score(),
		},
		Rules: RulesConfig{
			EventTimer:      5,
			InitialLives:    3,
			BonusLifeEvery:  5000,
			GhostTurnChance: 10,
			Ghosts:          4,
		},
		Timing: TimingConfig{
			TickMillis: 333,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}

// TokenScore returns the configured points for a token variant.
func (t TokenConfig) TokenScore(tok entity.Token) int {
	switch tok {
	case entity.TokenBlue:
		return t.Blue
	case entity.TokenViolet:
		return t.Violet
	case entity.TokenOrange:
		return t.Orange
	case entity.TokenGreen:
		return t.Green
	default:
		return 0
	}
}
