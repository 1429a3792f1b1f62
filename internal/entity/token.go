package entity

// Token is a collectible variant. The zero value means no token.
type Token uint8

const (
	TokenNone Token = iota
	TokenBlue
	TokenViolet
	TokenOrange
	TokenGreen
)

// RarityRoll is the size of the roll used by RandomToken.
const RarityRoll = 30

// Roller is the randomness RandomToken consumes.
type Roller interface {
	Intn(n int) int
}

// RandomToken draws a token variant: one roll in RarityRoll each for
// Green, Orange and Violet, Blue otherwise.
func RandomToken(r Roller) Token {
	switch r.Intn(RarityRoll) {
	case 1:
		return TokenGreen
	case 2:
		return TokenOrange
	case 3:
		return TokenViolet
	default:
		return TokenBlue
	}
}

// Score returns the default points awarded for collecting the token.
func (t Token) Score() int {
	switch t {
	case TokenBlue:
		return 100
	case TokenViolet:
		return 300
	case TokenOrange:
		return 500
	case TokenGreen:
		return 1000
	default:
		return 0
	}
}

func (t Token) String() string {
	switch t {
	case TokenNone:
		return "None"
	case TokenBlue:
		return "Blue"
	case TokenViolet:
		return "Violet"
	case TokenOrange:
		return "Orange"
	case TokenGreen:
		return "Green"
	default:
		return "Unknown"
	}
}
