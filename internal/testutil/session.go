package testutil

// FixedSessionGenerator returns the same session token every time.
//
// The same scenario with the same FixedSessionGenerator produces
// byte-identical JSON reports, which golden comparisons rely on.
//
// Implements engine.SessionGenerator.
type FixedSessionGenerator struct {
	token string
}

// NewFixedSessionGenerator creates a fixed session generator.
// If token is empty, Generate returns "test-session-default".
func NewFixedSessionGenerator(token string) *FixedSessionGenerator {
	if token == "" {
		token = "test-session-default"
	}
	return &FixedSessionGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedSessionGenerator) Generate() string {
	return g.token
}
