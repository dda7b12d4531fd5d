package roomSession

import "go.uber.org/zap"

// The only account the app knows. These are deliberately not configurable.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
)

const (
	LoginSuccessMessage = "Login Successful!"
	LoginFailureMessage = "Invalid Credentials!"
)

type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// AuthError is returned with Deny.
type AuthError struct {
	Email string
}

func (e *AuthError) Error() string {
	return LoginFailureMessage
}

type Gate struct {
	logger *zap.SugaredLogger
}

func NewGate(logger *zap.SugaredLogger) *Gate {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Gate{logger: logger}
}

// Check compares both strings exactly against the literal account. There is
// no rate limiting and no lockout.
func (g *Gate) Check(email, password string) (Decision, error) {
	g.logger.Infow("Login attempt", "email", email)
	if email == AdminEmail && password == AdminPassword {
		g.logger.Infow("Login successful", "email", email)
		return Allow, nil
	}
	g.logger.Infow("Invalid login attempt", "email", email)
	return Deny, &AuthError{Email: email}
}
