package usecases

import (
	"errors"
	"strconv"
	"strings"

	"commentgate/internal/domain"
)

// AbuseGuard gates open writes with a honeypot and an arithmetic challenge.
// The challenge has no expiry or replay protection; it only adds friction.
type AbuseGuard struct{}

// NewAbuseGuard creates a new AbuseGuard.
func NewAbuseGuard() *AbuseGuard {
	return &AbuseGuard{}
}

// Check rejects a submission whose honeypot is filled, then, for anonymous
// callers only, one whose challenge is missing or wrong.
func (g *AbuseGuard) Check(honeypot string, challenge *domain.Challenge, authenticated bool) error {
	if honeypot != "" {
		return domain.ErrSpamDetected
	}
	if authenticated {
		return nil
	}

	if !challenge.Complete() {
		return domain.ErrCaptchaRequired
	}

	num1, err1 := parseOperand(challenge.Num1)
	num2, err2 := parseOperand(challenge.Num2)
	answer, err3 := parseOperand(challenge.Answer)
	if err1 != nil || err2 != nil || err3 != nil {
		return domain.ErrIncorrectAnswer
	}
	if num1+num2 != answer {
		return domain.ErrIncorrectAnswer
	}
	return nil
}

// maxOperand bounds every challenge number so the sum cannot overflow.
const maxOperand = 1_000_000_000

var errOperandRange = errors.New("operand out of range")

func parseOperand(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if n > maxOperand || n < -maxOperand {
		return 0, errOperandRange
	}
	return n, nil
}
