package paymentmethod

import (
	"strings"

	"github.com/awaleed99/bite-back0/internal/httperr"
)

// LastFour returns the last four digits of a card number, ignoring spaces.
func LastFour(cardNumber string) (string, error) {
	n := strings.ReplaceAll(cardNumber, " ", "")
	if len(n) < 4 {
		return "", httperr.ErrValidation("invalid_card_number", "Card number is too short")
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return "", httperr.ErrValidation("invalid_card_number", "Card number must contain only digits")
		}
	}
	return n[len(n)-4:], nil
}
