package reconcile

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidAmount is returned when a numeric input cannot be parsed as a
// non-negative decimal integer. It is fatal for the transaction it came
// from, never for the whole task.
var ErrInvalidAmount = errors.New("invalid amount")

// parseAmount parses a smallest-unit decimal string into a big.Int,
// rejecting negative and malformed values.
func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return v, nil
}

// totalCost computes the full debit attributable to the sender:
// value + gasLimit*gasPrice, exactly, in smallest units.
//
// Senders sometimes overpay network fees from the wallet funding the
// deposit. Crediting only the nominal transfer value would leave the
// chain-level amount sent larger than the amount credited, so the gas
// overhead is folded into the total.
func totalCost(value, gasLimit, gasPrice string) (string, error) {
	v, err := parseAmount(value)
	if err != nil {
		return "", err
	}

	limit, err := parseAmount(gasLimit)
	if err != nil {
		return "", err
	}

	price, err := parseAmount(gasPrice)
	if err != nil {
		return "", err
	}

	total := new(big.Int).Add(v, new(big.Int).Mul(limit, price))
	return total.String(), nil
}

// majorUnits renders a smallest-unit amount as a fixed-point decimal in the
// asset's major unit (e.g. wei -> ether with decimals=18). The result never
// goes through binary floats; trailing fractional zeros are trimmed.
func majorUnits(amount string, decimals int) (string, error) {
	v, err := parseAmount(amount)
	if err != nil {
		return "", err
	}

	digits := v.String()
	if decimals <= 0 {
		return digits, nil
	}

	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	whole := digits[:len(digits)-decimals]
	frac := strings.TrimRight(digits[len(digits)-decimals:], "0")
	if frac == "" {
		return whole, nil
	}

	return whole + "." + frac, nil
}
