package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Hex is a 0x-prefixed hexadecimal quantity as returned by Ethereum JSON-RPC
// endpoints (e.g., "0x5208"). Values may exceed 64 bits, so conversions go
// through math/big.
type Hex string

// HexFromString validates s and returns it as a Hex value.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// validateHex checks for the 0x prefix and that the remainder parses as a
// hexadecimal number of arbitrary size.
func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, ok := new(big.Int).SetString(s[2:], 16); !ok {
		return fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// IsEmpty reports whether the value is unset.
func (h Hex) IsEmpty() bool {
	return h == ""
}

// BigInt decodes the quantity into a big.Int. Invalid or empty values decode
// as zero.
func (h Hex) BigInt() *big.Int {
	if len(h) < 3 {
		return new(big.Int)
	}

	v, ok := new(big.Int).SetString(string(h)[2:], 16)
	if !ok {
		return new(big.Int)
	}
	return v
}

// Decimal renders the quantity as a base-10 string.
func (h Hex) Decimal() string {
	return h.BigInt().String()
}

// Uint64 decodes the quantity as uint64, returning zero when it does not fit.
func (h Hex) Uint64() uint64 {
	v := h.BigInt()
	if !v.IsUint64() {
		return 0
	}
	return v.Uint64()
}
