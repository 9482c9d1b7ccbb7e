package model

import (
	"fmt"
	"strings"
)

// PrivacyMode selects how contribution amounts are protected.
type PrivacyMode string

var (
	// PrivacyNone keeps amounts in plaintext.
	PrivacyNone PrivacyMode = "none"
	// PrivacyTEE seals amounts for aggregation inside a trusted execution environment.
	PrivacyTEE PrivacyMode = "tee"
	// PrivacyFHE encrypts amounts homomorphically and decrypts only the sum.
	PrivacyFHE PrivacyMode = "fhe"
)

// PrivacyModes lists every supported mode.
var PrivacyModes = []PrivacyMode{PrivacyNone, PrivacyTEE, PrivacyFHE}

// ParsePrivacyMode parses a mode name. An empty value selects PrivacyNone.
func ParsePrivacyMode(raw string) (PrivacyMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(PrivacyNone):
		return PrivacyNone, nil
	case string(PrivacyTEE), "iexec":
		return PrivacyTEE, nil
	case string(PrivacyFHE), "zama":
		return PrivacyFHE, nil
	default:
		return "", fmt.Errorf("unknown privacy mode %q", raw)
	}
}

// Confidential reports whether individual amounts must stay hidden.
func (m PrivacyMode) Confidential() bool {
	return m == PrivacyTEE || m == PrivacyFHE
}

// UnmarshalFlag implements go-flags' Unmarshaler.
func (m *PrivacyMode) UnmarshalFlag(value string) error {
	mode, err := ParsePrivacyMode(value)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
