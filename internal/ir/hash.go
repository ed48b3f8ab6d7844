package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainFormula prefixes formula identity hashes. The version suffix allows
// a future change of canonical form without colliding with old ids.
const DomainFormula = "hilbert/formula/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// FormulaID returns the content-addressed id of a formula given its
// canonical rendering. Structurally equal formulas share an id regardless
// of how they were parenthesized on input.
func FormulaID(canonical string) string {
	return hashWithDomain(DomainFormula, []byte(canonical))
}
