package jsonstruct

import (
	"fmt"
	"math/big"
	"net/url"

	"github.com/cockroachdb/apd/v3"
)

// NewBigInt parses a base 10 integer and panics on malformed input.
func NewBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("jsonstruct: invalid integer %q", s))
	}
	return n
}

// NewDecimal parses a decimal and panics on malformed input. The result
// keeps the digits and scale of s, so "1.50" stays 1.50.
func NewDecimal(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("jsonstruct: invalid decimal %q: %v", s, err))
	}
	return d
}

// MustParseURI parses an absolute or relative URI reference and panics on
// malformed input.
func MustParseURI(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("jsonstruct: invalid uri %q: %v", s, err))
	}
	return u
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T { return &v }
