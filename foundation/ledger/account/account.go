// Package account defines the identity type used to own and operate on
// ledger entities.
package account

import "errors"

// ZeroAccount is the sentinel identity used as the source of a mint and the
// destination of a burn. It is never a valid transfer target.
const ZeroAccount = AccountID("0x0000000000000000000000000000000000000000")

// ErrZeroAccount is returned when an operation targets the zero account or an
// identity that fails validation.
var ErrZeroAccount = errors.New("invalid zero account")

// AccountID represents the identity of an account that owns entities and
// submits operations against the ledger.
type AccountID string

// ToAccountID converts a hex-encoded string to an account id and validates
// the hex-encoded string is formatted correctly.
func ToAccountID(hex string) (AccountID, error) {
	a := AccountID(hex)
	if !a.IsAccountID() {
		return "", errors.New("invalid account format")
	}

	return a, nil
}

// IsAccountID verifies whether the underlying data represents a valid
// hex-encoded account.
func (a AccountID) IsAccountID() bool {
	const addressLength = 20

	if has0xPrefix(a) {
		a = a[2:]
	}

	return len(a) == 2*addressLength && isHex(a)
}

// IsZero reports whether the account is the zero sentinel.
func (a AccountID) IsZero() bool {
	return a == ZeroAccount
}

// =============================================================================

// has0xPrefix validates the account starts with a 0x.
func has0xPrefix(a AccountID) bool {
	return len(a) >= 2 && a[0] == '0' && (a[1] == 'x' || a[1] == 'X')
}

// isHex validates whether each byte is valid hexadecimal string.
func isHex(a AccountID) bool {
	if len(a)%2 != 0 {
		return false
	}

	for _, c := range []byte(a) {
		if !isHexCharacter(c) {
			return false
		}
	}

	return true
}

// isHexCharacter returns bool of c being a valid hexadecimal.
func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
