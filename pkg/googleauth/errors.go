package googleauth

import "errors"

var (
	// ErrMissingServiceAccount indicates no service-account email was provided.
	ErrMissingServiceAccount = errors.New("googleauth: missing service account email")
	// ErrInvalidPrivateKey indicates the PEM key could not be decoded or is not RSA.
	ErrInvalidPrivateKey = errors.New("googleauth: invalid private key")
	// ErrSigningFailed indicates the RS256 signature could not be produced.
	ErrSigningFailed = errors.New("googleauth: failed to sign assertion")
	// ErrTokenExchange indicates the jwt-bearer exchange was rejected upstream.
	ErrTokenExchange = errors.New("googleauth: token exchange failed")
)
