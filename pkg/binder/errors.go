package binder

import "errors"

var (
	// ErrMissingContentType indicates the request carried no Content-Type header.
	ErrMissingContentType = errors.New("binder: missing content type")
	// ErrUnsupportedMediaType indicates a Content-Type other than application/json.
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	// ErrInvalidJSON indicates the body could not be decoded.
	ErrInvalidJSON = errors.New("binder: invalid JSON")
)
