// Package types declares the hooks a Go type implements to take part in
// string argument parsing, argument validation and result encoding.
package types

// BytesDecoder is tried first when an argument string is parsed into a value
// of the implementing type.
type BytesDecoder interface {
	DecodeFromBytes([]byte) error
}

// BytesEncoder takes precedence over JSON when a result is encoded.
type BytesEncoder interface {
	EncodeToBytes() ([]byte, error)
}

// Checker is called on a parsed argument during validation.
type Checker interface {
	Check() error
}

// Validator is called on a parsed argument during validation, after Checker.
type Validator interface {
	Validate() error
}
