package verifyreq

import "errors"

var (
	ErrKeyEncoderNotProvided = errors.New("verifyreq: a key encoder is required")
	ErrUnknownKeyEncoding    = errors.New("verifyreq: unknown key encoding")
	ErrKeyWidthInvalid       = errors.New("verifyreq: key width must be between 1 and 32 bytes")
	ErrKeyTooWide            = errors.New("verifyreq: leaf index does not fit the key width")
	ErrLeafDataMismatch      = errors.New("verifyreq: leaf data and sum do not match the stored leaf digest")
	ErrRequestMalformed      = errors.New("verifyreq: malformed request")
)
