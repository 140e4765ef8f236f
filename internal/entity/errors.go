package entity

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized    = errors.New("unauthorized access (401)")
	ErrPaymentRequired = errors.New("account not paid (402)")
	ErrInvalidDay      = errors.New("invalid day")

	ErrNotRecordingLink      = errors.New("not a recording link")
	ErrLinkDelimiterNotFound = errors.New("link delimiter not found")
	ErrLinkUnexpectedFormat  = errors.New("unexpected format in the link")
	ErrLinkDecode            = errors.New("decode link")
)

// UnexpectedStatusError is returned for any status other than 200, 401 and 402.
type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected response status code %d", e.Code)
}
