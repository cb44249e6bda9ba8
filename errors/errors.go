package errors

import "fmt"

var (
	ErrInvalidPassword = fmt.Errorf("password does not meet complexity requirements")
	ErrChannelNotOpen  = fmt.Errorf("conversation channel is not open")
	ErrNoActiveThread  = fmt.Errorf("no conversation is open")
)
