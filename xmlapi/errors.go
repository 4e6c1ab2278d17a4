package xmlapi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/engagekit/go-engage/xmlmap"
)

// ErrorIDSessionExpired is the error id Engage reports when the jsessionid
// on the request is missing or no longer valid.
const ErrorIDSessionExpired = 140

// ErrAuthenticationFailed is returned when a login exchange does not yield a
// usable session token. Use errors.Is(err, ErrAuthenticationFailed) to check
// for authentication failures.
var ErrAuthenticationFailed = errors.New("xmlapi: authentication failed")

// Fault represents a failure reported in an Engage response body.
type Fault struct {
	// ErrorID is the numeric identifier from Fault.detail.error.errorid, or
	// 0 when the response carried none.
	ErrorID int

	// Message is the human-readable FaultString.
	Message string

	// Detail is the full Fault subtree as decoded from the response.
	Detail *xmlmap.Value
}

// Error implements the error interface.
func (f *Fault) Error() string {
	msg := f.Message
	if msg == "" {
		msg = "request unsuccessful"
	}
	if f.ErrorID != 0 {
		return fmt.Sprintf("engage fault: errorid=%d: %s", f.ErrorID, msg)
	}
	return "engage fault: " + msg
}

// IsSessionExpired returns true if the fault indicates the session token was
// missing or expired.
func (f *Fault) IsSessionExpired() bool {
	return f.ErrorID == ErrorIDSessionExpired
}

// IsFault returns true if the error is an Engage Fault.
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}

// faultFrom builds a Fault from a decoded response body. The body may lack a
// Fault subtree entirely; the result then carries neither id nor message.
func faultFrom(body *xmlmap.Value) *Fault {
	detail := body.Get("Fault")
	f := &Fault{
		Message: detail.Get("FaultString").Text(),
		Detail:  detail,
	}
	if id := detail.Get("detail").Get("error").Get("errorid").Text(); id != "" {
		f.ErrorID, _ = strconv.Atoi(id)
	}
	return f
}
