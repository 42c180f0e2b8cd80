package client

import (
	"github.com/wanderlust/travel-client/client/internal/errors"
	"github.com/wanderlust/travel-client/client/internal/workqueue"
)

// Classified failure causes carried in Envelope.Err and Result.Err.
type (
	NetworkError = errors.NetworkError
	HTTPError    = errors.HTTPError
	DecodeError  = errors.DecodeError
)

// ErrBackPressure is returned when the client's internal work queue is full.
var ErrBackPressure = workqueue.ErrQueueFull

// IsNetworkError reports whether the request never produced a response.
func IsNetworkError(err error) bool { return errors.IsNetwork(err) }

// IsHTTPStatus reports whether the backend answered with status code.
func IsHTTPStatus(err error, code int) bool { return err != nil && errors.StatusOf(err) == code }

// IsDecodeError reports whether a 2xx body was not valid JSON.
func IsDecodeError(err error) bool { return errors.IsDecode(err) }

// IsRetryable reports whether repeating the call could succeed.
func IsRetryable(err error) bool { return err != nil && !errors.IsIrrecoverable(err) }
