package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// PolicyError marks an action the acting user is not allowed to take,
// e.g. a student approving a booking.
type PolicyError struct {
	Actor  string
	Action string
	Msg    string
}

func (e PolicyError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Actor != "" && e.Action != "" {
		return fmt.Sprintf("%s may not %s", e.Actor, e.Action)
	}
	return "not allowed"
}

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// DeliveryError wraps a single notification channel failure. It is
// logged by the dispatcher and never aborts sibling deliveries or the
// domain action that triggered it.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e DeliveryError) Error() string {
	if e.Channel == "" {
		return "delivery failed"
	}
	return fmt.Sprintf("%s delivery failed: %v", e.Channel, e.Err)
}

func (e DeliveryError) Unwrap() error { return e.Err }

// DataError marks a missing related entity where a display value was
// needed. Callers resolve it with a fallback label instead of failing.
type DataError struct {
	Resource string
	Err      error
}

func (e DataError) Error() string {
	if e.Resource == "" {
		return "data missing"
	}
	return fmt.Sprintf("%s data missing", e.Resource)
}

func (e DataError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsPolicy(err error) bool {
	var target PolicyError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsDelivery(err error) bool {
	var target DeliveryError
	return errors.As(err, &target)
}

func IsData(err error) bool {
	var target DataError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
