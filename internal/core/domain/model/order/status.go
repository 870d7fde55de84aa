package order

import (
	"errors"
	"fmt"
	"strings"

	"inventory/internal/pkg/errs"
)

// ErrStatusTransitionIsNotAllowed is the cause attached to every rejected worker transition.
var ErrStatusTransitionIsNotAllowed = errors.New("status transition is not allowed")

// Status is the lifecycle state of an order. The zero value is invalid.
type Status int

const (
	Unknown Status = iota
	Pending
	InProgress
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
	}
}

// ParseStatus accepts the wire names case-insensitively.
func ParseStatus(s string) (Status, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == want {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s != Pending && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Start moves PENDING to IN_PROGRESS.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return Unknown, notAllowed(s, InProgress)
	}
	return InProgress, nil
}

// Complete moves PENDING or IN_PROGRESS to COMPLETED.
func (s Status) Complete() (Status, error) {
	if s != Pending && s != InProgress {
		return Unknown, notAllowed(s, Completed)
	}
	return Completed, nil
}

// AdvanceTo applies the worker transition that leads to target.
func (s Status) AdvanceTo(target Status) (Status, error) {
	switch target {
	case InProgress:
		return s.Start()
	case Completed:
		return s.Complete()
	case Unknown, Pending:
		return Unknown, notAllowed(s, target)
	default:
		return Unknown, target.Validate()
	}
}

func notAllowed(from, to Status) error {
	return errs.NewForbiddenErrorWithCause(
		"change order status",
		fmt.Sprintf("cannot move from %s to %s", from, to),
		ErrStatusTransitionIsNotAllowed,
	)
}
