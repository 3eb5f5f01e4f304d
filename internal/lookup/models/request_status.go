package models

import dErrors "tms/pkg/domain-errors"

// RequestStatus is the review state of a tenant request.
// Invariant: the value must be one of the constants below.
type RequestStatus string

const (
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusNew      RequestStatus = "NEW"
	RequestStatusRejected RequestStatus = "REJECTED"
)

var validRequestStatuses = map[RequestStatus]bool{
	RequestStatusApproved: true,
	RequestStatusNew:      true,
	RequestStatusRejected: true,
}

// ParseRequestStatus constructs a RequestStatus from external input.
//
// Errors: CodeInvalidInput when s is empty or unsupported.
func ParseRequestStatus(s string) (RequestStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "request status cannot be empty")
	}
	st := RequestStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid request status")
	}
	return st, nil
}

func (s RequestStatus) IsValid() bool {
	return validRequestStatuses[s]
}

// IsFinal reports whether the request has been decided.
func (s RequestStatus) IsFinal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText rejects identifiers outside the supported set.
func (s *RequestStatus) UnmarshalText(b []byte) error {
	parsed, err := ParseRequestStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
