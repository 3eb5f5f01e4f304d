package models

import dErrors "tms/pkg/domain-errors"

// SearchType selects which IDIR user attribute a directory search matches.
// Invariant: the value must be one of the constants below.
//
// Construct via ParseSearchType at trust boundaries; a direct conversion
// bypasses validation.
type SearchType string

const (
	SearchTypeEmail     SearchType = "email"
	SearchTypeFirstName SearchType = "firstName"
	SearchTypeLastName  SearchType = "lastName"
)

var validSearchTypes = map[SearchType]bool{
	SearchTypeEmail:     true,
	SearchTypeFirstName: true,
	SearchTypeLastName:  true,
}

// ParseSearchType constructs a SearchType from external input.
//
// Errors: CodeInvalidInput when s is empty or unsupported.
func ParseSearchType(s string) (SearchType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "search type cannot be empty")
	}
	t := SearchType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid search type")
	}
	return t, nil
}

func (t SearchType) IsValid() bool {
	return validSearchTypes[t]
}

func (t SearchType) String() string {
	return string(t)
}

func (t SearchType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText rejects identifiers outside the supported set.
func (t *SearchType) UnmarshalText(b []byte) error {
	parsed, err := ParseSearchType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
