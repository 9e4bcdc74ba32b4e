package domain

import (
	"github.com/google/uuid"

	"backoffice/internal/errors"
)

// ID is the opaque identifier type shared by products, customers and orders.
// The wire format is a UUID string; storage treats it as an opaque CHAR(36).
type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID validates the identifier format of an incoming reference.
func ParseID(field, value string) (ID, error) {
	if _, err := uuid.Parse(value); err != nil {
		return "", errors.NewInvalidReferenceError(field, value)
	}
	return ID(value), nil
}

func (id ID) String() string {
	return string(id)
}

func IsValidID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

// IDsToStrings is a convenience for IN-clause query building.
func IDsToStrings(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
