// Package customer holds the customer identity record. A customer has no
// behavior; accounts point back at it through a weak owner_id reference.
package customer

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("customer name cannot be empty")
	ErrEmptyDocumentID = errors.New("customer document id cannot be empty")
)

// Customer is immutable after creation. Field names are part of the snapshot
// wire format.
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DocumentID string `json:"document_id"`
	Email      string `json:"email,omitempty"`
}

// New creates a customer with a generated id. Name and document id are
// required; email is optional.
func New(name, documentID, email string) (Customer, error) {
	if name == "" {
		return Customer{}, ErrEmptyName
	}
	if documentID == "" {
		return Customer{}, ErrEmptyDocumentID
	}
	return Customer{
		ID:         uuid.NewString(),
		Name:       name,
		DocumentID: documentID,
		Email:      email,
	}, nil
}
