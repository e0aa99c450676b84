// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressKind separates shipping addresses from billing addresses.
// The default-address rule applies per user and kind.
type AddressKind string

const (
	// AddressKindShipping is where orders are delivered.
	AddressKindShipping AddressKind = "shipping"
	// AddressKindBilling is where invoices are addressed.
	AddressKindBilling AddressKind = "billing"
)

// String returns the string representation of the AddressKind.
func (k AddressKind) String() string {
	return string(k)
}

// IsValid checks if the AddressKind is a valid value.
func (k AddressKind) IsValid() bool {
	switch k {
	case AddressKindShipping, AddressKindBilling:
		return true
	default:
		return false
	}
}

// Address is a postal address owned by a user.
type Address struct {
	ID            uuid.UUID   // The Global Unique Identifier (GUID) for the address.
	Code          string      // Human-readable identifier, e.g. "A-101".
	UserID        uuid.UUID   // The owner of this address.
	Kind          AddressKind // Shipping or billing.
	FullName      string      // Recipient name.
	Phone         string      // Recipient phone.
	Email         string      // Recipient e-mail.
	Street        string      // Street and house number.
	City          string
	PostalCode    string
	ProvinceState string
	Country       string
	IsDefault     bool      // At most one address per user and kind carries this flag.
	CreatedAt     time.Time // Timestamp of when this address was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// Snapshot copies the fields an order keeps from its shipping address.
func (a *Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		FullName:      a.FullName,
		Phone:         a.Phone,
		Email:         a.Email,
		Street:        a.Street,
		City:          a.City,
		PostalCode:    a.PostalCode,
		ProvinceState: a.ProvinceState,
		Country:       a.Country,
	}
}

// AddressSnapshot is an immutable copy of an address stored on an order.
type AddressSnapshot struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Street        string `json:"street"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	ProvinceState string `json:"province_state"`
	Country       string `json:"country"`
}
