package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// VendorStatus represents whether a DID vendor may be used for search/purchase.
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "active"
	VendorStatusInactive VendorStatus = "inactive"
)

// VendorNameCommio is the registry key of the Commio (thinQ) integration.
const VendorNameCommio = "Commio"

var ErrMissingCredentials = errors.New("vendor credentials incomplete")

// Vendor is a DID supply vendor with its API credentials.
type Vendor struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"vendor_name"`
	Username   string       `json:"username"`
	TokenEnc   string       `json:"-"` // AES-256-GCM, never expose
	Token      string       `json:"-"` // decrypted in memory by the vendor directory
	AccountRef string       `json:"account_ref"`
	Status     VendorStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// IsActive returns true if the vendor is enabled.
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// VendorCredentials are the plaintext values an integration authenticates with.
type VendorCredentials struct {
	Username   string
	Token      string
	AccountRef string
}

// Credentials returns the vendor's credentials or ErrMissingCredentials when any is blank.
func (v *Vendor) Credentials() (VendorCredentials, error) {
	if v.Username == "" || v.Token == "" || v.AccountRef == "" {
		return VendorCredentials{}, ErrMissingCredentials
	}
	return VendorCredentials{Username: v.Username, Token: v.Token, AccountRef: v.AccountRef}, nil
}

// IsValidVendorStatus checks a status string from user input.
func IsValidVendorStatus(s string) bool {
	return s == string(VendorStatusActive) || s == string(VendorStatusInactive)
}

// CandidateNumber is a number offered by a vendor search.
type CandidateNumber struct {
	Number     string `json:"number"`
	VendorRef  string `json:"vendor_ref,omitempty"`
	NPA        string `json:"npa,omitempty"`
	NXX        string `json:"nxx,omitempty"`
	RateCenter string `json:"rate_center,omitempty"`
	State      string `json:"state,omitempty"`
}
