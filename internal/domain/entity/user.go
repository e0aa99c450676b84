// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPLength is the number of digits in a one-time password.
const OTPLength = 6

// OTPTTL is how long an issued one-time password stays valid by default.
const OTPTTL = 10 * time.Minute

// User is a customer or staff account.
type User struct {
	ID             uuid.UUID            // The Global Unique Identifier (GUID) for the user.
	Code           string               // Human-readable identifier, e.g. "U-101".
	Username       string               // Public handle chosen at registration.
	Email          string               // Login identifier, unique across users.
	Phone          string               // Contact phone number.
	Role           Role                 // Either "user" or "admin".
	Consent        bool                 // Terms of service acceptance captured at registration.
	IsActive       bool                 // False until the e-mail OTP is verified, or when disabled by an admin.
	FullName       string               // Display name.
	FirstName      string               // Given name.
	LastName       string               // Family name.
	Country        string               // Country of residence.
	ProfilePicture string               // Storage key of the uploaded profile picture.
	Notifications  NotificationSettings // Opt-in flags for outbound notifications.
	OTP            string               // Pending one-time password, empty when none is outstanding.
	OTPExpiresAt   *time.Time           // Expiry of the pending one-time password.
	CreatedAt      time.Time            // Timestamp of when this account was created.
	UpdatedAt      time.Time            // Timestamp of the last modification.
}

// IssueOTP stores a fresh one-time password valid for ttl from now.
func (u *User) IssueOTP(code string, now time.Time, ttl time.Duration) {
	if ttl <= 0 {
		ttl = OTPTTL
	}
	expiresAt := now.Add(ttl)
	u.OTP = code
	u.OTPExpiresAt = &expiresAt
}

// VerifyOTP reports whether code matches the outstanding one-time password and has not expired.
func (u *User) VerifyOTP(code string, now time.Time) bool {
	if u.OTP == "" || u.OTPExpiresAt == nil {
		return false
	}
	if now.After(*u.OTPExpiresAt) {
		return false
	}

	return u.OTP == code
}

// Activate marks the account verified and clears the outstanding OTP.
func (u *User) Activate() {
	u.IsActive = true
	u.OTP = ""
	u.OTPExpiresAt = nil
}

// NotificationSettings holds the user's notification opt-ins.
type NotificationSettings struct {
	OrderConfirmationEmail     bool `json:"order_confirmation_email"`
	PaymentSuccessNotification bool `json:"payment_success_notification"`
	ShippingDeliveryUpdates    bool `json:"shipping_delivery_updates"`
	AIDesignApprovalsAlerts    bool `json:"ai_design_approvals_alerts"`
	AccountActivityAlerts      bool `json:"account_activity_alerts"`
}
