package models

import "time"

// BankDetails are printed on invoices so customers know where to pay.
type BankDetails struct {
	BankName  string `json:"bankName"`
	AccountNo string `json:"accountNo"`
	IFSC      string `json:"ifsc"`
}

// Profile is the public view of a registered user and their business.
// It carries no secret material.
type Profile struct {
	ID              string      `json:"id"`
	Email           string      `json:"email"`
	Name            string      `json:"name"`
	BusinessName    string      `json:"businessName"`
	BusinessAddress string      `json:"businessAddress"`
	Phone           string      `json:"phone"`
	GSTNo           string      `json:"gstNo"`
	BankDetails     BankDetails `json:"bankDetails"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Credential is the stored user record. PasswordHash never leaves the
// user directory; callers only ever see the Profile projection.
type Credential struct {
	Profile
	PasswordHash string `json:"passwordHash"`
}

// AuthUser is the identity attached to a session.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Identity returns the session identity for this profile.
func (p *Profile) Identity() AuthUser {
	return AuthUser{ID: p.ID, Email: p.Email, Name: p.Name}
}

// RegisterData is the input to user registration.
type RegisterData struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Name            string `json:"name" validate:"required"`
	BusinessName    string `json:"businessName" validate:"required"`
	BusinessAddress string `json:"businessAddress"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	GSTNo           string `json:"gstNo" validate:"omitempty,gstin"`
}

// ProfileUpdate holds the editable profile fields. Nil fields are left as is.
type ProfileUpdate struct {
	Name            *string      `json:"name,omitempty" validate:"omitempty,min=1"`
	BusinessName    *string      `json:"businessName,omitempty" validate:"omitempty,min=1"`
	BusinessAddress *string      `json:"businessAddress,omitempty"`
	Phone           *string      `json:"phone,omitempty" validate:"omitempty,phone"`
	GSTNo           *string      `json:"gstNo,omitempty" validate:"omitempty,gstin"`
	BankDetails     *BankDetails `json:"bankDetails,omitempty"`
}
