package entity

import "time"

// User representa una cuenta del sistema. El email normalizado
// (minúsculas, sin espacios) es la clave única de la colección.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"pass"` // bcrypt hash, nunca plano después de persistir
	CreatedAt    time.Time  `json:"created"`
	OTP          string     `json:"otp,omitempty"`     // código de reset vigente (a lo sumo uno)
	OTPExpiresAt *time.Time `json:"otp_exp,omitempty"` // expiración del código, chequeo perezoso
}

// HasValidOTP indica si el usuario tiene un código de reset vigente a la hora dada.
func (u *User) HasValidOTP(now time.Time) bool {
	return u.OTP != "" && u.OTPExpiresAt != nil && u.OTPExpiresAt.After(now)
}

// ClearOTP invalida el código de reset pendiente.
func (u *User) ClearOTP() {
	u.OTP = ""
	u.OTPExpiresAt = nil
}
