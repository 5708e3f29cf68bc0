package dto

// SignupRequest payload de la acción signup.
type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

// LoginRequest payload de la acción login.
type LoginRequest struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

// SendOTPRequest payload de la acción send_otp.
type SendOTPRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest payload de la acción reset_password.
type ResetPasswordRequest struct {
	Email   string `json:"email"`
	Code    string `json:"code"`
	NewPass string `json:"newpass"`
}

// UserProfile perfil público de un usuario; nunca incluye el hash.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginData resultado de un login exitoso: perfil + token de identidad.
type LoginData struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// LoginResponse respuesta de login.
type LoginResponse struct {
	Result
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// OTPResponse respuesta de send_otp. El código viaja en la respuesta solo en
// modo demo (en producción se entrega por el Notifier).
type OTPResponse struct {
	Result
	OTP string `json:"otp"`
}
