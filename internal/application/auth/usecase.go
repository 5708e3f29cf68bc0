package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
	"github.com/jhoicas/inventario-lite/pkg/jwt"
)

// otpTTL vigencia del código de reset.
const otpTTL = 5 * time.Minute

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de cuentas: registro, login y reset de password
// con código de un solo uso.
type AuthUseCase struct {
	users    repository.UserRepository
	notifier Notifier
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, notifier Notifier, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, notifier: notifier, jwtCfg: jwtCfg}
}

// NormalizeEmail aplica la normalización de la clave única: minúsculas y sin
// espacios en los extremos.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup crea una cuenta: hashea el password con bcrypt y persiste.
// Devuelve domain.ErrEmailAlreadyExists si el email normalizado ya existe.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.UserProfile, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Pass == "" {
		return nil, domain.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Pass), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserProfile{Name: user.Name, Email: user.Email}, nil
}

// Login verifica email/password y emite un JWT. Devuelve el perfil público
// (nunca el hash) y el token. Email desconocido y hash que no coincide
// responden el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginData, error) {
	email := NormalizeEmail(in.Email)
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Pass)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginData{
		User:  dto.UserProfile{Name: user.Name, Email: user.Email},
		Token: token,
	}, nil
}

// RequestReset genera un código numérico de 6 dígitos con vigencia de 5
// minutos y lo entrega por el Notifier. Solo hay un código vigente por
// usuario: una segunda solicitud pisa a la primera. Devuelve el código para
// el modo demo (la respuesta lo incluye en el campo otp).
func (uc *AuthUseCase) RequestReset(email string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return "", domain.ErrValidation
	}
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	code, err := generateCode()
	if err != nil {
		return "", err
	}
	exp := time.Now().Add(otpTTL)
	user.OTP = code
	user.OTPExpiresAt = &exp
	if err := uc.users.Update(user); err != nil {
		return "", err
	}
	if uc.notifier != nil {
		if err := uc.notifier.SendResetCode(user.Email, code); err != nil {
			return "", err
		}
	}
	return code, nil
}

// ResetPassword reemplaza el hash si el código coincide con el vigente y no
// expiró (chequeo perezoso al momento de uso); invalida el código en éxito.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Code == "" || in.NewPass == "" {
		return domain.ErrValidation
	}
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !user.HasValidOTP(time.Now()) || user.OTP != in.Code {
		return domain.ErrInvalidOTP
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ClearOTP()
	return uc.users.Update(user)
}

// generateCode produce un código numérico de 6 dígitos (100000–999999).
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
