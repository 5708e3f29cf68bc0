package auth

// Notifier entrega el código de reset al usuario por un canal externo
// (email/SMS). La implementación de demo solo lo registra en el log.
type Notifier interface {
	SendResetCode(email, code string) error
}
