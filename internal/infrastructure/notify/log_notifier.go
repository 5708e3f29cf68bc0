// Package notify contiene adaptadores del puerto auth.Notifier.
package notify

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-lite/internal/application/auth"
)

var _ auth.Notifier = (*LogNotifier)(nil)

// LogNotifier entrega el código de reset escribiéndolo en el log.
// Sustituir por un adaptador SMTP/SMS para entrega real.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier construye el notifier de demo.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// SendResetCode registra el código en el log (modo demo).
func (n *LogNotifier) SendResetCode(email, code string) error {
	n.log.Info().Str("email", email).Str("otp", code).Msg("código de reset generado")
	return nil
}
