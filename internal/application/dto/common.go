package dto

// Result cuerpo base de toda respuesta del dispatcher de acciones:
// bandera de éxito + mensaje legible. Los extras por acción embeben Result.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK construye un resultado exitoso.
func OK(msg string) Result {
	return Result{Success: true, Message: msg}
}

// Fail construye un resultado fallido.
func Fail(msg string) Result {
	return Result{Success: false, Message: msg}
}
