package dto

// Envelope envoltura uniforme de todas las respuestas de la API:
// { "success": bool, "data": ..., "error": "...", "message": "..." }.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK envuelve datos de una respuesta exitosa.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage respuesta exitosa sin datos, solo mensaje.
func OKMessage(msg string) Envelope {
	return Envelope{Success: true, Message: msg}
}

// Err envuelve un mensaje de error.
func Err(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}
