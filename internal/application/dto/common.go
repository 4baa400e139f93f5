package dto

// Envelope es el sobre JSON de todas las respuestas de la API.
// Data se omite en errores; Message se omite en éxitos sin mensaje.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK construye un sobre de éxito.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail construye un sobre de error con mensaje.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
