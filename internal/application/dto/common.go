package dto

// ErrorResponse cuerpo de error HTTP: código máquina + mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
