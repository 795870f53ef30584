package session

import (
	"net/http"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/backend"
)

// User-facing messages stay in Spanish, matching what the platform's
// audience sees everywhere else.
const (
	msgInvalidCredentials = "Email o contraseña incorrectos"
	msgServerUnavailable  = "Error del servidor. Intenta más tarde."
	msgNoConnection       = "No hay conexión con el servidor. Revisa tu red."
	msgLoginFallback      = "Error al iniciar sesión"
	msgRegisterFallback   = "Error al registrarse"
	msgUpdateFallback     = "Error al actualizar perfil"
)

// classifyLoginError turns a backend error into an HTTP status for the
// gateway's own response plus the message shown next to the login form.
// 401 is read as wrong credentials; backends that use 401 for disabled
// accounts would need a more specific signal than this.
func classifyLoginError(err error) (int, string) {
	switch {
	case backend.IsConnectivity(err):
		return http.StatusBadGateway, msgNoConnection
	case backend.IsUnauthorized(err):
		return http.StatusUnauthorized, msgInvalidCredentials
	case backend.IsServerError(err):
		return http.StatusServiceUnavailable, msgServerUnavailable
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		if apiErr.Message != "" {
			return apiErr.StatusCode, apiErr.Message
		}
		return apiErr.StatusCode, msgLoginFallback
	}
	return http.StatusInternalServerError, msgLoginFallback
}

// classifyError passes the backend's own message through when there is
// one and falls back to a generic per-operation message otherwise.
func classifyError(err error, fallback string) (int, string) {
	if backend.IsConnectivity(err) {
		return http.StatusBadGateway, msgNoConnection
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		if apiErr.Message != "" {
			return apiErr.StatusCode, apiErr.Message
		}
		return apiErr.StatusCode, fallback
	}
	return http.StatusInternalServerError, fallback
}
