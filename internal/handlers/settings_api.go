package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/genstudio-io/genstudio/internal/models"
	"github.com/genstudio-io/genstudio/internal/services"
)

// SettingsAPIHandler handles backend settings updates
type SettingsAPIHandler struct {
	settingsService services.SettingsService
}

// NewSettingsAPIHandler creates a new settings API handler
func NewSettingsAPIHandler(settingsService services.SettingsService) *SettingsAPIHandler {
	return &SettingsAPIHandler{
		settingsService: settingsService,
	}
}

// SettingsRequest represents the update request from the client
type SettingsRequest struct {
	Backend    string `json:"backend"`
	OllamaURL  string `json:"ollamaUrl"`
	LocalModel string `json:"localModel"`
}

// SettingsResponse represents the stored settings sent to the client
type SettingsResponse struct {
	Backend    string `json:"backend"`
	OllamaURL  string `json:"ollamaUrl"`
	LocalModel string `json:"localModel"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServeHTTP handles the settings update request
func (h *SettingsAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	settings, err := h.settingsService.UpdateSettings(models.BackendKind(req.Backend), req.OllamaURL, req.LocalModel)
	if err != nil {
		if isValidationError(err) {
			sendErrorResponse(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("Error updating settings: %v", err)
		sendErrorResponse(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	log.Printf("Settings updated - Backend: %s", settings.Backend)

	clientResp := SettingsResponse{
		Backend:    string(settings.Backend),
		OllamaURL:  settings.OllamaURL,
		LocalModel: settings.LocalModel,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(clientResp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// isValidationError reports whether the error is a domain validation failure
func isValidationError(err error) bool {
	return errors.Is(err, models.ErrInvalidBackend) ||
		errors.Is(err, models.ErrInvalidServerURL) ||
		errors.Is(err, models.ErrInvalidModel)
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
