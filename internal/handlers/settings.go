package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/genstudio-io/genstudio/internal/services"
)

// SettingsHandler handles the console settings page requests
type SettingsHandler struct {
	template        *template.Template
	settingsService services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(templatePath string, settingsService services.SettingsService) (*SettingsHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &SettingsHandler{
		template:        tmpl,
		settingsService: settingsService,
	}, nil
}

// ServeHTTP handles the GET / request
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	settings, err := h.settingsService.GetSettings()
	if err != nil {
		log.Printf("Error loading settings: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Render the template with the current settings
	if err := h.template.Execute(w, settings); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
