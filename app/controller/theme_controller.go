package controller

import (
	"net/http"

	"go.uber.org/zap"

	"zoo-web/models"
)

// themeColors are the theme-color meta values per mode
var themeColors = map[string]string{
	models.ThemeLight: "#ffffff",
	models.ThemeDark:  "#121212",
}

// ThemeController handles the light/dark theme preference
type ThemeController struct {
	logger *zap.Logger
}

// NewThemeController creates a new ThemeController
func NewThemeController(logger *zap.Logger) *ThemeController {
	return &ThemeController{logger: logger}
}

// GetTheme handles GET /api/theme
func (c *ThemeController) GetTheme(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	writeJSON(w, c.logger, http.StatusOK, themeResponse(vc.Theme()))
}

// ToggleTheme handles POST /api/theme/toggle
func (c *ThemeController) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	mode, err := vc.ToggleTheme(r.Context())
	if err != nil {
		c.logger.Error("ToggleTheme: failed to persist theme", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to save theme")
		return
	}
	writeJSON(w, c.logger, http.StatusOK, themeResponse(mode))
}

func themeResponse(mode string) models.ThemeResponse {
	return models.ThemeResponse{Mode: mode, ThemeColor: themeColors[mode]}
}
