package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"zoo-web/visitor"
)

// ErrorResponse is the body of every failed request
// Example: {"error": "product not found"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field messages
// Example: {"error": "validation failed", "fields": {"email": "Email is invalid"}}
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// UnauthorizedResponse points an anonymous visitor at the login page
type UnauthorizedResponse struct {
	Error string `json:"error"`
	Login string `json:"login"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, ErrorResponse{Error: msg})
}

func writeValidation(w http.ResponseWriter, logger *zap.Logger, fields map[string]string) {
	writeJSON(w, logger, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// currentVisitor returns the visitor attached by the router middleware
func currentVisitor(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (*visitor.Context, bool) {
	vc := visitor.FromContext(r.Context())
	if vc == nil {
		logger.Error("request reached a controller without a visitor context", zap.String("path", r.URL.Path))
		writeError(w, logger, http.StatusInternalServerError, "visitor context missing")
		return nil, false
	}
	return vc, true
}

// queryInt parses a positive integer query parameter, returning 0 when absent or invalid
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
