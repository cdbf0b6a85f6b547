package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"zoo-web/catalog"
	"zoo-web/models"
	"zoo-web/service"
	"zoo-web/visitor"
	"zoo-web/wizard"
)

// User-facing auth messages
const (
	MissingCredentialsMessage = "Please enter both email and password"
	LoginFailedMessage        = "Failed to log in. Please check your credentials."
	ProfileFailedMessage      = "Failed to update profile. Please try again."
)

// AuthResponse is returned after login and registration
type AuthResponse struct {
	models.SessionResponse
	Redirect string `json:"redirect,omitempty"`
}

// RegistrationResponse is the sign-up wizard as seen by the page
type RegistrationResponse struct {
	wizard.State
	Strength *wizard.Strength `json:"passwordStrength,omitempty"`
	Redirect string           `json:"redirect,omitempty"`
}

// AuthController handles login, logout, registration and the profile page
type AuthController struct {
	store   *catalog.Store
	backend service.BackendInterface
	logger  *zap.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(store *catalog.Store, backend service.BackendInterface, logger *zap.Logger) *AuthController {
	return &AuthController{store: store, backend: backend, logger: logger}
}

// Login handles POST /api/auth/login
// Request body: {"email": "visitor@example.com", "password": "secret"}
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, c.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, c.logger, http.StatusBadRequest, MissingCredentialsMessage)
		return
	}

	done, ok := vc.Begin(visitor.ActionLogin)
	if !ok {
		writeError(w, c.logger, http.StatusConflict, "login already in progress")
		return
	}
	defer done()

	user, err := c.backend.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		c.logger.Warn("login failed", zap.String("visitor", vc.ID), zap.Error(err))
		writeError(w, c.logger, http.StatusBadGateway, LoginFailedMessage)
		return
	}
	if err := vc.SetSession(r.Context(), user); err != nil {
		c.logger.Error("Login: failed to store session", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to store session")
		return
	}

	c.logger.Info("visitor logged in", zap.String("visitor", vc.ID), zap.String("user", user.ID))
	writeJSON(w, c.logger, http.StatusOK, AuthResponse{
		SessionResponse: sessionResponse(user),
		Redirect:        "/",
	})
}

// Logout handles POST /api/auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	if err := vc.ClearSession(r.Context()); err != nil {
		c.logger.Error("Logout: failed to delete session", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to delete session")
		return
	}
	writeJSON(w, c.logger, http.StatusOK, sessionResponse(nil))
}

// Session handles GET /api/auth/session
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	writeJSON(w, c.logger, http.StatusOK, sessionResponse(vc.Session()))
}

// RegistrationState handles GET /api/register
func (c *AuthController) RegistrationState(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	writeJSON(w, c.logger, http.StatusOK, RegistrationResponse{State: c.registration(vc).State()})
}

// UpdateRegistration handles PUT /api/register
// Request body: {"firstName": "Ana", "password": "..."}; unknown fields are ignored.
func (c *AuthController) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	var fields map[string]string
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, c.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	wz := c.registration(vc)
	wz.SetAll(fields)

	resp := RegistrationResponse{State: wz.State()}
	if password, ok := fields[wizard.FieldPassword]; ok {
		strength := wizard.PasswordStrength(password)
		resp.Strength = &strength
	}
	writeJSON(w, c.logger, http.StatusOK, resp)
}

// NextRegistrationStep handles POST /api/register/next
// On the last step this submits the registration and signs the visitor in.
func (c *AuthController) NextRegistrationStep(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	done, ok := vc.Begin(visitor.ActionRegister)
	if !ok {
		writeJSON(w, c.logger, http.StatusConflict, RegistrationResponse{State: c.registration(vc).State()})
		return
	}
	defer done()

	st, err := c.registration(vc).Next(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, wizard.ErrStepInvalid):
		writeJSON(w, c.logger, http.StatusUnprocessableEntity, RegistrationResponse{State: st})
		return
	case errors.Is(err, wizard.ErrSubmitInFlight), errors.Is(err, wizard.ErrCompleted):
		writeJSON(w, c.logger, http.StatusConflict, RegistrationResponse{State: st})
		return
	case errors.Is(err, wizard.ErrSubmitFailed):
		c.logger.Warn("registration failed", zap.String("visitor", vc.ID), zap.Error(err))
		writeJSON(w, c.logger, http.StatusBadGateway, RegistrationResponse{State: st})
		return
	default:
		c.logger.Error("NextRegistrationStep: unexpected error", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "registration failed")
		return
	}

	resp := RegistrationResponse{State: st}
	if st.Completed {
		vc.ResetRegistration()
		resp.Redirect = "/"
	}
	writeJSON(w, c.logger, http.StatusOK, resp)
}

// PreviousRegistrationStep handles POST /api/register/back
func (c *AuthController) PreviousRegistrationStep(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	writeJSON(w, c.logger, http.StatusOK, RegistrationResponse{State: c.registration(vc).Back()})
}

// ResetRegistration handles POST /api/register/reset
func (c *AuthController) ResetRegistration(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	vc.ResetRegistration()
	writeJSON(w, c.logger, http.StatusOK, RegistrationResponse{State: c.registration(vc).State()})
}

// Profile handles GET /api/profile
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	user := vc.Session()
	if user == nil {
		c.writeUnauthorized(w)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, c.profileResponse(user))
}

// UpdateProfile handles PATCH /api/profile
// Request body: {"firstName": "Ana", "lastName": "Gómez", "email": "ana@example.com"}
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	current := vc.Session()
	if current == nil {
		c.writeUnauthorized(w)
		return
	}

	var patch models.ProfilePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, c.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if email := strings.TrimSpace(patch.Email); email != "" && !wizard.ValidEmail(email) {
		writeValidation(w, c.logger, map[string]string{wizard.FieldEmail: "Email is invalid"})
		return
	}

	done, ok := vc.Begin(visitor.ActionProfile)
	if !ok {
		writeError(w, c.logger, http.StatusConflict, "profile update already in progress")
		return
	}
	defer done()

	updated, err := c.backend.UpdateProfile(r.Context(), current, patch)
	if errors.Is(err, service.ErrNotAuthenticated) {
		c.writeUnauthorized(w)
		return
	}
	if err != nil {
		c.logger.Warn("profile update failed", zap.String("visitor", vc.ID), zap.Error(err))
		writeError(w, c.logger, http.StatusBadGateway, ProfileFailedMessage)
		return
	}
	if err := vc.SetSession(r.Context(), updated); err != nil {
		c.logger.Error("UpdateProfile: failed to store session", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to store session")
		return
	}
	writeJSON(w, c.logger, http.StatusOK, c.profileResponse(updated))
}

// registration returns the visitor's wizard; its submit registers with the
// backend and signs the visitor in
func (c *AuthController) registration(vc *visitor.Context) *wizard.Wizard {
	return vc.Registration(func() *wizard.Wizard {
		return wizard.NewRegistration(func(ctx context.Context, fields map[string]string) error {
			user, err := c.backend.Register(ctx, models.RegisterRequest{
				FirstName: fields[wizard.FieldFirstName],
				LastName:  fields[wizard.FieldLastName],
				Email:     fields[wizard.FieldEmail],
				Password:  fields[wizard.FieldPassword],
			})
			if err != nil {
				return err
			}
			return vc.SetSession(ctx, user)
		})
	})
}

func (c *AuthController) profileResponse(user *models.Session) models.ProfileResponse {
	return models.ProfileResponse{
		User:        *user,
		DisplayName: user.DisplayName(),
		Membership:  c.store.Membership(),
		Favorites:   c.store.FavoriteAnimals(),
	}
}

func (c *AuthController) writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, c.logger, http.StatusUnauthorized, UnauthorizedResponse{
		Error: "authentication required",
		Login: "/login",
	})
}

func sessionResponse(user *models.Session) models.SessionResponse {
	if user == nil {
		return models.SessionResponse{}
	}
	return models.SessionResponse{
		Authenticated: true,
		User:          user,
		DisplayName:   user.DisplayName(),
	}
}
