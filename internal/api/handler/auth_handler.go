package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotel-louvain/booking-system/internal/api/metrics"
	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
	"github.com/hotel-louvain/booking-system/internal/session"
)

// AuthHandler serves the registration, login, and logout pages.
type AuthHandler struct {
	auth     ports.AuthService
	sessions *session.Manager
	logger   zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, sessions *session.Manager, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, logger: logger}
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{})
}

// Register handles POST /register. Validation failures re-render the form
// with a message; a fresh session is started on success.
func (h *AuthHandler) Register(c echo.Context) error {
	var f registerForm
	if err := c.Bind(&f); err != nil {
		return c.Render(http.StatusOK, "register.html", echo.Map{"Error": msgServerError})
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:           f.Email,
		Username:        f.Username,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
	})
	if err != nil {
		return c.Render(http.StatusOK, "register.html", echo.Map{"Error": h.registerMessage(err)})
	}

	if err := h.startSession(c, user); err != nil {
		h.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to start session")
		return c.Render(http.StatusOK, "register.html", echo.Map{"Error": msgServerError})
	}

	metrics.RegistrationsTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

// Login handles POST /login. Unknown email and wrong password render the
// same message.
func (h *AuthHandler) Login(c echo.Context) error {
	var f loginForm
	if err := c.Bind(&f); err != nil {
		return c.Render(http.StatusOK, "login.html", echo.Map{"Error": msgServerError})
	}

	user, err := h.auth.Login(c.Request().Context(), f.Email, f.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Render(http.StatusOK, "login.html", echo.Map{"Error": msgBadCredentials})
		}
		h.logger.Error().Err(err).Msg("login failed")
		return c.Render(http.StatusOK, "login.html", echo.Map{"Error": msgServerError})
	}

	if err := h.startSession(c, user); err != nil {
		h.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to start session")
		return c.Render(http.StatusOK, "login.html", echo.Map{"Error": msgServerError})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout: the session record is destroyed before the
// redirect is issued.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Error().Err(err).Msg("failed to destroy session")
		}
	}
	c.SetCookie(h.sessions.ClearCookie())
	return c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) startSession(c echo.Context, user *domain.User) error {
	sess, token, err := h.sessions.Start(c.Request().Context(), user)
	if err != nil {
		return err
	}
	c.SetCookie(h.sessions.Cookie(token, sess.ExpiresAt))
	return nil
}

func (h *AuthHandler) registerMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return msgMissingFields
	case errors.Is(err, domain.ErrPasswordMismatch):
		return msgPasswordMismatch
	case errors.Is(err, domain.ErrUserExists):
		return msgAccountExists
	default:
		h.logger.Error().Err(err).Msg("registration failed")
		return msgServerError
	}
}
