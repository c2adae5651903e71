package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzastore/auth-system/internal/api/metrics"
	"github.com/pizzastore/auth-system/internal/api/middleware"
	"github.com/pizzastore/auth-system/internal/core/domain"
	"github.com/pizzastore/auth-system/internal/core/ports"
)

const unauthorizedMessage = "Invalid username or password."

type AuthHandler struct {
	authService ports.AuthService
	cookie      middleware.CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie middleware.CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Status reports whether the requesting client is signed in.
//
// @Summary      Session status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	status, err := h.authService.Status(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}

	if !status.LoggedIn {
		return c.JSON(http.StatusOK, statusResponse{
			LoggedIn: false,
			Message:  "No user is currently logged in.",
		})
	}

	return c.JSON(http.StatusOK, statusResponse{
		LoggedIn: true,
		Message:  "User is logged in.",
		UserID:   status.UserID,
		Role:     status.Role,
		Email:    status.Email,
	})
}

// Logout clears the server-side session and expires the cookie. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return err
	}
	h.cookie.Clear(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out."})
}

// Identify classifies an email so the client can pick the sign-in form.
//
// @Summary      Classify a login identifier
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      identifyRequest  true  "Email to classify"
// @Success      200   {object}  identifyResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/identify [post]
func (h *AuthHandler) Identify(c echo.Context) error {
	var req identifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	loginType, err := h.authService.Identify(c.Request().Context(), req.Email)
	metrics.IdentifyTotal.WithLabelValues(string(loginType)).Inc()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "A valid email address is required."})
	}

	return c.JSON(http.StatusOK, identifyResponse{LoginType: string(loginType)})
}

// CustomerSignIn authenticates a customer and establishes a session.
//
// @Summary      Customer sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      401   {object}  messageResponse
// @Router       /auth/signin/customer [post]
func (h *AuthHandler) CustomerSignIn(c echo.Context) error {
	return h.signIn(c, domain.LoginTypeCustomer, "customer", "Login successful")
}

// WorkerSignIn authenticates an employee and establishes a session.
//
// @Summary      Worker sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      401   {object}  messageResponse
// @Router       /auth/signin/worker [post]
func (h *AuthHandler) WorkerSignIn(c echo.Context) error {
	return h.signIn(c, domain.LoginTypeWorker, "worker", "Employee Login successful")
}

func (h *AuthHandler) signIn(c echo.Context, kind domain.LoginType, kindLabel, successMessage string) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	// Always a fresh ID: a pre-existing cookie is never reused for a new login.
	sessionID, err := middleware.NewSessionID()
	if err != nil {
		metrics.SignInAttemptsTotal.WithLabelValues(kindLabel, "error").Inc()
		return err
	}

	user, err := h.authService.SignIn(c.Request().Context(), kind, req.Username, req.Password, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SignInAttemptsTotal.WithLabelValues(kindLabel, "unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: unauthorizedMessage})
		}
		metrics.SignInAttemptsTotal.WithLabelValues(kindLabel, "error").Inc()
		return err
	}

	metrics.SignInAttemptsTotal.WithLabelValues(kindLabel, "success").Inc()
	h.cookie.Issue(c, sessionID)

	return c.JSON(http.StatusOK, signInResponse{
		Message: successMessage,
		User: userView{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
		},
	})
}

// Register creates a customer account. It never signs the customer in; the
// client follows up with the customer sign-in flow.
//
// @Summary      Register a new customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Customer profile"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address1:  req.Address1,
		Address2:  req.Address2,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, messageResponse{Message: "An account with that email already exists."})
		case errors.Is(err, domain.ErrInvalidEmail):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "A valid email address is required."})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Message: "Account created successfully.",
		User: userView{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}
