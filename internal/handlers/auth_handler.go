package handlers

import (
	"errors"
	"log"

	"storeapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/auth", h.HandleLogin)
}

// CredentialsRequest is the body of both /register and /auth.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,notblank,max=80"`
	Password string `json:"password" validate:"required,notblank"`
}

func (h *AuthHandler) parseCredentials(c *fiber.Ctx) (*CredentialsRequest, string) {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing credentials: %v", err)
		return nil, "Invalid request body"
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, validationMessage(err)
	}
	return &req, ""
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	req, problem := h.parseCredentials(c)
	if req == nil {
		return message(c, fiber.StatusBadRequest, problem)
	}

	if _, err := h.authService.RegisterUser(c.UserContext(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return message(c, fiber.StatusBadRequest, "A user with that username already exist")
		}
		if errors.Is(err, services.ErrPasswordTooLong) {
			return message(c, fiber.StatusBadRequest, "password: Field 'password' must be at most 72 bytes long")
		}
		log.Printf("Error registering user: %v", err)
		return message(c, fiber.StatusInternalServerError, "An error occurred registering the user.")
	}

	return message(c, fiber.StatusCreated, "User created successfully.")
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	req, problem := h.parseCredentials(c)
	if req == nil {
		return message(c, fiber.StatusBadRequest, problem)
	}

	token, err := h.authService.LoginUser(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return message(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("Error during login for user %s: %v", req.Username, err)
		return message(c, fiber.StatusInternalServerError, "An error occurred during login.")
	}

	return c.JSON(fiber.Map{
		"access_token": token,
	})
}
