package server

import (
	"lockbox/internal/models"
	"lockbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Validate input
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("First name, last name, email, and password are required"))
	}

	account, err := s.accounts.Register(c.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": account.Snapshot(),
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	account, err := s.accounts.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		// No session is established on failure.
		return respondError(c, err)
	}

	if err := s.sessions.Establish(c.Context(), account); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": account.Snapshot(),
	})
}

// Logout handles POST /api/auth/logout. It always succeeds, session or not.
func (s *Server) Logout(c *fiber.Ctx) error {
	if err := s.sessions.Terminate(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}
