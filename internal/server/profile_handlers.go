package server

import (
	"io"
	"net/http"

	"lockbox/internal/models"
	"lockbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Profile handles GET /api/profile. It renders the session snapshot plus the
// stored profile image, the data the profile screen needs at mount.
func (s *Server) Profile(c *fiber.Ctx) error {
	session := currentSession(c)

	payload, _, err := s.profiles.GetImage(c.Context(), session.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":         session,
		"profileImage": payload,
	})
}

// UploadImage handles PUT /api/profile/image. Expects a multipart form with
// an "image" file field.
func (s *Server) UploadImage(c *fiber.Ctx) error {
	session := currentSession(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read file"))
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read file"))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	payload, err := s.profiles.SetImage(c.Context(), service.UploadImageInput{
		AccountID:   session.ID,
		ContentType: contentType,
		Content:     content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"profileImage": payload,
	})
}

// RemoveImage handles DELETE /api/profile/image.
func (s *Server) RemoveImage(c *fiber.Ctx) error {
	session := currentSession(c)

	if err := s.profiles.RemoveImage(c.Context(), session.ID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile image removed",
	})
}

// GetAddress handles GET /api/profile/address.
func (s *Server) GetAddress(c *fiber.Ctx) error {
	addr, err := s.profiles.GetAddress(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"address": addr,
	})
}

// PutAddress handles PUT /api/profile/address.
func (s *Server) PutAddress(c *fiber.Ctx) error {
	var addr models.Address
	if err := c.BodyParser(&addr); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.profiles.SetAddress(c.Context(), addr); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"address": addr,
	})
}
