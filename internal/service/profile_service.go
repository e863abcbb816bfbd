package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"mime"
	"strings"

	"lockbox/internal/models"
	"lockbox/internal/store"
)

// MaxImageBytes is the upload size limit for profile images (5 MiB).
const MaxImageBytes = 5 * 1024 * 1024

// ProfileService manages the profile asset store: the per-account profile
// image payload and the address record.
//
// The address lives under a single global key, so every account on one store
// shares one address.
type ProfileService struct {
	store    store.Store
	accounts *AccountService
	sessions *SessionService
}

// NewProfileService returns a ProfileService over the given store and
// collaborating services.
func NewProfileService(s store.Store, accounts *AccountService, sessions *SessionService) *ProfileService {
	return &ProfileService{store: s, accounts: accounts, sessions: sessions}
}

// UploadImageInput holds an image upload.
type UploadImageInput struct {
	AccountID   int
	ContentType string
	Content     []byte
}

// SetImage validates and stores a profile image for the account, then
// updates the denormalized copies on the account record and the session
// snapshot. Validation runs entirely before the first write, so a rejected
// upload leaves all three locations untouched.
//
// Rejected with a validation error: empty payloads, payloads over
// MaxImageBytes, content types outside JPEG/PNG/GIF, and payloads that do
// not decode as an image.
func (s *ProfileService) SetImage(ctx context.Context, in UploadImageInput) (string, error) {
	if len(in.Content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if len(in.Content) > MaxImageBytes {
		return "", models.NewValidationError("File too large (max 5MB)")
	}

	contentType := normalizeContentType(in.ContentType)
	if !isAllowedImageMIME(contentType) {
		return "", models.NewValidationError("Unsupported image type (JPG, PNG, GIF only)")
	}

	// Integrity pass: the payload must actually decode as an image.
	if _, _, err := image.Decode(bytes.NewReader(in.Content)); err != nil {
		return "", models.NewValidationError("Invalid image file")
	}

	payload := encodeDataURL(contentType, in.Content)

	// Commit the keyed payload first, then the denormalized copies.
	if err := store.PutJSON(ctx, s.store, store.ProfileImageKey(in.AccountID), payload); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := s.accounts.SetImage(ctx, in.AccountID, payload); err != nil {
		return "", err
	}
	if err := s.sessions.UpdateSnapshot(ctx, models.SessionPatch{ProfileImage: &payload}); err != nil {
		return "", err
	}
	return payload, nil
}

// GetImage returns the stored image payload for the account, if any.
func (s *ProfileService) GetImage(ctx context.Context, accountID int) (string, bool, error) {
	var payload string
	ok, err := store.GetJSON(ctx, s.store, store.ProfileImageKey(accountID), &payload)
	if err != nil {
		return "", false, models.NewInternalError(err)
	}
	return payload, ok, nil
}

// RemoveImage deletes the stored payload and strips the image reference from
// the account record and the session snapshot.
func (s *ProfileService) RemoveImage(ctx context.Context, accountID int) error {
	if err := s.store.Delete(ctx, store.ProfileImageKey(accountID)); err != nil {
		return models.NewInternalError(err)
	}
	if err := s.accounts.RemoveImage(ctx, accountID); err != nil {
		return err
	}
	cleared := ""
	return s.sessions.UpdateSnapshot(ctx, models.SessionPatch{ProfileImage: &cleared})
}

// SetAddress validates that every field is present and overwrites the global
// address slot. A missing field leaves the prior address unchanged.
func (s *ProfileService) SetAddress(ctx context.Context, addr models.Address) error {
	required := []struct {
		label string
		value string
	}{
		{"street", addr.Street},
		{"city", addr.City},
		{"state", addr.State},
		{"zipCode", addr.ZipCode},
		{"country", addr.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return models.NewMissingFieldError(f.label)
		}
	}

	if err := store.PutJSON(ctx, s.store, store.KeyAddress, addr); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetAddress returns the stored address, or empty defaults when none was saved.
func (s *ProfileService) GetAddress(ctx context.Context) (models.Address, error) {
	var addr models.Address
	if _, err := store.GetJSON(ctx, s.store, store.KeyAddress, &addr); err != nil {
		return models.Address{}, models.NewInternalError(err)
	}
	return addr, nil
}

// encodeDataURL inlines the payload as a base64 data URL, the format the
// stored value keeps end to end.
func encodeDataURL(contentType string, content []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(content))
}

func isAllowedImageMIME(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif":
		return true
	default:
		return false
	}
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
