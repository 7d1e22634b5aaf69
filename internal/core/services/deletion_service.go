package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/platform/mailer"
	"github.com/google/uuid"
)

// deletionService records data-deletion requests. The confirmation code
// is a random opaque token, not derived from the email, and the outcome
// is identical whether or not the address has an account.
type deletionService struct {
	userRepo     ports.UserRepository
	deletionRepo ports.DeletionRequestRepository
	mail         *mailer.Mailer
	logger       *slog.Logger
}

// NewDeletionService creates the data-deletion request service.
func NewDeletionService(userRepo ports.UserRepository, deletionRepo ports.DeletionRequestRepository, mail *mailer.Mailer, logger *slog.Logger) portssvc.DeletionSvcFacade {
	return &deletionService{userRepo: userRepo, deletionRepo: deletionRepo, mail: mail, logger: logger}
}

var _ portssvc.DeletionSvcFacade = (*deletionService)(nil)

func (s *deletionService) RequestDeletion(ctx context.Context, email, reason string) (string, error) {
	code := uuid.NewString()

	if err := s.deletionRepo.Save(ctx, code, email, reason, time.Now()); err != nil {
		return "", fmt.Errorf("failed to record deletion request: %w", err)
	}

	// Confirmation mail is best effort and only goes out when the address
	// actually has an account; a send failure never changes the response.
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		body := fmt.Sprintf(
			"We received a request to delete the account data for this address.\n\nConfirmation code: %s\n\nThe request will be reviewed within 30 days.",
			code,
		)
		if mailErr := s.mail.Send(email, "Data deletion request received", body); mailErr != nil {
			s.logger.Warn("failed to send deletion confirmation mail", slog.String("error", mailErr.Error()))
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("deletion request user lookup failed", slog.String("error", err.Error()))
	}

	return code, nil
}
