package services

import (
	"log/slog"

	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/core/services/social"
	"github.com/ecodeed/academy_backend/internal/platform/config"
	"github.com/ecodeed/academy_backend/internal/platform/mailer"
	"github.com/ecodeed/academy_backend/internal/platform/statestore"
)

// NewContainer wires every service with its dependencies.
func NewContainer(cfg *config.Config, repos *ports.RepositoryProvider, store statestore.Store, mail *mailer.Mailer, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:       NewAuthService(repos.UserRepo),
		Token:      NewTokenService(cfg, repos.BlacklistRepo),
		User:       NewUserService(repos.UserRepo),
		Deletion:   NewDeletionService(repos.UserRepo, repos.DeletionRepo, mail, logger),
		Course:     NewCourseService(repos.CourseRepo),
		Enrollment: NewEnrollmentService(repos.CourseRepo, repos.EnrollmentRepo),
		SocialAdapters: map[domain.AuthProvider]portssvc.SocialAdapter{
			domain.ProviderGoogle:   social.NewGoogleAdapter(cfg.GoogleClientID),
			domain.ProviderFacebook: social.NewFacebookAdapter(),
			domain.ProviderTwitter:  social.NewTwitterAdapter(),
		},
		TwitterOAuth: social.NewTwitterOAuthService(
			cfg.TwitterClientID,
			cfg.TwitterClientSecret,
			cfg.TwitterCallbackURL,
			store,
			cfg.OAuthStateTTL,
			cfg.ProviderTimeout,
		),
	}
}
