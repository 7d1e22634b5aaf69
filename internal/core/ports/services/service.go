package services

import "github.com/ecodeed/academy_backend/internal/core/domain"

// ServiceContainer holds every service facade the handlers depend on.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Token      TokenSvcFacade
	User       UserSvcFacade
	Deletion   DeletionSvcFacade
	Course     CourseSvcFacade
	Enrollment EnrollmentSvcFacade

	// One adapter per provider that hands claims in directly.
	SocialAdapters map[domain.AuthProvider]SocialAdapter

	// TwitterOAuth is the server-side PKCE flow.
	TwitterOAuth TwitterOAuthSvcFacade
}
