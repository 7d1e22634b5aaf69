package dto

// SocialAuthRequest is the claim payload a client-side SDK flow hands in
// for Google, Facebook, or Twitter. Each adapter reads the fields it
// cares about; the provider-specific id field names match what the
// frontend SDKs emit.
type SocialAuthRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	GoogleID       string `json:"google_id"`
	FacebookID     string `json:"facebook_id"`
	TwitterID      string `json:"twitter_id"`
	ProfilePicture string `json:"profile_picture"`

	// IDToken, when present on a Google exchange, is verified against the
	// configured client id and its claims take precedence over the loose
	// fields above.
	IDToken string `json:"id_token"`
}

// TwitterAuthorizeResponse is the authorize-step output: the URL to send
// the user to, plus the anti-CSRF state the callback must echo.
type TwitterAuthorizeResponse struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}

// TwitterCallbackRequest is the callback-step input.
type TwitterCallbackRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state" binding:"required"`
}

// DeletionRequest asks for an account's data to be removed.
type DeletionRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Reason string `json:"reason"`
}

// DeletionResponse is deliberately identical whether or not the email is
// registered.
type DeletionResponse struct {
	Message          string `json:"message"`
	ConfirmationCode string `json:"confirmation_code"`
}
