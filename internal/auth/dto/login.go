package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorAuthResponse is returned with 206 Partial Content when the
// user requires a second factor. It carries the login attempt id only,
// never the code itself.
type TwoFactorAuthResponse struct {
	Message        string `json:"message"`
	LoginAttemptID string `json:"loginAttemptId"`
}
