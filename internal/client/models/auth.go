package models

// LoginCredentials is the /auth/login request payload.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorChallenge describes a pending second-factor verification:
// where the code was sent, when it expires, and over which channel.
type TwoFactorChallenge struct {
	Email            string `json:"email"`
	ExpiresAt        string `json:"expiresAt"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
	DeliveryChannel  string `json:"deliveryChannel"`
}

// LoginResponse is the /auth/login reply. When RequiresTwoFactor is set the
// session is not established yet and Challenge carries the pending challenge.
type LoginResponse struct {
	IsSuccess         bool                `json:"isSuccess"`
	Message           string              `json:"message"`
	ExpiresAt         string              `json:"expiresAt,omitempty"`
	RequiresTwoFactor bool                `json:"requiresTwoFactor,omitempty"`
	Challenge         *TwoFactorChallenge `json:"challenge,omitempty"`
}

// TwoFactorVerifyRequest completes a challenged login.
type TwoFactorVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// TwoFactorConfirmResponse is the /auth/confirmar-2fa reply.
type TwoFactorConfirmResponse struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
	ExpiresAt string `json:"expiresAt"`
}

// TwoFactorResendResponse is the /auth/reenviar-2fa reply.
type TwoFactorResendResponse struct {
	IsSuccess bool               `json:"isSuccess"`
	Message   string             `json:"message"`
	Challenge TwoFactorChallenge `json:"challenge"`
}

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Document  string `json:"document"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CityID    int    `json:"cityId"`
	PersonID  int    `json:"personId,omitempty"`
	RoleIDs   []int  `json:"roleIds,omitempty"`
}

// ChangePasswordRequest rotates the current user's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// PasswordResetConfirm completes a password recovery with the emailed code.
type PasswordResetConfirm struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}
