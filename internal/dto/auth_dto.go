package dto

// SessionRequest is the identity payload the OAuth gateway posts after a
// successful login. It deliberately carries no role: role assignment is a
// server-side decision (owner openId → admin, everyone else → column
// default), so a role key in the body is ignored.
type SessionRequest struct {
	OpenID      string  `json:"openId" validate:"required,max=64"`
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,max=320"`
	LoginMethod *string `json:"loginMethod" validate:"omitempty,max=64"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
