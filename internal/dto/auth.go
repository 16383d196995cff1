package dto

// IssueTokenRequest is the body of POST /jwt. The posted email becomes the
// token's subject claim.
type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ExchangeCodeRequest is the body of POST /auth/google/exchange-code.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
