package auth

type LoginRequest struct {
	Operator string `json:"operator" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Operator  string `json:"operator"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
