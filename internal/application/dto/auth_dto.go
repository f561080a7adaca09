package dto

// RegisterRequest entrada para registro público. El rol se limita a
// team_member y project_manager; cualquier otro valor cae a team_member.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse salida de register/login: usuario y par de tokens.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshRequest entrada para rotar el refresh token (también para logout).
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPairResponse salida de refresh: solo el nuevo par de tokens.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
