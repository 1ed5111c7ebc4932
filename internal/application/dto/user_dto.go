package dto

// RegisterRequest entrada para registro. bcrypt no admite contraseñas de más de 72 bytes.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse confirmación de registro.
type RegisterResponse struct {
	Msg string `json:"msg"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string `json:"token"`
}
