package model

// Manager is an account allowed to use the hub. Accounts come from config;
// PasswordHash is a bcrypt hash.
type Manager struct {
	Username     string `yaml:"username" json:"username"`
	Name         string `yaml:"name" json:"name"`
	PasswordHash string `yaml:"password_hash" json:"-"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
