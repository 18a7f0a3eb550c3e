package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyEmail    = errors.New("email não pode ser vazio")
	ErrEmptyPassword = errors.New("senha não pode ser vazia")
)

// Role representa o papel/função do usuário
type Role string

// Status representa o status do usuário
type Status string

// Constantes para Role
const (
	RoleAdmin    Role = "admin"    // Administrador do sistema
	RoleManager  Role = "manager"  // Gerente
	RoleVendedor Role = "vendedor" // Representante de vendas
)

// Constantes para Status
const (
	StatusActive   Status = "active"   // Usuário ativo
	StatusInactive Status = "inactive" // Usuário inativo
)

// User representa um usuário do sistema
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // O hash da senha não é retornado nas respostas JSON
	Role        Role       `json:"role"`
	Status      Status     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já com hash
func NewUser(name, email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if role == "" {
		role = RoleVendedor
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
