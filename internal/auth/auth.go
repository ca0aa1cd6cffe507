package auth

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")

// User is a seed-only account. The list is fixed at boot and never persisted
// to disk. Passwords are compared in plaintext, a known weakness carried over
// deliberately.
type User struct {
	ID       string
	Username string
	Password string
	Role     string
}

// SeedUsers is the fixed account list served by the credential check.
func SeedUsers() []User {
	return []User{
		{ID: "u_admin", Username: "admin", Password: "changeme", Role: "admin"},
		{ID: "u_editor", Username: "editor", Password: "terracotta", Role: "editor"},
	}
}

// Session is what a successful login returns.
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type Service struct {
	users  []User
	tokens *TokenMaker
}

func NewService(users []User, tokens *TokenMaker) *Service {
	return &Service{users: users, tokens: tokens}
}

// Authenticate checks username and password against the fixed list by exact
// equality. Any mismatch is ErrInvalidCredentials.
func (s *Service) Authenticate(username, password string) (Session, error) {
	for _, u := range s.users {
		if u.Username != username || u.Password != password {
			continue
		}

		tok, err := s.tokens.New(u.ID, u.Username, u.Role)
		if err != nil {
			return Session{}, err
		}
		return Session{ID: u.ID, Username: u.Username, Role: u.Role, Token: tok}, nil
	}
	return Session{}, ErrInvalidCredentials
}

// VerifyToken parses a token previously issued by Authenticate.
func (s *Service) VerifyToken(token string) (Claims, error) {
	return s.tokens.Parse(token)
}
