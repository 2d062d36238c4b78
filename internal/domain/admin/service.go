package admin

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"coursematerials/internal/pkg/jwt"
	"coursematerials/internal/pkg/logger"
)

// Counter is satisfied by the section and material services.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Stats struct {
	Sections  int64 `json:"sections"`
	Materials int64 `json:"materials"`
}

type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Service guards the shared admin area and serves its dashboard.
type Service struct {
	passwordHash []byte
	jwt          *jwt.Service
	sections     Counter
	materials    Counter
	log          *logger.Logger
}

func NewService(passwordHash string, jwtService *jwt.Service, sections, materials Counter, log *logger.Logger) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		jwt:          jwtService,
		sections:     sections,
		materials:    materials,
		log:          log.With("service", "AdminService"),
	}
}

// Login exchanges the shared admin password for a bearer token.
func (s *Service) Login(ctx context.Context, password string) (*Session, error) {
	if len(s.passwordHash) == 0 {
		return nil, ErrLoginDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.log.Warn("admin login failed")
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken("admin", jwt.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin logged in")
	return &Session{AccessToken: token, ExpiresAt: time.Now().Add(s.jwt.TTL())}, nil
}

func (s *Service) Dashboard(ctx context.Context) (*Stats, error) {
	sections, err := s.sections.Count(ctx)
	if err != nil {
		return nil, err
	}
	materials, err := s.materials.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Sections: sections, Materials: materials}, nil
}
