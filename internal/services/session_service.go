package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/config"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/identity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidEmail       = errors.New("a valid email is required")
	ErrOnboardingRequired = errors.New("both onboarding answers are required")
	ErrNotLoggedIn        = errors.New("nobody is logged in")
)

// SessionService logs identities in and out and hands out the bearer token
// the protected routes expect. There are no passwords; any email works.
type SessionService struct {
	cfg    *config.Config
	holder *identity.Holder
	data   *appdata.Store
	now    func() time.Time
}

func NewSessionService(cfg *config.Config, holder *identity.Holder, data *appdata.Store) *SessionService {
	return &SessionService{cfg: cfg, holder: holder, data: data, now: time.Now}
}

func (s *SessionService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(req.Email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := s.holder.Login(ctx, email); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return s.session(email)
}

// Signup records the onboarding answers for the new identity and then logs
// it in, so the answers are part of the first load.
func (s *SessionService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(req.Email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	ob := appdata.Onboarding{
		GrowthArea:     strings.TrimSpace(req.GrowthArea),
		SuccessFeeling: strings.TrimSpace(req.SuccessFeeling),
	}
	if ob.GrowthArea == "" || ob.SuccessFeeling == "" {
		return nil, ErrOnboardingRequired
	}
	if err := s.data.SaveOnboarding(ctx, email, ob); err != nil {
		return nil, fmt.Errorf("save onboarding: %w", err)
	}
	if err := s.holder.Login(ctx, email); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return s.session(email)
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.holder.Logout(ctx)
}

// Me describes the current identity.
func (s *SessionService) Me() (*dto.UserResponse, error) {
	id := s.holder.Current()
	if id == "" {
		return nil, ErrNotLoggedIn
	}
	return &dto.UserResponse{
		Identity:    id,
		DisplayName: identity.DisplayName(id),
		Avatar:      s.holder.Avatar(),
	}, nil
}

func (s *SessionService) SetAvatar(ctx context.Context, dataURI string) (*dto.UserResponse, error) {
	if err := s.holder.SetAvatar(ctx, dataURI); err != nil {
		return nil, err
	}
	return s.Me()
}

func (s *SessionService) session(id string) (*dto.SessionResponse, error) {
	token, err := s.issueToken(id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.SessionResponse{
		AccessToken: token,
		User: dto.UserResponse{
			Identity:    id,
			DisplayName: identity.DisplayName(id),
			Avatar:      s.holder.Avatar(),
		},
	}, nil
}

func (s *SessionService) issueToken(id string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": id,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t\n")
}
