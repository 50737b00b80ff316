package service

import (
	"context"
	"time"

	"vitrine/internal/config"
	"vitrine/internal/dto"
	"vitrine/internal/model"
	"vitrine/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

type AuthService interface {
	// Session upserts the identity posted by the OAuth gateway and mints the
	// session token. The returned user is nil when storage is unavailable.
	Session(ctx context.Context, req dto.SessionRequest) (token string, user *model.User, err error)
}

type authService struct {
	users repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

// ResolveRole decides which role to persist for an upserted identity. The
// wire payload never carries a role: the owner openId is always promoted to
// admin, every other identity gets write=false — the insert takes the column
// default and a conflicting row keeps its existing role.
func ResolveRole(openID, ownerOpenID string) (role string, write bool) {
	if ownerOpenID != "" && openID == ownerOpenID {
		return model.RoleAdmin, true
	}
	return "", false
}

func (s *authService) Session(ctx context.Context, req dto.SessionRequest) (string, *model.User, error) {
	u := &model.User{
		OpenID:       req.OpenID,
		LastSignedIn: time.Now(),
	}
	// last_signed_in is always written so the conflict update set is never
	// empty (postgres rejects an empty DO UPDATE SET).
	cols := []string{"last_signed_in"}

	if req.Name != nil {
		u.Name = req.Name
		cols = append(cols, "name")
	}
	if req.Email != nil {
		u.Email = req.Email
		cols = append(cols, "email")
	}
	if req.LoginMethod != nil {
		u.LoginMethod = req.LoginMethod
		cols = append(cols, "login_method")
	}
	if role, write := ResolveRole(req.OpenID, s.cfg.OwnerOpenID); write {
		u.Role = role
		cols = append(cols, "role")
	}

	if err := s.users.Upsert(ctx, u, cols); err != nil {
		return "", nil, err
	}
	user, err := s.users.FindByOpenID(ctx, req.OpenID)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(req.OpenID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) generateToken(openID string) (string, error) {
	ttl := time.Duration(s.cfg.SessionTTLHours) * time.Hour
	claims := jwt.MapClaims{
		"openId": openID,
		"exp":    time.Now().Add(ttl).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}
