package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/lexdesk/internal/auth"
	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/config"
	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/logging"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// Session is a logged-in user as seen by the front-end.
type Session struct {
	Username string
	Role     models.Role
	Token    string
}

// AuthService verifies credentials against bcrypt hashes in the users
// table and issues session tokens.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	secret      []byte
	sessionTTL  time.Duration
	cost        int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *AuthService {
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret = common.GenerateRandByteArray(32)
	}
	return &AuthService{
		db:          db,
		repomanager: m,
		logger:      logger,
		secret:      secret,
		sessionTTL:  cfg.SessionTTL,
		cost:        bcrypt.DefaultCost,
	}
}

func (s *AuthService) hash(password string) ([]byte, error) {
	pw := []byte(password)
	defer common.WipeByteArray(pw)
	h, err := bcrypt.GenerateFromPassword(pw, s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password is longer than 72 bytes", common.ErrValidation)
		}
		return nil, fmt.Errorf("%w: hash password: %w", common.ErrorInternal, err)
	}
	return h, nil
}

// dummy is compared against when the user does not exist, so an unknown
// name costs the same time as a wrong password.
func (s *AuthService) dummy() []byte {
	s.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword(common.GenerateRandByteArray(16), s.cost)
		if err != nil {
			panic(err)
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

func checkCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	if username != strings.TrimSpace(username) {
		return fmt.Errorf("%w: username has leading or trailing spaces", common.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	return nil
}

func (s *AuthService) createUser(ctx context.Context, tx dbx.DBTX, username, password string, role models.Role) (*models.User, error) {
	if err := checkCredentials(username, password); err != nil {
		return nil, err
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: hash, Role: role}
	if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			return nil, fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
		}
		return nil, err
	}
	return user, nil
}

// Register creates a user. A taken username returns common.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	user, err := s.createUser(ctx, s.db, username, password, role)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user registered", "username", username, "role", role)
	return user, nil
}

// NeedsBootstrap reports whether no user exists yet.
func (s *AuthService) NeedsBootstrap(ctx context.Context) (bool, error) {
	n, err := s.repomanager.Users(s.db).Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Bootstrap creates the first admin account. It does nothing and returns
// false if any user already exists.
func (s *AuthService) Bootstrap(ctx context.Context, username, password string) (bool, error) {
	created := false
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.Users(tx).Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		if _, err := s.createUser(ctx, tx, username, password, models.RoleAdmin); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if created {
		s.logger.Info(ctx, "initial admin created", "username", username)
	}
	return created, nil
}

// Verify checks password against the stored hash. It returns the user's
// role when ok is true. A wrong password and an unknown user look the
// same; err is set only when storage fails.
func (s *AuthService) Verify(ctx context.Context, username, password string) (bool, models.Role, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
			return false, "", nil
		}
		return false, "", err
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return false, "", nil
	}
	return true, user.Role, nil
}

// ChangePassword replaces the stored hash. Sessions already issued stay
// valid until they expire.
func (s *AuthService) ChangePassword(ctx context.Context, username, newPassword string) error {
	if err := checkCredentials(username, newPassword); err != nil {
		return err
	}
	hash, err := s.hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repomanager.Users(s.db).UpdatePasswordHash(ctx, username, hash); err != nil {
		return err
	}
	s.logger.Info(ctx, "password changed", "username", username)
	return nil
}

// Login verifies the credentials and returns a signed session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	ok, role, err := s.Verify(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn(ctx, "login failed", "username", username)
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(username, role, s.secret, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: sign session: %w", common.ErrorInternal, err)
	}
	s.logger.Info(ctx, "login", "username", username, "role", role)
	return &Session{Username: username, Role: role, Token: token}, nil
}

// ParseSession validates token and rebuilds the session it stands for.
func (s *AuthService) ParseSession(token string) (*Session, error) {
	claims, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return nil, err
	}
	return &Session{Username: claims.Username, Role: claims.Role, Token: token}, nil
}

// RequireRole returns common.ErrorUnauthorized without a session and
// common.ErrForbidden when the session's role differs from role.
func (s *AuthService) RequireRole(session *Session, role models.Role) error {
	if session == nil {
		return common.ErrorUnauthorized
	}
	current, err := s.ParseSession(session.Token)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	if current.Role != role {
		return fmt.Errorf("%w: requires role %s", common.ErrForbidden, role)
	}
	return nil
}
