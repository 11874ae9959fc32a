package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/records"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/cryptox"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/google/uuid"
)

// PasswordPolicy selects how Login checks a password.
type PasswordPolicy string

const (
	// PolicyDemo accepts DemoPassword for every registered email.
	PolicyDemo PasswordPolicy = "demo"
	// PolicyVerify checks the argon2id verifier stored at registration.
	PolicyVerify PasswordPolicy = "verify"
)

// DemoPassword is the shared password accepted under PolicyDemo.
const DemoPassword = "password123"

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService defines identity operations.
//
// Contract:
//   - Register: validate input, create the user, start a session for it.
//   - Login: check credentials and start a session.
//   - Logout: clear the session; idempotent.
//   - CurrentUser / IsLoggedIn: read the session without side effects.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte, name string) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.User
	IsLoggedIn(ctx context.Context) bool
}

type authService struct {
	mu      sync.Mutex
	store   kv.Store
	session *Session
	policy  PasswordPolicy
	log     logging.Logger

	now   func() time.Time
	newID func() string
}

// NewAuthService binds identity operations to store and session. An empty
// policy means PolicyDemo.
func NewAuthService(store kv.Store, session *Session, policy PasswordPolicy, log logging.Logger) AuthService {
	if policy == "" {
		policy = PolicyDemo
	}
	return &authService{
		store:   store,
		session: session,
		policy:  policy,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   newUserID,
	}
}

// newUserID returns a time-ordered random identifier. If the UUID source
// fails it falls back to a base36 timestamp with a random hex suffix.
func newUserID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	suffix, _ := common.MakeRandHexString(4)
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}

// Register checks, in order: all fields present, email shape, password
// length, email not taken. The first failing rule is reported.
func (a *authService) Register(ctx context.Context, email string, password []byte, name string) (models.User, error) {
	if email == "" || len(password) == 0 || name == "" {
		return models.User{}, validationError("all fields are required")
	}
	if !emailPattern.MatchString(email) {
		return models.User{}, validationError("please enter a valid email address")
	}
	if utf8.RuneCount(password) < MinPasswordLength {
		return models.User{}, validationError(fmt.Sprintf("password must be at least %d characters long", MinPasswordLength))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.users(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		if u.Email == email {
			return models.User{}, common.ErrDuplicateUser
		}
	}

	stored := models.StoredUser{User: models.User{
		ID:        a.newID(),
		Email:     email,
		Name:      name,
		CreatedAt: a.now(),
	}}
	if a.policy == PolicyVerify {
		stored.Salt, stored.Verifier = cryptox.NewVerifier(password)
	}
	users = append(users, stored)

	usersRaw, err := records.EncodeUsers(users)
	if err != nil {
		return models.User{}, fmt.Errorf("encode users: %w", err)
	}
	sessionRaw, err := records.EncodeSession(stored.User)
	if err != nil {
		return models.User{}, fmt.Errorf("encode session: %w", err)
	}

	// the user and its session are written together
	if err := a.session.commit(stored.User, func() error {
		return kv.SetAll(ctx, a.store, map[string]string{
			records.KeyUsers:       usersRaw,
			records.KeyCurrentUser: sessionRaw,
		})
	}); err != nil {
		return models.User{}, fmt.Errorf("save user: %w", err)
	}

	a.log.Info(ctx, "user registered", "user_id", stored.ID)
	return stored.User, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	if email == "" || len(password) == 0 {
		return models.User{}, validationError("email and password are required")
	}

	a.mu.Lock()
	users, err := a.users(ctx)
	a.mu.Unlock()
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	var found *models.StoredUser
	for i := range users {
		if users[i].Email == email {
			found = &users[i]
			break
		}
	}
	if found == nil || !a.passwordMatches(found, password) {
		a.log.Info(ctx, "login rejected")
		return models.User{}, common.ErrInvalidCredentials
	}

	if err := a.session.Start(ctx, found.User); err != nil {
		return models.User{}, fmt.Errorf("start session: %w", err)
	}
	a.log.Info(ctx, "user logged in", "user_id", found.ID)
	return found.User, nil
}

func (a *authService) passwordMatches(u *models.StoredUser, password []byte) bool {
	switch a.policy {
	case PolicyVerify:
		return cryptox.CheckPassword(password, u.Salt, u.Verifier)
	default:
		return string(password) == DemoPassword
	}
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) *models.User {
	return a.session.Current(ctx)
}

func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.session.Current(ctx) != nil
}

// users must be called with a.mu held.
func (a *authService) users(ctx context.Context) ([]models.StoredUser, error) {
	return loadForUpdate(ctx, a.store, a.log, records.KeyUsers, records.DecodeUsers, nil)
}
