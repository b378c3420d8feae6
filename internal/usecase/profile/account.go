package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	"github.com/BruksfildServices01/barbermatch/internal/auth"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
	"github.com/BruksfildServices01/barbermatch/internal/validators"
)

type TokenIssuer interface {
	Issue(u *models.User) (string, error)
}

// ======================================================
// REGISTER
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type Register struct {
	users        domain.Repository
	tokens       TokenIssuer
	audit        *audit.Dispatcher
	log          *zap.Logger
	checkDomains bool
}

func NewRegister(
	users domain.Repository,
	tokens TokenIssuer,
	audit *audit.Dispatcher,
	log *zap.Logger,
	checkDomains bool,
) *Register {
	return &Register{
		users:        users,
		tokens:       tokens,
		audit:        audit,
		log:          log,
		checkDomains: checkDomains,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if !validators.IsEmailSyntaxValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if uc.checkDomains && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if len(in.Password) < 6 {
		return nil, httperr.ErrBusiness("weak_password")
	}

	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.IsValidRole(role) {
		return nil, httperr.ErrBusiness("invalid_role")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := domain.NewProfile("", email, in.Name, role)
	u.PasswordHash = hash
	u.Phone = strings.TrimSpace(in.Phone)

	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"role": role},
	})
	uc.log.Info("user registered", zap.String("user_id", u.ID), zap.String("role", role))

	return &Session{User: u, Token: token}, nil
}

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	users  domain.Repository
	tokens TokenIssuer
}

func NewLogin(users domain.Repository, tokens TokenIssuer) *Login {
	return &Login{users: users, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	u, err := uc.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if u.PasswordHash == "" || !auth.CheckPassword(u.PasswordHash, password) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token}, nil
}

// ======================================================
// ENSURE PROFILE
// ======================================================

// EnsureProfile returns the stored profile of a verified identity, creating
// it on the first authenticated request.
type EnsureProfile struct {
	users domain.Repository
	log   *zap.Logger
}

func NewEnsureProfile(users domain.Repository, log *zap.Logger) *EnsureProfile {
	return &EnsureProfile{users: users, log: log}
}

func (uc *EnsureProfile) Execute(ctx context.Context, id *auth.Identity) (*models.User, error) {
	u, err := uc.users.FindByID(ctx, id.UID)
	if err == nil {
		return u, nil
	}
	if !httperr.IsBusiness(err, "user_not_found") {
		return nil, err
	}

	role := id.Role
	if !domain.IsValidRole(role) {
		role = domain.RoleCustomer
	}

	name := id.Name
	if strings.TrimSpace(name) == "" {
		name, _, _ = strings.Cut(id.Email, "@")
	}

	u = domain.NewProfile(id.UID, id.Email, name, role)
	if err := uc.users.Create(ctx, u); err != nil {
		// Two first requests racing: the loser reads the winner's document.
		if httperr.IsBusiness(err, "email_already_exists") {
			return uc.users.FindByID(ctx, id.UID)
		}
		return nil, err
	}

	uc.log.Info("profile created", zap.String("user_id", u.ID), zap.String("role", role))
	return u, nil
}
