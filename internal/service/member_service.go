package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/repository"
	"github.com/iliyamo/room-escape-reservation/internal/utils"
)

const (
	msgDuplicateEmail    = "이미 가입된 이메일입니다."
	msgBadCredentials    = "이메일 또는 비밀번호가 올바르지 않습니다."
	msgMemberNotLoggedIn = "로그인 정보를 찾을 수 없습니다."
)

// TokenSettings controls how access tokens are issued at login.
type TokenSettings struct {
	Secret string
	TTLMin int
}

// Signup is the input of MemberService.Signup.
type Signup struct {
	Name     string
	Email    string
	Password string
}

// MemberService handles signup, login and member lookups.
type MemberService struct {
	members    MemberStore
	tokens     TokenSettings
	bcryptCost int
}

func NewMemberService(members MemberStore, tokens TokenSettings, bcryptCost int) *MemberService {
	return &MemberService{members: members, tokens: tokens, bcryptCost: bcryptCost}
}

// Signup registers a MEMBER.  An email that is already taken is a
// BadRequest.
func (s *MemberService) Signup(ctx context.Context, in Signup) (*model.Member, error) {
	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	m := &model.Member{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleMember,
	}
	if err := s.members.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.BadRequest(msgDuplicateEmail)
		}
		return nil, fmt.Errorf("create member: %w", err)
	}
	return m, nil
}

// Login verifies the credentials and issues an access token.  Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *MemberService) Login(ctx context.Context, email, password string) (utils.AccessToken, error) {
	m, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.AccessToken{}, apperror.Authentication(msgBadCredentials)
		}
		return utils.AccessToken{}, fmt.Errorf("find member: %w", err)
	}
	if !utils.VerifyPassword(m.PasswordHash, password) {
		return utils.AccessToken{}, apperror.Authentication(msgBadCredentials)
	}
	tok, err := utils.NewAccessToken(s.tokens.Secret, utils.TokenClaims{
		MemberID: m.ID,
		Name:     m.Name,
		Role:     m.Role,
	}, s.tokens.TTLMin)
	if err != nil {
		return utils.AccessToken{}, fmt.Errorf("issue token: %w", err)
	}
	return tok, nil
}

// Check resolves the caller to the stored member.  A token for a member
// that no longer exists fails authentication.
func (s *MemberService) Check(ctx context.Context, auth model.AuthInfo) (*model.Member, error) {
	m, err := s.members.GetByID(ctx, auth.MemberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.Authentication(msgMemberNotLoggedIn)
		}
		return nil, fmt.Errorf("find member %d: %w", auth.MemberID, err)
	}
	return m, nil
}

// EnsureAdmin creates the ADMIN member described by in unless its email
// is already registered.  It reports whether a member was created.  An
// email held by a non-admin member is an error; the member is left as is.
func (s *MemberService) EnsureAdmin(ctx context.Context, in Signup) (*model.Member, bool, error) {
	m, err := s.members.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return existingAdmin(m)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, false, fmt.Errorf("find admin %s: %w", in.Email, err)
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	m = &model.Member{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := s.members.Create(ctx, m); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, false, fmt.Errorf("create admin: %w", err)
		}
		// another instance registered the email first
		m, err = s.members.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, false, fmt.Errorf("find admin %s: %w", in.Email, err)
		}
		return existingAdmin(m)
	}
	return m, true, nil
}

func existingAdmin(m *model.Member) (*model.Member, bool, error) {
	if !m.IsAdmin() {
		return m, false, fmt.Errorf("admin email %s belongs to a %s member", m.Email, m.Role)
	}
	return m, false, nil
}

func (s *MemberService) FindAll(ctx context.Context) ([]model.Member, error) {
	out, err := s.members.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return out, nil
}
