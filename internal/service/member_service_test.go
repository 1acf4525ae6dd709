package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/repository"
	"github.com/iliyamo/room-escape-reservation/internal/utils"
)

var testTokens = TokenSettings{Secret: "test-secret", TTLMin: 5}

func TestMemberService_SignupHashesPassword(t *testing.T) {
	members := &memberStoreMock{}
	members.On("Create", mock.Anything, mock.MatchedBy(func(m *model.Member) bool {
		return m.Role == model.RoleMember && utils.VerifyPassword(m.PasswordHash, "pw1234")
	})).Return(nil)

	m, err := NewMemberService(members, testTokens, 4).Signup(context.Background(), Signup{Name: "브라운", Email: "brown@example.com", Password: "pw1234"})

	require.NoError(t, err)
	assert.Equal(t, uint64(1), m.ID)
	members.AssertExpectations(t)
}

func TestMemberService_SignupDuplicateEmail(t *testing.T) {
	members := &memberStoreMock{}
	members.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := NewMemberService(members, testTokens, 4).Signup(context.Background(), Signup{Name: "a", Email: "a@b.c", Password: "pw"})

	assert.Equal(t, apperror.KindBadRequest, kindOf(err))
}

func TestMemberService_Login(t *testing.T) {
	hash, err := utils.HashPassword("pw1234", 4)
	require.NoError(t, err)
	stored := &model.Member{ID: 5, Name: "브라운", Email: "brown@example.com", PasswordHash: hash, Role: model.RoleAdmin}
	members := &memberStoreMock{}
	members.On("GetByEmail", mock.Anything, "brown@example.com").Return(stored, nil)
	members.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)
	svc := NewMemberService(members, testTokens, 4)

	tok, err := svc.Login(context.Background(), "brown@example.com", "pw1234")
	require.NoError(t, err)
	claims, err := utils.ParseAccessToken(testTokens.Secret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenClaims{MemberID: 5, Name: "브라운", Role: model.RoleAdmin}, claims)

	_, err = svc.Login(context.Background(), "brown@example.com", "wrong")
	assert.Equal(t, apperror.KindAuthentication, kindOf(err))

	_, err = svc.Login(context.Background(), "nobody@example.com", "pw1234")
	assert.Equal(t, apperror.KindAuthentication, kindOf(err))
}

func TestMemberService_CheckUnknownMember(t *testing.T) {
	members := &memberStoreMock{}
	members.On("GetByID", mock.Anything, uint64(5)).Return(&brown, nil)
	members.On("GetByID", mock.Anything, uint64(6)).Return(nil, repository.ErrNotFound)
	svc := NewMemberService(members, testTokens, 4)

	m, err := svc.Check(context.Background(), model.AuthInfo{MemberID: 5})
	require.NoError(t, err)
	assert.Equal(t, "브라운", m.Name)

	_, err = svc.Check(context.Background(), model.AuthInfo{MemberID: 6})
	assert.Equal(t, apperror.KindAuthentication, kindOf(err))
}

func TestMemberService_EnsureAdmin(t *testing.T) {
	in := Signup{Name: "관리자", Email: "admin@example.com", Password: "admin-pw"}

	t.Run("creates missing admin", func(t *testing.T) {
		members := &memberStoreMock{}
		members.On("GetByEmail", mock.Anything, in.Email).Return(nil, repository.ErrNotFound)
		members.On("Create", mock.Anything, mock.MatchedBy(func(m *model.Member) bool {
			return m.IsAdmin() && m.Name == "관리자" && utils.VerifyPassword(m.PasswordHash, "admin-pw")
		})).Return(nil)

		m, created, err := NewMemberService(members, testTokens, 4).EnsureAdmin(context.Background(), in)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, uint64(1), m.ID)
		members.AssertExpectations(t)
	})

	t.Run("existing admin is kept", func(t *testing.T) {
		stored := &model.Member{ID: 3, Email: in.Email, Role: model.RoleAdmin}
		members := &memberStoreMock{}
		members.On("GetByEmail", mock.Anything, in.Email).Return(stored, nil)

		m, created, err := NewMemberService(members, testTokens, 4).EnsureAdmin(context.Background(), in)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Same(t, stored, m)
		members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email held by a member", func(t *testing.T) {
		members := &memberStoreMock{}
		members.On("GetByEmail", mock.Anything, in.Email).Return(&model.Member{ID: 3, Email: in.Email, Role: model.RoleMember}, nil)

		_, created, err := NewMemberService(members, testTokens, 4).EnsureAdmin(context.Background(), in)

		assert.Error(t, err)
		assert.False(t, created)
		members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost race to another instance", func(t *testing.T) {
		members := &memberStoreMock{}
		members.On("GetByEmail", mock.Anything, in.Email).Return(nil, repository.ErrNotFound).Once()
		members.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)
		members.On("GetByEmail", mock.Anything, in.Email).Return(&model.Member{ID: 8, Email: in.Email, Role: model.RoleAdmin}, nil).Once()

		m, created, err := NewMemberService(members, testTokens, 4).EnsureAdmin(context.Background(), in)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint64(8), m.ID)
	})
}
