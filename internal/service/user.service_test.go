package service

import (
	"testing"

	"stockfolio/internal/db/models/postgres/public/model"
	mock_repository "stockfolio/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_userServiceHandler_Register(t *testing.T) {
	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)

		userAccountRepository.EXPECT().GetByEmail("ann@example.com").Return(nil, nil)
		userAccountRepository.EXPECT().Create(gomock.Any()).DoAndReturn(
			func(account model.UserAccount) (*model.UserAccount, error) {
				return &account, nil
			},
		)

		h := userServiceHandler{UserAccountRepository: userAccountRepository}

		account, err := h.Register("Ann@Example.com", "ann", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, "ann@example.com", account.Email)
		require.NotEqual(t, "correct horse battery", account.HashedPassword)
		require.Contains(t, account.HashedPassword, "$2a$")
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)

		userAccountRepository.EXPECT().GetByEmail("ann@example.com").Return(&model.UserAccount{
			UserAccountID: uuid.New(),
			Email:         "ann@example.com",
		}, nil)

		h := userServiceHandler{UserAccountRepository: userAccountRepository}

		_, err := h.Register("ann@example.com", "", "correct horse battery")
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("short password", func(t *testing.T) {
		h := userServiceHandler{}

		_, err := h.Register("ann@example.com", "ann", "short")
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("username defaults to email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)

		userAccountRepository.EXPECT().GetByEmail("ann@example.com").Return(nil, nil)
		userAccountRepository.EXPECT().Create(gomock.Any()).DoAndReturn(
			func(account model.UserAccount) (*model.UserAccount, error) {
				return &account, nil
			},
		)

		h := userServiceHandler{UserAccountRepository: userAccountRepository}

		account, err := h.Register("ann@example.com", "", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, "ann@example.com", account.Username)
	})
}

func Test_userServiceHandler_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
	h := userServiceHandler{UserAccountRepository: userAccountRepository}

	// register once, then check both outcomes against the stored hash
	var stored *model.UserAccount
	userAccountRepository.EXPECT().GetByEmail("ann@example.com").Return(nil, nil)
	userAccountRepository.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(account model.UserAccount) (*model.UserAccount, error) {
			stored = &account
			return &account, nil
		},
	)
	_, err := h.Register("ann@example.com", "ann", "correct horse battery")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		userAccountRepository.EXPECT().GetByEmail("ann@example.com").Return(stored, nil)

		account, err := h.Authenticate("ann@example.com", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, stored.UserAccountID, account.UserAccountID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userAccountRepository.EXPECT().GetByEmail("ann@example.com").Return(stored, nil)

		_, err := h.Authenticate("ann@example.com", "not the password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userAccountRepository.EXPECT().GetByEmail("ghost@example.com").Return(nil, nil)

		_, err := h.Authenticate("ghost@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
