package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"skillspot/api"
	"skillspot/domain"
	"skillspot/errors"
	"skillspot/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// signedToken builds a real JWT so the expiry inspection sees a proper exp
// claim. The signature is irrelevant client-side.
func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"exp":     expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestSessionController_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should authenticate and persist the pair on success", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		pair := domain.CredentialPair{Access: "acc-1", Refresh: "ref-1"}
		identity := domain.Identity{ID: "user-1", Email: "dev@example.com"}

		gomock.InOrder(
			authAPI.EXPECT().Login(gomock.Any(), "dev@example.com", "Secret123").Return(pair, nil),
			credentials.EXPECT().Set(pair).Return(nil),
			authAPI.EXPECT().Me(gomock.Any()).Return(identity, nil),
		)

		req.NoError(svc.Login(context.Background(), "dev@example.com", "Secret123"))
		req.Equal(domain.SessionAuthenticated, svc.State())
		got, ok := svc.Identity()
		req.True(ok)
		req.Equal("dev@example.com", got.Email)
	})

	t.Run("should land on Failed with credentials cleared when login is rejected", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		authAPI.EXPECT().Login(gomock.Any(), "dev@example.com", "wrong").
			Return(domain.CredentialPair{}, &errors.APIError{Kind: errors.KindAuthorization, Detail: "bad credentials"})
		credentials.EXPECT().Clear().Return(nil)

		err := svc.Login(context.Background(), "dev@example.com", "wrong")
		req.Error(err)
		req.Equal(domain.SessionFailed, svc.State())
		_, ok := svc.Identity()
		req.False(ok)
	})

	t.Run("should unwind the stored pair when the identity fetch fails", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		pair := domain.CredentialPair{Access: "acc-1", Refresh: "ref-1"}
		gomock.InOrder(
			authAPI.EXPECT().Login(gomock.Any(), "dev@example.com", "Secret123").Return(pair, nil),
			credentials.EXPECT().Set(pair).Return(nil),
			authAPI.EXPECT().Me(gomock.Any()).
				Return(domain.Identity{}, &errors.APIError{Kind: errors.KindAuthorization, Detail: "unauthorized"}),
			credentials.EXPECT().Clear().Return(nil),
		)

		req.Error(svc.Login(context.Background(), "dev@example.com", "Secret123"))
		req.Equal(domain.SessionFailed, svc.State())
	})
}

func TestSessionController_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should register then login with the same credentials", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		registration := api.RegisterRequest{
			Email:     "new@example.com",
			Password:  "Complex123",
			FirstName: "Ada",
			LastName:  "Lovelace",
			UserType:  domain.UserTypeProvider,
		}
		pair := domain.CredentialPair{Access: "acc-2", Refresh: "ref-2"}

		gomock.InOrder(
			authAPI.EXPECT().Register(gomock.Any(), registration).Return(domain.Identity{Email: registration.Email}, nil),
			authAPI.EXPECT().Login(gomock.Any(), "new@example.com", "Complex123").Return(pair, nil),
			credentials.EXPECT().Set(pair).Return(nil),
			authAPI.EXPECT().Me(gomock.Any()).Return(domain.Identity{Email: registration.Email}, nil),
		)

		req.NoError(svc.Register(context.Background(), registration))
		req.Equal(domain.SessionAuthenticated, svc.State())
	})

	t.Run("should short-circuit without login when registration fails", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		registration := api.RegisterRequest{
			Email:     "taken@example.com",
			Password:  "Complex123",
			FirstName: "Ada",
			LastName:  "Lovelace",
			UserType:  domain.UserTypeClient,
		}
		authAPI.EXPECT().Register(gomock.Any(), registration).
			Return(domain.Identity{}, &errors.APIError{Kind: errors.KindConflict, Detail: "email already in use"})
		authAPI.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req.Error(svc.Register(context.Background(), registration))
		req.Equal(domain.SessionAnonymous, svc.State())
	})

	t.Run("should reject a weak password before reaching the server", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		registration := api.RegisterRequest{
			Email:     "new@example.com",
			Password:  "weakpassword",
			FirstName: "Ada",
			LastName:  "Lovelace",
			UserType:  domain.UserTypeClient,
		}
		authAPI.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

		err := svc.Register(context.Background(), registration)
		req.ErrorIs(err, errors.ErrInvalidPassword)
	})
}

func TestSessionController_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should tear down locally even when the server call fails", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		pair := domain.CredentialPair{Access: "acc-1", Refresh: "ref-1"}
		credentials.EXPECT().Get().Return(pair, true, nil)
		authAPI.EXPECT().Logout(gomock.Any(), "ref-1").
			Return(&errors.APIError{Kind: errors.KindNetwork, Detail: "connection refused"})
		credentials.EXPECT().Clear().Return(nil)

		svc.Logout(context.Background())
		req.Equal(domain.SessionAnonymous, svc.State())
		_, ok := svc.Identity()
		req.False(ok)
	})
}

func TestSessionController_Bootstrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should settle on Anonymous without credentials", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		credentials.EXPECT().Get().Return(domain.CredentialPair{}, false, nil)

		req.NoError(svc.Bootstrap(context.Background()))
		req.Equal(domain.SessionAnonymous, svc.State())
	})

	t.Run("should resolve the identity from a live token", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		pair := domain.CredentialPair{Access: signedToken(t, time.Now().Add(time.Hour)), Refresh: "ref-1"}
		credentials.EXPECT().Get().Return(pair, true, nil)
		authAPI.EXPECT().Me(gomock.Any()).Return(domain.Identity{ID: "user-1", Email: "dev@example.com"}, nil)

		req.NoError(svc.Bootstrap(context.Background()))
		req.Equal(domain.SessionAuthenticated, svc.State())
	})

	t.Run("should be idempotent once authenticated", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		pair := domain.CredentialPair{Access: signedToken(t, time.Now().Add(time.Hour)), Refresh: "ref-1"}
		credentials.EXPECT().Get().Return(pair, true, nil).Times(1)
		authAPI.EXPECT().Me(gomock.Any()).Return(domain.Identity{ID: "user-1"}, nil).Times(1)

		req.NoError(svc.Bootstrap(context.Background()))
		// Second call must not touch the store or the network again.
		req.NoError(svc.Bootstrap(context.Background()))
		req.Equal(domain.SessionAuthenticated, svc.State())
	})

	t.Run("should cascade to Anonymous when the token does not resolve", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		pair := domain.CredentialPair{Access: signedToken(t, time.Now().Add(time.Hour)), Refresh: "ref-1"}
		gomock.InOrder(
			credentials.EXPECT().Get().Return(pair, true, nil),
			authAPI.EXPECT().Me(gomock.Any()).
				Return(domain.Identity{}, &errors.APIError{Kind: errors.KindAuthorization, Detail: "token invalid"}),
			credentials.EXPECT().Get().Return(pair, true, nil),
			authAPI.EXPECT().Logout(gomock.Any(), "ref-1").Return(nil),
			credentials.EXPECT().Clear().Return(nil),
		)

		req.NoError(svc.Bootstrap(context.Background()))
		req.Equal(domain.SessionAnonymous, svc.State())
		_, ok := svc.Identity()
		req.False(ok)
	})

	t.Run("should refresh an expired access token before fetching the identity", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		expired := domain.CredentialPair{Access: signedToken(t, time.Now().Add(-time.Hour)), Refresh: "ref-1"}
		fresh := domain.CredentialPair{Access: "acc-new", Refresh: "ref-1"}
		gomock.InOrder(
			credentials.EXPECT().Get().Return(expired, true, nil),
			authAPI.EXPECT().RefreshToken(gomock.Any(), "ref-1").Return("acc-new", nil),
			credentials.EXPECT().Set(fresh).Return(nil),
			authAPI.EXPECT().Me(gomock.Any()).Return(domain.Identity{ID: "user-1"}, nil),
		)

		req.NoError(svc.Bootstrap(context.Background()))
		req.Equal(domain.SessionAuthenticated, svc.State())
	})

	t.Run("should cascade to Anonymous when the refresh is rejected", func(t *testing.T) {
		req := require.New(t)
		authAPI := mocks.NewMockIAuthAPI(ctrl)
		credentials := mocks.NewMockICredentialRepository(ctrl)
		svc := NewSessionController(authAPI, credentials, testLogger())

		expired := domain.CredentialPair{Access: signedToken(t, time.Now().Add(-time.Hour)), Refresh: "ref-1"}
		gomock.InOrder(
			credentials.EXPECT().Get().Return(expired, true, nil),
			authAPI.EXPECT().RefreshToken(gomock.Any(), "ref-1").
				Return("", &errors.APIError{Kind: errors.KindAuthorization, Detail: "refresh expired"}),
			credentials.EXPECT().Get().Return(expired, true, nil),
			authAPI.EXPECT().Logout(gomock.Any(), "ref-1").Return(nil),
			credentials.EXPECT().Clear().Return(nil),
		)

		req.NoError(svc.Bootstrap(context.Background()))
		req.Equal(domain.SessionAnonymous, svc.State())
	})
}
