package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/services/auth/mocks"
	"github.com/usbtecnok/kaviar-admin-os/services/auth/repository"
)

func newTestUC(t *testing.T) (*AuthUC, *mocks.MockAuthGW, *session.MemoryStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gw := mocks.NewMockAuthGW(ctrl)
	store := session.NewMemoryStore(time.Hour)
	return NewAuthUC(repository.NewAuthRepo(store), gw), gw, store
}

func adminToken(t *testing.T, email string) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{"sub": "1", "email": email})
	s, err := token.SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestAuthUC_Login(t *testing.T) {
	uc, gw, store := newTestUC(t)
	ctx := context.Background()
	token := adminToken(t, "chefe@kaviar.com")

	gw.EXPECT().Login(ctx, models.LoginRequest{Email: "chefe@kaviar.com", Password: "pw"}).
		Return(&models.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil)

	sess, err := uc.Login(ctx, "", models.LoginRequest{Email: " chefe@kaviar.com ", Password: "pw"})

	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "chefe@kaviar.com", sess.Admin)

	held, err := store.GetToken(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, token, held)
}

func TestAuthUC_Login_OpaqueTokenFallsBackToEmail(t *testing.T) {
	uc, gw, _ := newTestUC(t)
	ctx := context.Background()

	gw.EXPECT().Login(ctx, gomock.Any()).Return(&models.LoginResponse{AccessToken: "opaque"}, nil)

	sess, err := uc.Login(ctx, "", models.LoginRequest{Email: "a@b.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", sess.Admin)
}

func TestAuthUC_Login_ReplacesPreviousSession(t *testing.T) {
	uc, gw, store := newTestUC(t)
	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "old", "old-token"))

	gw.EXPECT().Login(ctx, gomock.Any()).Return(&models.LoginResponse{AccessToken: "new-token"}, nil)

	sess, err := uc.Login(ctx, "old", models.LoginRequest{Email: "a@b.com", Password: "pw"})

	require.NoError(t, err)
	assert.NotEqual(t, "old", sess.ID)
	_, err = store.GetToken(ctx, "old")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestAuthUC_Login_MissingFields(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.Login(context.Background(), "", models.LoginRequest{Email: "  ", Password: "pw"})

	var vErr *models.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, constants.MsgLoginMissing, vErr.Message)
}

func TestAuthUC_Login_Failures(t *testing.T) {
	tests := []struct {
		name    string
		resp    *models.LoginResponse
		err     error
		wantMsg string
	}{
		{"rejected", nil, kaviarhttp.NormalizeError(401, nil, constants.MsgLoginFailed), constants.MsgLoginFailed},
		{"unreachable", nil, &kaviarhttp.UnreachableError{Op: "POST /login", Err: errors.New("refused")}, kaviarhttp.MsgUnreachable},
		{"empty token", &models.LoginResponse{}, nil, constants.MsgLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, gw, store := newTestUC(t)
			gw.EXPECT().Login(gomock.Any(), gomock.Any()).Return(tt.resp, tt.err)

			sess, err := uc.Login(context.Background(), "", models.LoginRequest{Email: "a@b.com", Password: "pw"})

			assert.Nil(t, sess)
			assert.Equal(t, tt.wantMsg, kaviarhttp.UserMessage(err))
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestAuthUC_Logout(t *testing.T) {
	uc, _, store := newTestUC(t)
	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "sid", "tok"))

	require.NoError(t, uc.Logout(ctx, "sid"))
	require.NoError(t, uc.Logout(ctx, ""))

	_, err := store.GetToken(ctx, "sid")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestAuthUC_Overview(t *testing.T) {
	uc, _, store := newTestUC(t)
	ctx := context.Background()

	combos := resource.NewCollection[models.Combo]()
	combos.Replace([]models.Combo{{ID: 1, IsActive: true}, {ID: 2}, {ID: 3, IsActive: true}})
	require.NoError(t, resource.SaveCollection(ctx, store, "sid", constants.ViewCombos, combos))

	overview, err := uc.Overview(ctx, &session.Session{ID: "sid", Admin: "chefe"})

	require.NoError(t, err)
	assert.Equal(t, &models.Overview{
		Admin:        "chefe",
		CombosLoaded: true,
		Combos:       3,
		ActiveCombos: 2,
	}, overview)
}

func TestAuthUC_Overview_PendingDrivers(t *testing.T) {
	uc, _, store := newTestUC(t)
	ctx := context.Background()

	drivers := resource.NewCollection[models.Driver]()
	drivers.Replace([]models.Driver{
		{ID: 1},
		{ID: 2, ApprovalStatus: "PENDENTE"},
		{ID: 3, ApprovalStatus: models.ApprovalApproved},
	})
	require.NoError(t, resource.SaveCollection(ctx, store, "sid", constants.ViewDrivers, drivers))

	overview, err := uc.Overview(ctx, &session.Session{ID: "sid"})

	require.NoError(t, err)
	assert.True(t, overview.DriversLoaded)
	assert.Equal(t, 3, overview.Drivers)
	assert.Equal(t, 2, overview.PendingDrivers)
	assert.False(t, overview.CombosLoaded)
}
