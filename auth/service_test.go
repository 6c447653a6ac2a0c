package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingplanner/domain"
	"weddingplanner/repository/memory"
)

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		phone   string
		user    string
		wantErr error
		msg     string
	}{
		{name: "Valid without phone", email: "priya@example.com", user: "Priya"},
		{name: "Valid with phone", email: "ravi@example.com", phone: "9876543210", user: "Ravi"},
		{name: "Blank email", email: "  ", user: "Priya", wantErr: domain.ErrBadParamInput, msg: "required"},
		{name: "Blank name", email: "x@example.com", user: " ", wantErr: domain.ErrBadParamInput, msg: "required"},
		{name: "Invalid email", email: "not-an-email", user: "Priya", wantErr: domain.ErrBadParamInput, msg: "valid email"},
		{name: "Short phone", email: "y@example.com", phone: "12345", user: "Priya", wantErr: domain.ErrBadParamInput, msg: "valid phone"},
		{name: "Phone with symbols", email: "z@example.com", phone: "+91 98765 43210", user: "Priya", wantErr: domain.ErrBadParamInput, msg: "valid phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(memory.NewUserRepository(), nil)
			sess, err := svc.Register(context.Background(), tt.email, tt.phone, tt.user)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.msg)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, sess.Token)
			assert.True(t, sess.User.LoggedIn)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := NewService(memory.NewUserRepository(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "priya@example.com", "", "Priya")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "priya@example.com", "", "Someone Else")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginLogoutFlow(t *testing.T) {
	svc := NewService(memory.NewUserRepository(), nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Login(ctx, "")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	reg, err := svc.Register(ctx, "priya@example.com", "", "Priya")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, reg.Token))

	_, err = svc.Current(ctx, reg.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	sess, err := svc.Login(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, reg.Token, sess.Token)

	user, err := svc.Current(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "Priya", user.Name)
	assert.True(t, user.LoggedIn)

	require.NoError(t, svc.Logout(ctx, sess.Token))
	assert.ErrorIs(t, svc.Logout(ctx, sess.Token), domain.ErrSessionNotFound)
}
