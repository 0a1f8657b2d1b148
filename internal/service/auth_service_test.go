package service

import (
	"testing"
	"time"

	"go-hardware-demo/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer() *jwt.Issuer {
	return jwt.NewIssuer("test-secret", time.Hour, "go-hardware-demo")
}

func TestAuthDisabledWithoutPassword(t *testing.T) {
	svc, err := NewAuthService("", newIssuer(), &recordingHub{}, nopLogger())
	require.NoError(t, err)

	assert.False(t, svc.Enabled())
	_, err = svc.Login("anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestLoginAndValidate(t *testing.T) {
	svc, err := NewAuthService("counter-1", newIssuer(), &recordingHub{}, nopLogger())
	require.NoError(t, err)
	require.True(t, svc.Enabled())

	_, err = svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login("counter-1")
	require.NoError(t, err)
	assert.Equal(t, OperatorName, resp.Operator)
	assert.NotEmpty(t, resp.Token)

	valid, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, OperatorName, valid.Operator)
	assert.WithinDuration(t, resp.ExpiresAt, valid.ExpiresAt, time.Second)
}

func TestNewLoginExpiresPreviousSession(t *testing.T) {
	svc, err := NewAuthService("counter-1", newIssuer(), &recordingHub{}, nopLogger())
	require.NoError(t, err)

	first, err := svc.Login("counter-1")
	require.NoError(t, err)
	second, err := svc.Login("counter-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(first.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = svc.ValidateToken(second.Token)
	assert.NoError(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, err := NewAuthService("counter-1", newIssuer(), &recordingHub{}, nopLogger())
	require.NoError(t, err)

	_, err = svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestHeartbeatBroadcastsStatus(t *testing.T) {
	hub := &recordingHub{}
	svc, err := NewAuthService("", newIssuer(), hub, nopLogger())
	require.NoError(t, err)

	svc.Heartbeat(OperatorName)

	ev := hub.last()
	assert.Equal(t, "operator_status_update", ev.Type)
	assert.Equal(t, "operator is online", ev.Message)
}
