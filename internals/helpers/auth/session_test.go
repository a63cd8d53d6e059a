package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	raw, exp, err := IssueToken("s3cret", Session{UserID: id, Email: "a@b.c", Name: "Ann", Role: "admin"}, now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	s, err := ParseToken(raw, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, id, s.UserID)
	assert.Equal(t, "admin", s.Role)
	assert.Equal(t, "Ann", s.Name)
	assert.True(t, s.IsAdmin())
	assert.Equal(t, exp.Unix(), s.ExpiresAt.Unix())
}

func TestParseTokenRejects(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	raw, _, err := IssueToken("s3cret", Session{UserID: id}, now, time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(raw, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := IssueToken("s3cret", Session{UserID: id}, now.Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(expired, "s3cret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": id.String()}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseToken(none, "s3cret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("garbage", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueTokenNeedsSecret(t *testing.T) {
	_, _, err := IssueToken(" ", Session{UserID: uuid.New()}, time.Now(), time.Hour)
	assert.Error(t, err)
}
