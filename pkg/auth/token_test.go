package auth_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	m := auth.NewTokenManager("unit-test-secret", time.Hour)

	token, err := m.Issue("user-42")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sub, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestParseRejections(t *testing.T) {
	m := auth.NewTokenManager("unit-test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short := auth.NewTokenManager("unit-test-secret", -time.Minute)
		token, err := short.Issue("user-42")
		assert.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := auth.NewTokenManager("some-other-secret", time.Hour)
		token, err := other.Issue("user-42")
		assert.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := m.Issue("user-42")
		assert.NoError(t, err)

		tampered := token[:len(token)-4] + "AAAA"
		_, err = m.Parse(tampered)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("empty subject", func(t *testing.T) {
		token, err := m.Issue("")
		assert.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
