package util

import (
	"testing"
	"time"
	"trait_tracer_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"sam@example.com", true},
		{"sam.doe+tag@sub.example.io", true},
		{"", false},
		{"plainaddress", false},
		{"no domain@example.com", false},
		{"sam@example", false},
		{"@example.com", false},
		{"sam@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestFilterBlank(t *testing.T) {
	got := FilterBlank([]string{" Go ", "", "  ", "SQL", "\tDocker\n"})
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, got)

	assert.Empty(t, FilterBlank(nil))
	assert.Empty(t, FilterBlank([]string{"", "   "}))
}

func TestJWTRoundTripCarriesRole(t *testing.T) {
	user := &model.User{Email: "rec@example.com", Role: model.Recruiter}
	user.ID = 12

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, model.Recruiter, claims.Role)
	assert.Equal(t, "rec@example.com", claims.Email)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "rec@example.com", Role: model.Recruiter}
	user.ID = 12

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Email: "cand@example.com", Role: model.Candidate}
	user.ID = 5

	token, err := GenerateJWT(user, "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "test-secret")
	assert.Error(t, err)
}
