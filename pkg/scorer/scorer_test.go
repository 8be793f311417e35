package scorer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommonPasswords(t *testing.T) {
	common := []string{
		"123456", "password", "12345678", "qwerty", "123456789", "1234",
		"111111", "dragon", "123123", "baseball", "football", "monkey",
		"letmein", "shadow", "master", "qwertyuiop",
		// any letter casing must still match
		"PASSWORD", "Password", "QwErTy", "LetMeIn", "QWERTYUIOP",
	}

	for _, pw := range common {
		assert.Equal(t, 0, Score(pw), "password: %s", pw)
		assert.True(t, IsCommon(pw), "password: %s", pw)
	}
}

func TestScoreVectors(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"Tr0ub4dor&3", 10}, // length, upper, lower, digit, symbol
		{"password", 0},     // common-list match
		{"abc", 2},          // lowercase only, below the length tiers
		{"", 0},             // no bonuses triggered
		{"abcde", 3},        // short length tier plus lowercase
		{"ABCDEFGH", 4},     // long length tier plus uppercase
		{"Abcdef1!", 10},    // all checks satisfied at exactly 8 chars
		{"12345", 3},        // short length tier plus digits
		{"!!!", 2},          // symbols only
		{"пароль", 3},       // non-Latin lowercase still classifies
		{"ПАРОЛЬ12", 6},     // long tier, uppercase, digits
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.password), func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.password))
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	// each password satisfies a superset of the previous one's checks
	sequence := []string{
		"",
		"aaaa",
		"aaaaa",
		"aaaaaaaa",
		"aaaaaaaA",
		"aaaaaaA1",
		"aaaaaA1!",
	}

	prev := -1
	for _, pw := range sequence {
		s := Score(pw)
		require.GreaterOrEqual(t, s, prev, "password: %s", pw)
		require.GreaterOrEqual(t, s, 0)
		require.LessOrEqual(t, s, MaxScore)
		prev = s
	}
	assert.Equal(t, MaxScore, prev)
}

func TestScoreIdempotent(t *testing.T) {
	for _, pw := range []string{"", "password", "Tr0ub4dor&3", "abcde"} {
		assert.Equal(t, Score(pw), Score(pw))
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "too common/weak"},
		{1, "weak"},
		{4, "weak"},
		{5, "moderate"},
		{7, "moderate"},
		{8, "strong"},
		{10, "strong"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rating(tt.score), "score: %d", tt.score)
	}
}

func TestAdvice(t *testing.T) {
	hints := Advice("abc")
	assert.Equal(t, []string{
		"use at least 8 characters",
		"add an uppercase letter",
		"add a digit",
		"add a symbol",
	}, hints)

	assert.Empty(t, Advice("Tr0ub4dor&3"))
	assert.Equal(t, []string{"avoid commonly used passwords"}, Advice("qwerty"))
}
