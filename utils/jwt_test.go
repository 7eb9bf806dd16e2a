package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	token, err := IssueToken("secret", "user-42", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := ParseAuth("Bearer "+token, "secret")
	require.NoError(t, err)
	require.Equal(t, "user-42", sub)
}

func TestParseAuth_WrongSecret(t *testing.T) {
	token, err := IssueToken("secret", "user-42", 1)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+token, "other-secret")
	require.Error(t, err)
}

func TestParseAuth_MissingHeader(t *testing.T) {
	_, err := ParseAuth("", "secret")
	require.Error(t, err)

	_, err = ParseAuth("Bearer ", "secret")
	require.Error(t, err)
}
