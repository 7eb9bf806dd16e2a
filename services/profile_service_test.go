package services

import (
	"testing"

	"github.com/rishen2486/wheels-up-booking-suite/models"

	"github.com/stretchr/testify/require"
)

func TestScopeFor_MissingProfileFailsClosed(t *testing.T) {
	scope := ScopeFor("user-1", nil)
	require.False(t, scope.All, "missing profile must resolve to the owner-only scope")
	require.Equal(t, "user-1", scope.UserID)
}

func TestScopeFor_Superuser(t *testing.T) {
	scope := ScopeFor("admin-1", &models.Profile{UserID: "admin-1", Superuser: true})
	require.True(t, scope.All)
}

func TestScopeFor_OrdinaryOwner(t *testing.T) {
	scope := ScopeFor("user-2", &models.Profile{UserID: "user-2"})
	require.False(t, scope.All)
	require.True(t, scope.Allows("user-2"))
	require.False(t, scope.Allows("someone-else"))
}
