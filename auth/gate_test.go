package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_NotLoggedIn(t *testing.T) {
	d := Decide(CallerContext{}, []string{"Admin"})
	assert.Equal(t, DecisionNotLoggedIn, d.Kind)
	assert.False(t, d.Allowed())
	assert.Equal(t, "Você não está logado!", d.Reason)
}

func TestDecide_Forbidden(t *testing.T) {
	caller := CallerContext{Authenticated: true, Groups: []string{"Supervisor"}}
	d := Decide(caller, []string{"Admin"})
	assert.Equal(t, DecisionForbidden, d.Kind)
	assert.Equal(t, "Você não possui permissão!", d.Reason)
}

func TestDecide_AnyRequiredGroupAllows(t *testing.T) {
	caller := CallerContext{Authenticated: true, Groups: []string{"Supervisor"}}
	d := Decide(caller, []string{"Admin", "Supervisor"})
	assert.True(t, d.Allowed())
}

func TestDecide_AuthenticatedWithoutGroups(t *testing.T) {
	caller := CallerContext{Authenticated: true}
	d := Decide(caller, []string{"Admin", "Supervisor"})
	assert.Equal(t, DecisionForbidden, d.Kind)
}
