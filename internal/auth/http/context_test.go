package http

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
)

func TestIdentityContext(t *testing.T) {
	_, ok := GetIdentity(context.Background())
	assert.False(t, ok)

	_, ok = GetIdentity(WithIdentity(context.Background(), nil))
	assert.False(t, ok)

	identity := &authDomain.IdentityContext{ID: "42", Role: accountDomain.RoleAdmin}
	got, ok := GetIdentity(WithIdentity(context.Background(), identity))
	assert.True(t, ok)
	assert.Same(t, identity, got)
}
