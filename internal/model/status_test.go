package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserStatusTransitions(t *testing.T) {
	cases := []struct {
		from    UserStatus
		to      UserStatus
		allowed bool
	}{
		{UserPending, UserApproved, true},
		{UserPending, UserSuspended, true},
		{UserApproved, UserSuspended, true},
		{UserSuspended, UserApproved, true},
		{UserApproved, UserPending, false},
		{UserSuspended, UserPending, false},
		{UserApproved, UserApproved, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderApproved, true},
		{OrderPending, OrderRejected, true},
		{OrderPending, OrderCancelled, true},
		{OrderApproved, OrderShipped, true},
		{OrderShipped, OrderDelivered, true},
		{OrderPending, OrderDelivered, false},
		{OrderDelivered, OrderPending, false},
		{OrderRejected, OrderApproved, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleBuyer.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
