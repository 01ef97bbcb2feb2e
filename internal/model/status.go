package model

type Role string

const (
	RoleBuyer   Role = "buyer"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserPending   UserStatus = "pending"
	UserApproved  UserStatus = "approved"
	UserSuspended UserStatus = "suspended"
)

// userTransitions holds the legal status moves. Anything absent is rejected.
var userTransitions = map[UserStatus][]UserStatus{
	UserPending:   {UserApproved, UserSuspended},
	UserApproved:  {UserSuspended},
	UserSuspended: {UserApproved},
}

func (s UserStatus) CanTransitionTo(next UserStatus) bool {
	for _, allowed := range userTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderRejected  OrderStatus = "rejected"
	OrderCancelled OrderStatus = "cancelled"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderApproved, OrderRejected, OrderCancelled},
	OrderApproved: {OrderShipped, OrderCancelled},
	OrderShipped:  {OrderDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderRejected, OrderCancelled, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatusPaid marks orders materialized from a completed checkout session.
const PaymentStatusPaid = "Paid"
