package service

import (
	"errors"
	"testing"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
)

func TestCanAccessOrderOwner(t *testing.T) {
	policy := NewAccessPolicy()
	actor := Actor{UserID: 7, Roles: []string{constants.RoleUser}}
	order := &models.Order{EmployeeID: 7}
	if err := policy.CanAccessOrder(actor, order); err != nil {
		t.Fatalf("owner should access own order, got: %v", err)
	}
}

func TestCanAccessOrderForeignForbidden(t *testing.T) {
	policy := NewAccessPolicy()
	actor := Actor{UserID: 7, Roles: []string{constants.RoleUser}}
	order := &models.Order{EmployeeID: 8}
	if err := policy.CanAccessOrder(actor, order); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for foreign order, got: %v", err)
	}
}

func TestCanAccessOrderAdminBypass(t *testing.T) {
	policy := NewAccessPolicy()
	actor := Actor{UserID: 7, Roles: []string{constants.RoleAdmin, constants.RoleUser}}
	order := &models.Order{EmployeeID: 8}
	if err := policy.CanAccessOrder(actor, order); err != nil {
		t.Fatalf("admin should access any order, got: %v", err)
	}
}

func TestCanAccessOrderNil(t *testing.T) {
	policy := NewAccessPolicy()
	actor := Actor{UserID: 7, Roles: []string{constants.RoleAdmin}}
	if err := policy.CanAccessOrder(actor, nil); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found for nil order, got: %v", err)
	}
}

func TestScopeEmployeeID(t *testing.T) {
	policy := NewAccessPolicy()
	admin := Actor{UserID: 3, Roles: []string{constants.RoleAdmin}}
	if got := policy.ScopeEmployeeID(admin); got != 0 {
		t.Fatalf("admin scope should be unrestricted, got %d", got)
	}
	user := Actor{UserID: 3, Roles: []string{constants.RoleUser}}
	if got := policy.ScopeEmployeeID(user); got != 3 {
		t.Fatalf("user scope should be own id, got %d", got)
	}
}
