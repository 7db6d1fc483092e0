package location

import (
	"context"
	"testing"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/domain/user"
)

func TestAllowedTypes(t *testing.T) {
	manager := AllowedTypes(user.RoleManager)
	employee := AllowedTypes(user.RoleEmployee)

	if len(manager) != 3 {
		t.Fatalf("manager should see all three types, got %v", manager)
	}
	if len(employee) != 1 || employee[0] != TypeInventoryPoint {
		t.Fatalf("employee should see only inventory points, got %v", employee)
	}

	// Employee visibility is a subset of manager visibility.
	managerSet := make(map[Type]bool)
	for _, lt := range manager {
		managerSet[lt] = true
	}
	for _, lt := range employee {
		if !managerSet[lt] {
			t.Errorf("employee sees %s which manager does not", lt)
		}
	}
}

func TestCanSelectParent(t *testing.T) {
	tests := []struct {
		role user.Role
		typ  Type
		want bool
	}{
		{user.RoleManager, TypeBranch, true},
		{user.RoleManager, TypeInventoryPoint, true},
		{user.RoleManager, TypeMainStore, false},
		{user.RoleEmployee, TypeBranch, false},
		{user.RoleEmployee, TypeInventoryPoint, false},
		{user.RoleEmployee, TypeMainStore, false},
	}

	for _, tt := range tests {
		if got := CanSelectParent(tt.role, tt.typ); got != tt.want {
			t.Errorf("CanSelectParent(%s, %s) = %v, want %v", tt.role, tt.typ, got, tt.want)
		}
	}
}

func TestValidate_ParentRules(t *testing.T) {
	ctx := context.Background()
	parentID := id.New()

	t.Run("manager may parent a branch", func(t *testing.T) {
		l := NewLocation("North Branch", TypeBranch)
		l.ParentID = &parentID
		if err := l.Validate(ctx, user.RoleManager); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("employee may not parent a branch", func(t *testing.T) {
		l := NewLocation("North Branch", TypeBranch)
		l.ParentID = &parentID
		err := l.Validate(ctx, user.RoleEmployee)
		appErr, ok := apperror.AsAppError(err)
		if !ok || appErr.Code != apperror.CodeForbidden {
			t.Errorf("want forbidden error, got %v", err)
		}
	})

	t.Run("main store never has a parent", func(t *testing.T) {
		l := NewLocation("HQ", TypeMainStore)
		l.ParentID = &parentID
		err := l.Validate(ctx, user.RoleManager)
		if !apperror.IsValidation(err) {
			t.Errorf("want validation error, got %v", err)
		}
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		l := NewLocation("X", Type("WAREHOUSE"))
		if err := l.Validate(ctx, user.RoleManager); !apperror.IsValidation(err) {
			t.Errorf("want validation error, got %v", err)
		}
	})
}

func TestBuildTree(t *testing.T) {
	root := NewLocation("HQ", TypeMainStore)
	branch := NewLocation("Branch", TypeBranch)
	branch.ParentID = &root.ID
	point := NewLocation("Point", TypeInventoryPoint)
	point.ParentID = &branch.ID
	orphan := NewLocation("Orphan", TypeInventoryPoint)
	missing := id.New()
	orphan.ParentID = &missing

	roots := BuildTree([]*Location{root, branch, point, orphan})

	if len(roots) != 2 {
		t.Fatalf("want 2 roots (HQ + orphan), got %d", len(roots))
	}
	if len(root.Children) != 1 || root.Children[0] != branch {
		t.Errorf("branch should hang off root")
	}
	if len(branch.Children) != 1 || branch.Children[0] != point {
		t.Errorf("point should hang off branch")
	}
}
