package users

import (
	"context"
	"errors"
)

// DemoUsers returns one user per well-known role.
func DemoUsers() []AddInput {
	return []AddInput{
		{Name: "Ana", Email: "ana@chatci.local", Role: RoleStudent},
		{Name: "Bruno", Email: "bruno@chatci.local", Role: RoleTeacher},
		{Name: "Carla", Email: "carla@chatci.local", Role: RoleAdministrator},
	}
}

// Seed registers the given users, skipping emails that are already taken.
func Seed(ctx context.Context, svc *Service, inputs []AddInput) (int, error) {
	added := 0
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		if _, err := svc.Add(ctx, in); err != nil {
			if errors.Is(err, ErrDuplicateUser) {
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}
