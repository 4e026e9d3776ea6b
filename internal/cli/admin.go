package cli

import (
	"context"
	"fmt"

	"github.com/openfab/printctl/internal/core/domain"
)

func (a *App) cmdUsers(ctx context.Context) error {
	if !a.guard.RequireRole(domain.RoleModerator) {
		return nil
	}
	users, err := a.admin.Users(ctx)
	if err != nil {
		return err
	}
	renderUsers(a.out, users)
	return nil
}

func (a *App) cmdRole(ctx context.Context, args []string) error {
	if !a.guard.RequireRole(domain.RoleAdmin) {
		return nil
	}
	id, err := a.argOrPrompt(args, "User ID")
	if err != nil {
		return err
	}
	var role string
	if len(args) > 1 {
		role = args[1]
	} else {
		role, err = a.promptLine("Role (user, moderator, admin)")
		if err != nil {
			return err
		}
	}
	if err := a.admin.SetRole(ctx, id, domain.Role(role)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s is now %s.\n", id, role)
	return nil
}

func (a *App) cmdSetEnabled(ctx context.Context, args []string, enabled bool) error {
	if !a.guard.RequireRole(domain.RoleModerator) {
		return nil
	}
	id, err := a.argOrPrompt(args, "User ID")
	if err != nil {
		return err
	}
	if err := a.admin.SetEnabled(ctx, id, enabled); err != nil {
		return err
	}
	if enabled {
		fmt.Fprintf(a.out, "User %s enabled.\n", id)
	} else {
		fmt.Fprintf(a.out, "User %s disabled.\n", id)
	}
	return nil
}

func (a *App) cmdStats(ctx context.Context) error {
	if !a.guard.RequireRole(domain.RoleModerator) {
		return nil
	}
	stats, err := a.admin.Stats(ctx)
	if err != nil {
		return err
	}
	renderStats(a.out, stats)
	return nil
}
