package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) cmdSpools(ctx context.Context) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	spools, err := a.spools.Spools(ctx)
	if err != nil {
		return err
	}
	renderSpools(a.out, spools)
	return nil
}

func (a *App) cmdMaterials(ctx context.Context) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	materials, err := a.spools.Materials(ctx)
	if err != nil {
		return err
	}
	if len(materials) == 0 {
		fmt.Fprintln(a.out, "No materials known.")
		return nil
	}
	fmt.Fprintln(a.out, strings.Join(materials, ", "))
	return nil
}
