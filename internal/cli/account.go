package cli

import (
	"context"
	"fmt"

	"github.com/openfab/printctl/internal/core/ports"
)

func (a *App) cmdLogin(ctx context.Context) error {
	if a.cache.Current() != nil {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' to switch accounts.")
		return nil
	}
	username, err := a.promptLine("Username")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}
	if _, err := a.accounts.Login(ctx, ports.LoginInput{Username: username, Password: password}); err != nil {
		return err
	}
	// A successful login is a page change in the web UI; re-running
	// bootstrap gives the guard the same fresh start here.
	a.guard.Init(ctx)
	return nil
}

func (a *App) cmdRegister(ctx context.Context) error {
	if a.cache.Current() != nil {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}
	username, err := a.promptLine("Username")
	if err != nil {
		return err
	}
	email, err := a.promptLine("Email (optional)")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}
	confirm, err := a.promptPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	if _, err := a.accounts.Register(ctx, ports.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account created.")
	a.guard.Init(ctx)
	return nil
}

func (a *App) cmdWhoami(ctx context.Context) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	renderUserDetail(a.out, a.cache.Current())
	return nil
}

func (a *App) cmdPasswd(ctx context.Context) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	current, err := a.promptPassword("Current password")
	if err != nil {
		return err
	}
	next, err := a.promptPassword("New password")
	if err != nil {
		return err
	}
	confirm, err := a.promptPassword("Confirm new password")
	if err != nil {
		return err
	}
	if next != confirm {
		return fmt.Errorf("passwords do not match")
	}
	if err := a.accounts.ChangePassword(ctx, ports.ChangePasswordInput{
		CurrentPassword: current,
		NewPassword:     next,
	}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}
