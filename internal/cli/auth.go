package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	session, err := a.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	a.session = session
	a.done("Logged in as %s (%s).", session.Username, session.Role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if a.session != nil {
		a.logger.Info(ctx, "logout", "username", a.session.Username)
	}
	a.session = nil
	a.done("Logged out.")
	return nil
}

// Passwd changes the current user's password after checking the old one.
func (a *App) Passwd(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	current, err := GetPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	ok, _, err := a.auth.Verify(ctx, a.session.Username, current)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorUnauthorized
	}

	password, err := a.newPassword()
	if err != nil {
		return err
	}
	if err := a.auth.ChangePassword(ctx, a.session.Username, password); err != nil {
		return err
	}
	a.done("Password changed.")
	return nil
}

// UserAdd registers another account. Admin only.
func (a *App) UserAdd(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	username, password, err := a.newCredentials()
	if err != nil {
		return err
	}
	roleText, err := a.form().text("Role (admin|usuario)", string(models.RoleUser))
	if err != nil {
		return err
	}
	role, err := models.ParseRole(roleText)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	user, err := a.auth.Register(ctx, username, password, role)
	if err != nil {
		return err
	}
	a.done("User %q created with role %s.", user.Username, user.Role)
	return nil
}
