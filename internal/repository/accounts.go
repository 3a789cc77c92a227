package repository

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lmartins/servicofacil/internal/models"
)

// adminAccountID is the stable identity of the privileged account. Its
// username starts as "admin" but can be changed by RenameActiveUser, so the
// record is tracked by id rather than by name.
const adminAccountID = 1

// VerifyLogin returns the account matching both username and password
// exactly (case-sensitive), or nil when no account matches. Passwords are
// compared in plaintext, mirroring the single-user local model.
func (r *Repository) VerifyLogin(ctx context.Context, username, password string) (*models.Account, error) {
	var accounts []models.Account
	if _, err := r.load(ctx, keyAccounts, r.json, &accounts); err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Username == username && accounts[i].Password == password {
			r.log.Debug("login verified", zap.String("username", username))
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// ChangePassword sets a new password on the account with the given
// username, clears its first-login flag and refreshes its timestamp.
// It returns false when no such account exists; that is not an error.
func (r *Repository) ChangePassword(ctx context.Context, username, newPassword string) (bool, error) {
	var accounts []models.Account
	if _, err := r.load(ctx, keyAccounts, r.json, &accounts); err != nil {
		return false, err
	}
	for i := range accounts {
		if accounts[i].Username != username {
			continue
		}
		accounts[i].Password = newPassword
		accounts[i].FirstLogin = false
		accounts[i].UpdatedAt = r.timestamp()
		if err := r.save(ctx, keyAccounts, r.json, accounts); err != nil {
			return false, err
		}
		r.log.Info("password changed", zap.String("username", username))
		return true, nil
	}
	return false, nil
}

// ResetAdminPassword restores the privileged account's password to the
// default and marks it for first login again. Returns false when the
// account collection has no admin record.
func (r *Repository) ResetAdminPassword(ctx context.Context) (bool, error) {
	var accounts []models.Account
	if _, err := r.load(ctx, keyAccounts, r.json, &accounts); err != nil {
		return false, err
	}
	for i := range accounts {
		if accounts[i].ID != adminAccountID {
			continue
		}
		accounts[i].Password = "admin"
		accounts[i].FirstLogin = true
		accounts[i].UpdatedAt = r.timestamp()
		if err := r.save(ctx, keyAccounts, r.json, accounts); err != nil {
			return false, err
		}
		r.log.Info("admin password reset to default")
		return true, nil
	}
	return false, nil
}

// RenameActiveUser renames the privileged account and mirrors the new name
// into Settings.ActiveUsername. It fails with ErrValidation when the new
// name has fewer than three characters after trimming, with ErrConflict
// when a different account already owns it, and with ErrNotFound when the
// account collection has no admin record.
func (r *Repository) RenameActiveUser(ctx context.Context, newUsername string) error {
	newUsername = strings.TrimSpace(newUsername)
	if utf8.RuneCountInString(newUsername) < 3 {
		return fmt.Errorf("%w: username must have at least 3 characters", ErrValidation)
	}

	var accounts []models.Account
	if _, err := r.load(ctx, keyAccounts, r.json, &accounts); err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Username == newUsername && accounts[i].ID != adminAccountID {
			return fmt.Errorf("%w: username %q already exists", ErrConflict, newUsername)
		}
	}
	renamed := false
	for i := range accounts {
		if accounts[i].ID != adminAccountID {
			continue
		}
		accounts[i].Username = newUsername
		accounts[i].UpdatedAt = r.timestamp()
		if err := r.save(ctx, keyAccounts, r.json, accounts); err != nil {
			return err
		}
		renamed = true
		break
	}
	if !renamed {
		return fmt.Errorf("%w: admin account", ErrNotFound)
	}

	// mirror into the settings singleton
	active := newUsername
	if err := r.SaveSettings(ctx, SettingsPatch{ActiveUsername: &active}); err != nil {
		return err
	}
	r.log.Info("active user renamed", zap.String("username", newUsername))
	return nil
}
