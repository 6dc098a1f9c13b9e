package cli

import (
	"context"
	"errors"
	"fmt"

	"snackdash/internal/common"
)

// afterSignIn mirrors the storefront's post-auth redirect: the engines only
// return the session, and the CLI decides where to send the user.
func (a *App) afterSignIn() {
	if a.session.IsAdmin {
		fmt.Fprintln(a.out, "Opening admin dashboard...")
	} else {
		fmt.Fprintln(a.out, "Opening your profile...")
	}
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if name == "" || email == "" || len(password) == 0 {
		fmt.Fprintln(a.out, "Please fill in all fields.")
		return common.ErrMissingField
	}

	sess, err := a.accounts.Register(ctx, name, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			fmt.Fprintln(a.out, "Registration failed: a user with this email already exists.")
		case errors.Is(err, common.ErrMissingField):
			fmt.Fprintln(a.out, "Please fill in all fields.")
		default:
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		}
		return err
	}

	a.session = sess
	fmt.Fprintf(a.out, "Account created! Signed in as %s.\n", sess.Email)
	a.afterSignIn()
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		fmt.Fprintln(a.out, "Please fill in all fields.")
		return common.ErrMissingField
	}

	sess, err := a.accounts.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Login failed: invalid email or password.")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	a.session = sess
	fmt.Fprintf(a.out, "Signed in as %s.\n", sess.Email)
	a.afterSignIn()
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.accounts.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) AdminLogin(ctx context.Context) error {
	sess, err := a.accounts.QuickAdminLogin(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Admin login failed: %v\n", err)
		return err
	}
	a.session = sess
	fmt.Fprintln(a.out, "Signed in as administrator.")
	a.afterSignIn()
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	sess, err := a.accounts.Current(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if sess == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	role := "customer"
	if sess.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s <%s> (%s), member since %s\n",
		sess.DisplayName, sess.Email, role, sess.CreatedAt.Format("2006-01-02"))
	return nil
}

func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "The users list is available to administrators only.")
		return nil
	}

	list, err := a.accounts.Accounts(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No registered users.")
		return nil
	}
	for _, u := range list {
		flag := ""
		if u.IsAdmin {
			flag = " [admin]"
		}
		fmt.Fprintf(a.out, "%s  %s <%s>%s\n", u.CreatedAt.Format("2006-01-02"), u.DisplayName, u.Email, flag)
	}
	return nil
}
