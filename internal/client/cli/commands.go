package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/usermanager/internal/server/api"
	"github.com/dmitrijs2005/usermanager/internal/shared"
)

var (
	errNotLoggedIn = errors.New("not logged in")
	errUsage       = errors.New("usage")
)

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

// Register creates an account. Logged-in administrators may use it to create
// other users.
func (a *App) Register(ctx context.Context) error {
	login, err := GetSimpleText(a.reader, "Login", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	genderText, err := GetSimpleText(a.reader, "Gender (0 female, 1 male, 2 unspecified)", a.out)
	if err != nil {
		return err
	}
	gender, err := strconv.Atoi(genderText)
	if err != nil {
		return fmt.Errorf("gender must be 0, 1 or 2")
	}
	birthday, err := GetSimpleText(a.reader, "Birthday (YYYY-MM-DD, empty to skip)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	req := &api.CreateUserRequest{Login: login, Password: string(password), Name: name, Gender: &gender}
	if birthday != "" {
		req.Birthday = &birthday
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.CreateUser(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s\n", u.Login)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	login, err := GetSimpleText(a.reader, "Login", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.Login(ctx, login, password)
	if err != nil {
		return err
	}

	a.login = u.Login
	fmt.Fprintf(a.out, "Logged in as %s\n", u.Name)
	return nil
}

func (a *App) Logout(context.Context) error {
	a.client.Logout()
	a.login = ""
	return nil
}

func (a *App) Get(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if len(args) != 1 {
		return usage("get <login>")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	d, err := a.client.GetUser(ctx, args[0])
	if err != nil {
		return err
	}

	birthday := "-"
	if d.Birthday != nil {
		birthday = *d.Birthday
	}
	fmt.Fprintf(a.out, "name=%s gender=%d birthday=%s active=%t\n", d.Name, d.Gender, birthday, d.IsActive)
	return nil
}

func (a *App) Active(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	users, err := a.client.ListActiveUsers(ctx)
	if err != nil {
		return err
	}
	a.printUsers(users)
	return nil
}

func (a *App) Older(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if len(args) != 1 {
		return usage("older <age>")
	}
	age, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("older <age>")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	users, err := a.client.ListUsersOlderThan(ctx, age)
	if err != nil {
		return err
	}
	a.printUsers(users)
	return nil
}

// Passwd changes the password of the current user, or of the named user
// when called by an administrator.
func (a *App) Passwd(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	target := a.login
	switch len(args) {
	case 0:
	case 1:
		target = args[0]
	default:
		return usage("passwd [login]")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.UpdatePassword(ctx, target, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	soft := true
	switch {
	case len(args) == 1:
	case len(args) == 2 && args[1] == "hard":
		soft = false
	default:
		return usage("delete <login> [hard]")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.client.DeleteUser(ctx, args[0], soft); err != nil {
		return err
	}
	if soft {
		fmt.Fprintf(a.out, "Revoked %s\n", args[0])
	} else {
		fmt.Fprintf(a.out, "Deleted %s\n", args[0])
	}
	return nil
}

func (a *App) Restore(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if len(args) != 1 {
		return usage("restore <login>")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.client.RestoreUser(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Restored %s\n", args[0])
	return nil
}

func (a *App) printUsers(users []api.UserSummary) {
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users")
		return
	}
	for _, u := range users {
		admin := ""
		if u.IsAdmin {
			admin = " [admin]"
		}
		fmt.Fprintf(a.out, "%-20s %s%s\n", u.Login, u.Name, admin)
	}
}
