package views

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ritu748888/boxcourt/internal/api"
	"github.com/ritu748888/boxcourt/internal/session"
)

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// LoginView is the credentials form. Submitting is disabled while a login is
// in flight, and entered fields survive a failed attempt.
type LoginView struct {
	client    *api.Client
	store     *session.Store
	validate  *validator.Validate
	run       TaskRunner
	onSuccess func()

	form    loginForm
	errMsg  string
	loading bool
}

func NewLoginView(client *api.Client, store *session.Store, run TaskRunner, onSuccess func()) *LoginView {
	return &LoginView{
		client:    client,
		store:     store,
		validate:  validator.New(),
		run:       run,
		onSuccess: onSuccess,
	}
}

func (v *LoginView) Render(w io.Writer) {
	fmt.Fprintln(w, "Login to Box Cricket Booking")
	if v.errMsg != "" {
		fmt.Fprintf(w, "  ! %s\n", v.errMsg)
	}
	fmt.Fprintf(w, "  Email:    %s\n", v.form.Email)
	fmt.Fprintln(w, "  Password: [hidden]")
	if v.loading {
		fmt.Fprintln(w, "  Logging in...")
	} else {
		fmt.Fprintln(w, "  Type: login <email> <password>")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Don't have an account? Sign up at #signup")
	fmt.Fprintln(w, "Demo credentials: admin@test.com / admin123")
}

func (v *LoginView) Handle(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 || fields[0] != "login" {
		return false
	}
	if v.loading {
		// Submit is disabled while a login is in flight.
		return true
	}

	v.form = loginForm{}
	if len(fields) > 1 {
		v.form.Email = fields[1]
	}
	if len(fields) > 2 {
		v.form.Password = fields[2]
	}

	if err := v.validate.Struct(v.form); err != nil {
		v.errMsg = requiredFieldMessage(err)
		return true
	}

	v.submit()
	return true
}

func (v *LoginView) submit() {
	v.loading = true
	v.errMsg = ""

	email, password := v.form.Email, v.form.Password
	v.run(func(ctx context.Context) func() {
		result, err := v.client.Login(ctx, email, password)
		return func() {
			v.loading = false
			if err != nil {
				if errors.Is(err, api.ErrNetwork) {
					v.errMsg = "Network error. Make sure the server is running."
				} else {
					v.errMsg = api.UserMessage(err, "Login failed")
				}
				return
			}
			if err := v.store.Save(result.User, result.UserID, result.Token); err != nil {
				v.errMsg = "Failed to save session"
				return
			}
			v.onSuccess()
		}
	})
}

// requiredFieldMessage maps the first failed required tag to the message a
// browser would show for an empty required input.
func requiredFieldMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("%s is required", strings.ToLower(verrs[0].Field()))
	}
	return "email and password are required"
}
