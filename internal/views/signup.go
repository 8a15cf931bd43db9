package views

import (
	"fmt"
	"io"
)

// SignupView is a placeholder; registration is not implemented.
type SignupView struct{}

func NewSignupView() *SignupView { return &SignupView{} }

func (v *SignupView) Render(w io.Writer) {
	fmt.Fprintln(w, "Sign Up")
	fmt.Fprintln(w, "Sign up functionality coming soon! Use the demo account:")
	fmt.Fprintln(w, "  Email:    admin@test.com")
	fmt.Fprintln(w, "  Password: admin123")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Go to #login to log in")
}

func (v *SignupView) Handle(string) bool { return false }
