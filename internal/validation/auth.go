package validation

// LoginInput is the candidate payload for the login form.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput is the candidate payload for the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateLogin checks login credentials for shape, not correctness.
func ValidateLogin(in LoginInput) error {
	var errs FieldErrors

	switch {
	case in.Email == "":
		errs.add("email", "Email is required")
	case !validEmail(in.Email):
		errs.add("email", "Please enter a valid email address")
	}

	switch {
	case in.Password == "":
		errs.add("password", "Password is required")
	case len(in.Password) < 6:
		errs.add("password", "Password must be at least 6 characters")
	}

	return errs.asError()
}

// ValidateRegister checks a registration payload. A password/confirmation
// mismatch is attached to the confirmPassword field.
func ValidateRegister(in RegisterInput) error {
	var errs FieldErrors

	switch {
	case in.Name == "":
		errs.add("name", "Name is required")
	case len(in.Name) < 2:
		errs.add("name", "Name must be at least 2 characters")
	case len(in.Name) > 50:
		errs.add("name", "Name must be less than 50 characters")
	}

	switch {
	case in.Email == "":
		errs.add("email", "Email is required")
	case !validEmail(in.Email):
		errs.add("email", "Please enter a valid email address")
	}

	switch {
	case in.Password == "":
		errs.add("password", "Password is required")
	case len(in.Password) < 6:
		errs.add("password", "Password must be at least 6 characters")
	case !strongPassword(in.Password):
		errs.add("password", "Password must contain uppercase, lowercase, and number")
	}

	switch {
	case in.ConfirmPassword == "":
		errs.add("confirmPassword", "Please confirm your password")
	case in.ConfirmPassword != in.Password:
		errs.add("confirmPassword", "Passwords don't match")
	}

	return errs.asError()
}
