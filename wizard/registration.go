package wizard

import (
	"regexp"
	"strings"
)

// Registration form fields
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// RegistrationFailedMessage is shown when the register call fails
const RegistrationFailedMessage = "Registration failed. Please try again."

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// RegistrationSteps returns the two steps of the sign-up form
func RegistrationSteps() []Step {
	return []Step{
		{
			Name:     "Personal Information",
			Fields:   []string{FieldFirstName, FieldLastName, FieldEmail},
			Validate: validatePersonalInfo,
		},
		{
			Name:     "Security",
			Fields:   []string{FieldPassword, FieldConfirmPassword},
			Secret:   []string{FieldPassword, FieldConfirmPassword},
			Validate: validateSecurity,
		},
	}
}

// NewRegistration creates the sign-up wizard
func NewRegistration(submit SubmitFunc) *Wizard {
	return New(RegistrationSteps(), submit, RegistrationFailedMessage)
}

// ValidEmail reports whether s looks like an email address
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validatePersonalInfo(f map[string]string) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f[FieldFirstName]) == "" {
		errs[FieldFirstName] = "First name is required"
	}
	if strings.TrimSpace(f[FieldLastName]) == "" {
		errs[FieldLastName] = "Last name is required"
	}
	email := f[FieldEmail]
	switch {
	case strings.TrimSpace(email) == "":
		errs[FieldEmail] = "Email is required"
	case !ValidEmail(email):
		errs[FieldEmail] = "Email is invalid"
	}
	return errs
}

func validateSecurity(f map[string]string) map[string]string {
	errs := map[string]string{}
	password := f[FieldPassword]
	switch {
	case password == "":
		errs[FieldPassword] = "Password is required"
	case len([]rune(password)) < MinPasswordLength:
		errs[FieldPassword] = "Password must be at least 8 characters"
	}
	if password != f[FieldConfirmPassword] {
		errs[FieldConfirmPassword] = "Passwords do not match"
	}
	return errs
}

// Strength is the password meter shown on the security step
type Strength struct {
	Score int    `json:"score"` // 0-4
	Label string `json:"label"`
}

var strengthLabels = []string{"Weak", "Fair", "Good", "Strong"}

// PasswordStrength scores a password one point each for length, an upper-case
// letter, a digit and a symbol
func PasswordStrength(password string) Strength {
	if password == "" {
		return Strength{}
	}

	score := 0
	if len([]rune(password)) >= MinPasswordLength {
		score++
	}
	if strings.IndexFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0 {
		score++
	}
	if strings.IndexFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
		score++
	}
	if strings.IndexFunc(password, isSymbol) >= 0 {
		score++
	}

	return Strength{Score: score, Label: strengthLabels[max(score, 1)-1]}
}

func isSymbol(r rune) bool {
	return !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
}
