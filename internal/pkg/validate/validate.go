package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/client-portal-api/internal/domain"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

var (
	emailPattern = regexp.MustCompile(`(?i)^[\w.-]+@[a-zA-Z\d.-]+\.[a-zA-Z]{2,}$`)
	// Characters rejected in passwords as an injection defence.
	forbiddenChars = regexp.MustCompile(`[<>"'/\\|?=*]`)
)

func init() {
	_ = v.RegisterValidation("portal_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("no_forbidden_chars", func(fl validator.FieldLevel) bool {
		return !forbiddenChars.MatchString(fl.Field().String())
	})
}

// Error is a user-visible validation failure. Its message is safe to return
// to the caller verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Registration runs the registration input checks sequentially and returns
// the first failure, so exactly one message reaches the caller per request.
func Registration(req domain.RegisterRequest) error {
	checks := []struct {
		failed  bool
		message string
	}{
		{
			v.Var(req.Email, "portal_email") != nil || v.Var(req.RepeatedEmail, "portal_email") != nil,
			"Adres email zawiera niedozwolone znaki!",
		},
		{
			v.Var(req.Email, "required,max=50") != nil || v.Var(req.RepeatedEmail, "required,max=50") != nil,
			"Email must be between 1 and 50 characters long!",
		},
		{
			v.Var(req.Password, "required,max=50") != nil || v.Var(req.RepeatedPassword, "required,max=50") != nil,
			"Password must be between 1 and 50 characters long!",
		},
		{
			v.Var(req.Password, "no_forbidden_chars") != nil || v.Var(req.RepeatedPassword, "no_forbidden_chars") != nil,
			"Hasło zawiera niedozwolone znaki!",
		},
		{req.Email != req.RepeatedEmail, "Podano różne adresy email!"},
		{req.Password != req.RepeatedPassword, "Podano różne hasła!"},
	}
	for _, c := range checks {
		if c.failed {
			return &Error{Message: c.message}
		}
	}
	return nil
}

// Struct validates the given struct using its validate tags.
// Returns a human-readable error string or nil.
func Struct(s interface{}) error {
	if err := v.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var msgs []string
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}
