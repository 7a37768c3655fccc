package users

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"

	"go.uber.org/multierr"
)

const (
	minNameLength     = 3
	minPasswordLength = 8
)

var lettersOnlyRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

// Validate collects all field violations, so the client can fix them in one go.
func (r CreateUserRequest) Validate() error {
	var err error

	if r.Email == "" {
		err = multierr.Append(err, fmt.Errorf("%w: email is required", ErrInvalidUser))
	} else if addr, parseErr := mail.ParseAddress(r.Email); parseErr != nil || addr.Address != r.Email {
		err = multierr.Append(err, fmt.Errorf("%w: invalid email", ErrInvalidUser))
	}

	err = multierr.Append(err, validateName("first name", r.FirstName))
	err = multierr.Append(err, validateName("last name", r.LastName))

	if r.ProfileImageURL != "" {
		u, parseErr := url.Parse(r.ProfileImageURL)
		if parseErr != nil || !u.IsAbs() || u.Host == "" {
			err = multierr.Append(err, fmt.Errorf("%w: invalid profile image url", ErrInvalidUser))
		}
	}

	if len(r.Password) < minPasswordLength {
		err = multierr.Append(err, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidUser, minPasswordLength))
	}

	return err
}

func validateName(field, name string) error {
	if len(name) < minNameLength {
		return fmt.Errorf("%w: %s is required", ErrInvalidUser, field)
	}
	if !lettersOnlyRegex.MatchString(name) {
		return fmt.Errorf("%w: %s must only contain letters", ErrInvalidUser, field)
	}
	return nil
}
