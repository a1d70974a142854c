package account

import (
	"errors"

	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/pkg/errs"
	"kebabhouse/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a user is created without a first name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSurnameIsRequired is returned when a user is created without a surname.
	ErrSurnameIsRequired = errs.NewValueIsRequiredError("surname")
	// ErrTaxIDIsRequired is returned when a user is created without a tax id.
	ErrTaxIDIsRequired = errs.NewValueIsRequiredError("taxId")
	// ErrUserIsNotConstructed is returned when using a zero-value User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or NewStaffUser")
)

// User is the identity record for anyone interacting with the system:
// customers placing orders and staff driving them. Matricola is the optional
// staff badge number, empty for customers.
//
// User is owned by the session registry for the lifetime of a session and by
// the persistence gateway's backing store otherwise.
type User struct {
	id        kernel.UUID
	name      string
	surname   string
	taxID     string
	email     string
	matricola string

	guard guard.ConstructorGuard
}

// NewUser creates a non-staff user. ID, name, surname and tax id are
// mandatory; email may be empty.
func NewUser(id kernel.UUID, name, surname, taxID, email string) (User, error) {
	user := User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setSurname(surname),
		user.setTaxID(taxID),
	); err != nil {
		return User{}, err
	}

	user.email = email
	return user, nil
}

// NewStaffUser creates a user carrying a staff badge number.
func NewStaffUser(id kernel.UUID, name, surname, taxID, email, matricola string) (User, error) {
	user, err := NewUser(id, name, surname, taxID, email)
	if err != nil {
		return User{}, err
	}
	if matricola == "" {
		return User{}, errs.NewValueIsRequiredError("matricola")
	}

	user.matricola = matricola
	return user, nil
}

// Validate ensures the user was created through a constructor.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by identity.
func (u User) IsEqual(other User) bool {
	return u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's first name.
func (u User) Name() string {
	return u.name
}

// Surname returns the user's surname.
func (u User) Surname() string {
	return u.surname
}

// TaxID returns the user's tax identification code.
func (u User) TaxID() string {
	return u.taxID
}

// Email returns the user's email address, possibly empty.
func (u User) Email() string {
	return u.email
}

// Matricola returns the staff badge number, empty for customers.
func (u User) Matricola() string {
	return u.matricola
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setSurname(surname string) error {
	if surname == "" {
		return ErrSurnameIsRequired
	}
	u.surname = surname
	return nil
}

func (u *User) setTaxID(taxID string) error {
	if taxID == "" {
		return ErrTaxIDIsRequired
	}
	u.taxID = taxID
	return nil
}
