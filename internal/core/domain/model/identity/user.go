package identity

import (
	"errors"
	"fmt"
	"strings"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"
)

// MaxPasswordLength is the bcrypt input limit in bytes.
const MaxPasswordLength = 72

var ErrUserIsNotConstructed = errors.New("User must be created via NewCustomer or RestoreUser")

// User is the account aggregate.
//
// Invariants:
//   - login is a valid normalized Login
//   - passwordHash is never empty; the plain password is never held
//   - role is one of the three roles
//   - favoriteItem is empty (unset) or the name of a catalog item, checked by the caller
//   - phoneNumber is exactly ten digits
type User struct {
	login         kernel.Login
	passwordHash  string
	role          Role
	favoriteItem  string
	phoneNumber   PhoneNumber
	isConstructed bool
}

// NewCustomer creates a self-registered account. The role is always Customer
// and no favorite item is set.
func NewCustomer(login kernel.Login, passwordHash string, phoneNumber PhoneNumber) (*User, error) {
	user := &User{role: Customer, isConstructed: true}
	if err := errors.Join(
		user.setLogin(login),
		user.ChangePasswordHash(passwordHash),
		user.ChangePhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}
	return user, nil
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(
	login kernel.Login,
	passwordHash string,
	role Role,
	favoriteItem string,
	phoneNumber PhoneNumber,
) (*User, error) {
	user := &User{favoriteItem: favoriteItem, isConstructed: true}
	if err := errors.Join(
		user.setLogin(login),
		user.ChangePasswordHash(passwordHash),
		user.ChangeRole(role),
		user.ChangePhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) Login() kernel.Login {
	return u.login
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

// FavoriteItem returns the favorite item name and whether one is set.
func (u *User) FavoriteItem() (string, bool) {
	return u.favoriteItem, u.favoriteItem != ""
}

func (u *User) PhoneNumber() PhoneNumber {
	return u.phoneNumber
}

// Rename changes the account key. Uniqueness is enforced by the caller and storage.
func (u *User) Rename(newLogin kernel.Login) error {
	return u.setLogin(newLogin)
}

func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// SetFavoriteItem records itemName, which the caller has resolved against the catalog.
func (u *User) SetFavoriteItem(itemName string) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return errs.NewValueIsRequiredError("favoriteItem")
	}
	u.favoriteItem = itemName
	return nil
}

func (u *User) ChangePhoneNumber(phoneNumber PhoneNumber) error {
	if err := phoneNumber.Validate(); err != nil {
		return err
	}
	u.phoneNumber = phoneNumber
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setLogin(login kernel.Login) error {
	if err := login.Validate(); err != nil {
		return err
	}
	u.login = login
	return nil
}

// ValidatePassword checks a plain password before hashing.
func ValidatePassword(password string) error {
	if password == "" || len(password) > MaxPasswordLength {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"password length", len(password), 1, MaxPasswordLength, ErrInvalidPassword,
		)
	}
	return nil
}

// ProfileField names a self-service profile attribute.
type ProfileField int

const (
	UnknownProfileField ProfileField = iota
	FavoriteItemField
	PhoneNumberField
	PasswordField
)

func getProfileFieldStrings() map[ProfileField]string {
	return map[ProfileField]string{
		FavoriteItemField: "favoriteItem",
		PhoneNumberField:  "phoneNumber",
		PasswordField:     "password",
	}
}

// ParseProfileField matches the field name case-insensitively.
func ParseProfileField(raw string) (ProfileField, error) {
	trimmed := strings.TrimSpace(raw)
	for field, name := range getProfileFieldStrings() {
		if strings.EqualFold(name, trimmed) {
			return field, nil
		}
	}
	return UnknownProfileField, errs.NewValueIsInvalidErrorWithCause(
		"field", fmt.Errorf("%w: %q", ErrInvalidProfileField, raw),
	)
}

func (f ProfileField) String() string {
	if s, ok := getProfileFieldStrings()[f]; ok {
		return s
	}
	return "unknown"
}
