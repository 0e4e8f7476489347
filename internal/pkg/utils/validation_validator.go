package utils

import (
	"proacolhe-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	usernameRegex    = regexp.MustCompile(constvars.RegexUsername)
	susNumberRegex   = regexp.MustCompile(`^\d{1,15}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("sus_number", validateSusNumber)
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("date", validateDate)
	validate.RegisterValidation("not_future_date", validateNotFutureDate)
	validate.RegisterValidation("username", validateUsername)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidatePassword applies the staff password rule outside struct tags,
// for updates where the password is optional. The upper bound is in bytes
// because bcrypt only reads the first 72.
func ValidatePassword(password string) bool {
	hasMinLen := len([]rune(password)) >= 6
	if !hasMinLen || len(password) > MaxPasswordBytes {
		return false
	}
	return specialCharRegex.MatchString(password) && uppercaseRegex.MatchString(password)
}

func validatePassword(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

func validateSusNumber(fl validator.FieldLevel) bool {
	return susNumberRegex.MatchString(fl.Field().String())
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "admin", "doctor", "nurse", "manager":
		return true
	}
	return false
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateFormatYYYYMMDD, fl.Field().String())
	return err == nil
}

func validateNotFutureDate(fl validator.FieldLevel) bool {
	date, err := time.Parse(constvars.DateFormatYYYYMMDD, fl.Field().String())
	if err != nil {
		return false
	}
	return !IsFutureDate(date, time.Now())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}
