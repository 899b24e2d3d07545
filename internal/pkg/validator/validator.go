package validator

import (
	"regexp"
	"unicode/utf8"

	"hotelreservation/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	cnicPattern = regexp.MustCompile(`^[0-9]{13}$`)
	datePattern = regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{4}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	mustRegister("cnic", func(fl validator.FieldLevel) bool {
		return IsCNIC(fl.Field().String())
	})
	mustRegister("ddmmyyyy", func(fl validator.FieldLevel) bool {
		return IsBookingDate(fl.Field().String())
	})
	mustRegister("utf8", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
	mustRegister("roomtype", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseRoomType(fl.Field().String())
		return ok
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// IsCNIC reports whether s is exactly 13 ASCII digits.
func IsCNIC(s string) bool {
	return cnicPattern.MatchString(s)
}

// IsBookingDate reports whether s has the DD-MM-YYYY shape. Calendar
// validity is not checked.
func IsBookingDate(s string) bool {
	return datePattern.MatchString(s)
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
