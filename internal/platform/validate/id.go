package validate

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ErrOddID is returned by CheckValidID for odd identifiers.
var ErrOddID = errors.New("id must be an even number")

// CheckValidID returns id unchanged when it is even and ErrOddID otherwise.
func CheckValidID(id int) (int, error) {
	if id%2 != 0 {
		return 0, ErrOddID
	}
	return id, nil
}

func validateEven(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err := CheckValidID(int(f.Int()))
		return err == nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f.Uint()%2 == 0
	default:
		return false
	}
}
