package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	return v
}

// Validator is implemented by request DTOs that need checks struct tags cannot express.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields), runs the struct's
// `validate` tags and, if dest implements Validator, Validate(). On failure it writes a 400 JSON error and
// returns false. Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, decodeErrorMessage(err))
		return false
	}
	if msgs := ValidateStruct(dest); len(msgs) > 0 {
		WriteJSONError(w, http.StatusBadRequest, strings.Join(msgs, "; "))
		return false
	}
	return true
}

// ValidateStruct runs tag validation and Validator on dest and returns the messages.
func ValidateStruct(dest any) []string {
	var msgs []string
	if err := validate.Struct(dest); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []string{err.Error()}
		}
		for _, fe := range verrs {
			msgs = append(msgs, fieldErrorMessage(fe))
		}
	}
	if v, ok := dest.(Validator); ok {
		msgs = append(msgs, v.Validate()...)
	}
	return msgs
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "ddmmyyyy":
		return fe.Field() + " must be a date in DD-MM-YYYY format"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func kindName(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	}
	return "of type " + k.String()
}

// decodeErrorMessage turns JSON decode failures into messages that name the offending field.
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return fmt.Sprintf("%s must be %s", typeErr.Field, kindName(typeErr.Type.Kind()))
		}
		return "request body has the wrong shape"
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "malformed JSON body"
	}
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}
	if strings.HasPrefix(err.Error(), "json: unknown field") {
		return strings.TrimPrefix(err.Error(), "json: ")
	}
	return err.Error()
}
