package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/Amrutha2803/employee-list/internal/models"

	"github.com/go-playground/validator/v10"
)

// Error keys reported per field. They match what the form layer displays.
const (
	KeyRequired     = "required"
	KeyMinLength    = "minlength"
	KeyMaxLength    = "maxlength"
	KeyPattern      = "pattern"
	KeyEmail        = "email"
	KeyInvalidPhone = "invalidPhone"
	KeyOneOf        = "oneof"
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z\s'\-]+$`)
	countryCode = regexp.MustCompile(`^\s*\+(\d{1,3})`)

	// Same shape a browser form accepts: a dotless domain such as "localhost" is fine.
	mailboxPattern = regexp.MustCompile("^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		"@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

const (
	maxMailboxLen = 254
	maxLocalLen   = 64
)

// FieldErrors maps a field's JSON name to the rule keys it failed.
type FieldErrors map[string][]string

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for k := range fe {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	return &Validator{v: v}
}

// Validate checks every field of the form. It returns nil when the form is valid.
func (val *Validator) Validate(in models.Input) FieldErrors {
	err := val.v.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": {err.Error()}}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], errorKey(fe.Tag()))
	}
	return out
}

// ValidateFields checks only the named fields. It returns nil when they are all valid.
func (val *Validator) ValidateFields(in models.Input, fields ...string) FieldErrors {
	all := val.Validate(in)
	if all == nil {
		return nil
	}
	out := FieldErrors{}
	for _, f := range fields {
		if keys, ok := all[f]; ok {
			out[f] = keys
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ValidPhone reports whether raw passes the contact number rule. Blank input passes;
// presence is the required rule's job.
//
// A leading +91 requires exactly ten digits after the code. Any other leading
// +code, or no code at all, requires 10 to 15 digits in total.
func ValidPhone(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return true
	}

	digits := digitsOf(s)
	if m := countryCode.FindStringSubmatch(s); m != nil {
		cc := m[1]
		if cc == "91" {
			return len(digits)-len(cc) == 10
		}
	}
	return len(digits) >= 10 && len(digits) <= 15
}

// ValidEmail reports whether raw is an acceptable email address. Blank input
// passes; presence is the required rule's job.
func ValidEmail(raw string) bool {
	if raw == "" {
		return true
	}
	at := strings.IndexByte(raw, '@')
	if len(raw) > maxMailboxLen || at < 0 || at > maxLocalLen {
		return false
	}
	return mailboxPattern.MatchString(raw)
}

func digitsOf(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func errorKey(tag string) string {
	switch tag {
	case "required":
		return KeyRequired
	case "min":
		return KeyMinLength
	case "max":
		return KeyMaxLength
	case "personname":
		return KeyPattern
	case "email", "mailbox":
		return KeyEmail
	case "phone":
		return KeyInvalidPhone
	case "oneof":
		return KeyOneOf
	default:
		return tag
	}
}
