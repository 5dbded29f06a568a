package userform

import "github.com/seaboard/dashkit/pkg/validator"

const (
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailFormat       = "Check the format of the email you entered"
)

// Result is the outcome of Validate. Errors maps a field name to the single
// message shown for it and is nil when OK.
type Result struct {
	OK     bool              `json:"ok"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Rules returns the ordered rules for f. Within a field, presence is checked
// before format, so ApplyFirst reports the most basic problem. Presence means
// a non-empty string; whitespace-only names are accepted as given.
func Rules(f Form) []validator.Rule {
	return []validator.Rule{
		validator.NonEmpty(FieldFirstName, f.FirstName).WithMessage(MsgFirstNameRequired),
		validator.NonEmpty(FieldLastName, f.LastName).WithMessage(MsgLastNameRequired),
		validator.NonEmpty(FieldEmail, f.Email).WithMessage(MsgEmailRequired),
		validator.ValidEmail(FieldEmail, f.Email).WithMessage(MsgEmailFormat),
		validator.Optional(f.Company, validator.ValidNumber(FieldCompany, f.Company)),
		validator.Optional(f.UserRole, validator.ValidNumber(FieldUserRole, f.UserRole)),
	}
}

// Validate checks every field independently and never panics.
func Validate(f Form) Result {
	err := validator.ApplyFirst(Rules(f)...)
	if err == nil {
		return Result{OK: true}
	}
	return Result{OK: false, Errors: validator.ExtractValidationErrors(err).Map()}
}

// Err returns the failures as validator.ValidationErrors, or nil when OK.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	errs := make(validator.ValidationErrors, 0, len(r.Errors))
	for _, field := range fieldOrder {
		if msg, ok := r.Errors[field]; ok {
			errs.Add(validator.ValidationError{Field: field, Message: msg})
		}
	}
	return errs
}

var fieldOrder = []string{FieldFirstName, FieldLastName, FieldEmail, FieldCompany, FieldUserRole}
