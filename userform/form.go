package userform

import "github.com/seaboard/dashkit/pkg/validator"

// Field names as they appear in forms and in Result.Errors.
const (
	FieldFirstName = "firstname"
	FieldLastName  = "lastname"
	FieldEmail     = "email"
	FieldCompany   = "company"
	FieldUserRole  = "userRole"
)

// Form is the raw user form as submitted. Numeric fields stay strings until
// validated so malformed input can be reported instead of failing to bind.
type Form struct {
	FirstName string `form:"firstname" json:"firstname"`
	LastName  string `form:"lastname" json:"lastname"`
	Email     string `form:"email" json:"email"`
	Company   string `form:"company" json:"company"`
	UserRole  string `form:"userRole" json:"userRole"`
}

// User is a validated user record.
type User struct {
	FirstName string   `json:"firstname"`
	LastName  string   `json:"lastname"`
	Email     string   `json:"email"`
	Company   *float64 `json:"company,omitempty"`
	UserRole  *float64 `json:"userRole,omitempty"`
}

// Parse validates f and, when valid, returns the typed record.
// On failure the returned User is zero and Result carries the messages.
func Parse(f Form) (User, Result) {
	res := Validate(f)
	if !res.OK {
		return User{}, res
	}
	return User{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Company:   optionalNumber(f.Company),
		UserRole:  optionalNumber(f.UserRole),
	}, res
}

func optionalNumber(raw string) *float64 {
	n, ok := validator.ParseNumber(raw)
	if !ok {
		return nil
	}
	return &n
}
