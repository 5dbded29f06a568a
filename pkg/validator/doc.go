// Package validator provides small, composable validation rules for form input.
//
// Every exported helper returns a Rule: a Check predicate paired with a
// ValidationError describing the failure (field, message, translation key).
// Rules hold no shared state, so they are safe to build per request.
//
// Two evaluators are available:
//   - Apply runs every rule and reports every failure.
//   - ApplyFirst runs rules in order and reports only the first failure per
//     field. Order the rules for a field from presence to format so the most
//     basic problem is the one the user sees.
//
// Optional wraps a rule so it passes on blank input, and Rule.WithMessage
// replaces the default message with a form-specific one.
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.Required("email", email).WithMessage("Email is required"),
//	    validator.ValidEmail("email", email),
//	    validator.Optional(age, validator.ValidNumber("age", age)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := verrs.First("email")
//	}
//
// ValidationErrors implements error, so it can be returned through ordinary
// error paths and recovered with ExtractValidationErrors or errors.As.
package validator
