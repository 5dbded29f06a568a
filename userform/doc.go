// Package userform validates the user form used by the dashboard's user
// management screens.
//
// Rules per field, first failure wins:
//
//	firstname  required                  "First name is required"
//	lastname   required                  "Last name is required"
//	email      required, then format     "Email is required" / "Check the format of the email you entered"
//	company    numeric when present      "must be a valid number"
//	userRole   numeric when present      "must be a valid number"
//
// Validation is pure; calling Validate twice with the same Form yields the
// same Result.
package userform
