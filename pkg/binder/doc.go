// Package binder turns HTTP requests into typed structs for handler.Wrap.
//
// Each binder reads one source and one struct tag:
//
//	Form()     form bodies       `form:"name"`
//	JSON()     JSON bodies       json tags
//	Path(fn)   route parameters  `path:"name"`
//
// A binder that does not apply to a request (the form binder on a GET, the
// path binder on a struct without path tags) returns ErrBinderNotApplicable and
// is skipped. Other failures wrap one of the package errors.
package binder
