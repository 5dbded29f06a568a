package binder

import (
	"net/http"
	"reflect"
)

// PathExtractor returns the value of a named route parameter, e.g. chi.URLParam.
type PathExtractor func(r *http.Request, name string) string

// Path binds route parameters into fields tagged `path:"name"`.
//
//	type PanelRequest struct {
//		ID string `path:"id"`
//	}
//
//	handler.WithBinders[handler.Context, PanelRequest](binder.Path(chi.URLParam))
func Path(extract PathExtractor) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		names := pathParamNames(v)
		if len(names) == 0 {
			return ErrBinderNotApplicable
		}

		values := make(map[string][]string, len(names))
		for _, name := range names {
			if value := extract(r, name); value != "" {
				values[name] = []string{value}
			}
		}
		return bindToStruct(v, "path", values, ErrInvalidPath)
	}
}

func pathParamNames(v any) []string {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return nil
	}
	t = t.Elem()

	var names []string
	for i := range t.NumField() {
		if name, ok := tagName2Param(t.Field(i).Tag.Get("path")); ok {
			names = append(names, name)
		}
	}
	return names
}
