package chart

import "errors"

var (
	// ErrUnknownEvent is returned by Dispatch for event kinds other than click and dblclick.
	ErrUnknownEvent = errors.New("unknown chart event kind")
	// ErrEventOutOfRange is returned when an event points outside the dataset.
	ErrEventOutOfRange = errors.New("chart event outside dataset")
)
