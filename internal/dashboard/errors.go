package dashboard

import (
	"errors"
	"net/http"

	"github.com/seaboard/dashkit/handler"
)

var (
	ErrCatalogRead    = errors.New("failed to read panel catalog")
	ErrCatalogDecode  = errors.New("failed to decode panel catalog")
	ErrInvalidCatalog = errors.New("invalid panel catalog")
	ErrNilCatalog     = errors.New("panel catalog is nil")

	ErrPanelNotFound = handler.HTTPError{Code: http.StatusNotFound, Key: "panel_not_found"}
)
