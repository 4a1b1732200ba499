package form

import (
	stderrors "errors"
	"net/http"

	"github.com/Jumpaku/go-survey/errors"
	"google.golang.org/api/googleapi"
)

// newAPIError classifies err returned by a Google API call addressing an
// existing form. A missing form or file is reported as errors.ErrNotFound.
func newAPIError(msg string, err error) error {
	var gErr *googleapi.Error
	if stderrors.As(err, &gErr) && gErr.Code == http.StatusNotFound {
		return errors.NewNotFoundError(msg, err)
	}
	return errors.NewAPIError(msg, err)
}
