package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/p3psi-boo/focalboard-mcp/models"
)

// mapAPIError converts a non-2xx remote response into an error wrapping
// [ErrRemoteAPI] (or [ErrNotFound] for 404, so that resolution can fall back
// from a failed direct fetch to a title search). The server's JSON `error`
// field is surfaced when the body parses; otherwise the HTTP status phrase.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := remoteErrorMessage(resp)

	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	}
	return fmt.Errorf("%w: http %d: %s", ErrRemoteAPI, resp.StatusCode(), message)
}

func remoteErrorMessage(resp *resty.Response) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return http.StatusText(resp.StatusCode())
}
