package dto

import "time"

// ErrorResponse is the generic JSON error body returned by the API endpoints.
//
// Shape:
//
//	{
//	    "error": "Failed to fetch Etsy data",
//	    "message": "upstream API error: shop returned status 503",
//	    "timestamp": "2025-09-01T12:00:00Z"
//	}
type ErrorResponse struct {
	Error     string    `json:"error" example:"Failed to fetch Etsy data"`
	Message   string    `json:"message,omitempty" example:"upstream API error: shop returned status 503"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse with the current UTC timestamp.
// The inner error is optional; when present its text fills the message field.
func NewErrorResponse(errMsg string, err error) ErrorResponse {
	resp := ErrorResponse{
		Error:     errMsg,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.Message = err.Error()
	}
	return resp
}
