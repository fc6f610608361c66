package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/evently/event-api/common/errors"
)

// CORS headers attached to every response. API Gateway handles the
// preflight itself when deployed; the same headers serve local dev.
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type,Authorization",
}

// ErrorBody is the wire shape of every error response. Detail is the
// machine-readable message; Code identifies the error kind.
type ErrorBody struct {
	Detail string              `json:"detail"`
	Code   apperrors.ErrorCode `json:"code,omitempty"`
}

func headers() map[string]string {
	h := map[string]string{
		"Content-Type": "application/json;charset=UTF-8",
	}
	for k, v := range CORSHeaders {
		h[k] = v
	}
	return h
}

// JSON builds a proxy response with the given status and JSON body.
func JSON(statusCode int, data interface{}) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers(),
			Body:       `{"detail":"Failed to serialize response"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers(),
		Body:       string(body),
	}, nil
}

// Detail builds an error response carrying a detail message.
func Detail(statusCode int, detail string) (events.APIGatewayProxyResponse, error) {
	return JSON(statusCode, ErrorBody{Detail: detail})
}

// FromError maps an error to a proxy response. AppErrors carry their
// own status; anything else is an internal error. Storage and internal
// failures surface a generic detail, the specifics go to the logs.
func FromError(err error) (events.APIGatewayProxyResponse, error) {
	appErr := apperrors.ToAppError(err)
	detail := appErr.Message
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		detail = "Internal server error"
	}
	return JSON(appErr.HTTPStatus, ErrorBody{Detail: detail, Code: appErr.Code})
}
