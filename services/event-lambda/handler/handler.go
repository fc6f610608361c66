package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/evently/event-api/common/logger"
	"github.com/evently/event-api/common/response"
	"github.com/evently/event-api/services/event-lambda/models"
	"github.com/evently/event-api/services/event-lambda/usecase"
)

const eventsPath = "/api/events"

// EventHandler handles event-related requests
type EventHandler struct {
	useCase *usecase.EventUseCase
	log     *logger.Logger
}

// NewEventHandler creates a new event handler over the given use case
func NewEventHandler(useCase *usecase.EventUseCase) *EventHandler {
	return &EventHandler{
		useCase: useCase,
		log:     logger.Default().With("component", "event-handler"),
	}
}

// HandleRequest dispatches an API Gateway proxy request to the matching
// operation. The whole API is served by one Lambda behind a proxy
// integration, so routing happens here on method + path.
func (h *EventHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod == http.MethodOptions {
		return response.JSON(http.StatusOK, map[string]string{})
	}

	path := strings.TrimSuffix(request.Path, "/")
	if path == "" {
		path = "/"
	}

	switch {
	case path == "/":
		return response.JSON(http.StatusOK, map[string]string{"message": "Event Management API"})

	case path == "/health":
		return response.JSON(http.StatusOK, map[string]string{"status": "healthy"})

	case path == eventsPath && request.HTTPMethod == http.MethodPost:
		return h.HandleCreateEvent(ctx, request)

	case path == eventsPath && request.HTTPMethod == http.MethodGet:
		return h.HandleListEvents(ctx, request)

	case strings.HasPrefix(path, eventsPath+"/"):
		eventID := eventIDFromRequest(request, path)
		if eventID == "" {
			return response.Detail(http.StatusBadRequest, "Missing event id")
		}
		switch request.HTTPMethod {
		case http.MethodGet:
			return h.HandleGetEvent(ctx, eventID)
		case http.MethodPut:
			return h.HandleUpdateEvent(ctx, eventID, request)
		case http.MethodDelete:
			return h.HandleDeleteEvent(ctx, eventID)
		}
	}

	return response.Detail(http.StatusNotFound, "Not found")
}

// HandleCreateEvent handles POST /api/events
// Returns 201 with the persisted record, including the resolved eventId.
func (h *EventHandler) HandleCreateEvent(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.CreateEventRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.Detail(http.StatusUnprocessableEntity, "Invalid request body")
	}

	// Schema validation happens before the core is invoked; the use
	// case can assume all required fields are present.
	if err := req.Validate(); err != nil {
		return response.FromError(err)
	}

	event, err := h.useCase.CreateEvent(ctx, &req)
	if err != nil {
		h.log.WithError(err).Error("create event failed")
		return response.FromError(err)
	}

	return response.JSON(http.StatusCreated, event)
}

// HandleListEvents handles GET /api/events?status=...
// Returns 200 with an array; an empty array when nothing matches.
func (h *EventHandler) HandleListEvents(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	statusFilter := request.QueryStringParameters["status"]

	eventList, err := h.useCase.ListEvents(ctx, statusFilter)
	if err != nil {
		h.log.WithError(err).Error("list events failed")
		return response.FromError(err)
	}

	return response.JSON(http.StatusOK, eventList)
}

// HandleGetEvent handles GET /api/events/{eventId}
func (h *EventHandler) HandleGetEvent(ctx context.Context, eventID string) (events.APIGatewayProxyResponse, error) {
	event, err := h.useCase.GetEvent(ctx, eventID)
	if err != nil {
		return response.FromError(err)
	}

	return response.JSON(http.StatusOK, event)
}

// HandleUpdateEvent handles PUT /api/events/{eventId}
// Partial update: only fields present in the body are changed.
func (h *EventHandler) HandleUpdateEvent(ctx context.Context, eventID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.UpdateEventRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.Detail(http.StatusUnprocessableEntity, "Invalid request body")
	}

	event, err := h.useCase.UpdateEvent(ctx, eventID, &req)
	if err != nil {
		return response.FromError(err)
	}

	return response.JSON(http.StatusOK, event)
}

// HandleDeleteEvent handles DELETE /api/events/{eventId}
func (h *EventHandler) HandleDeleteEvent(ctx context.Context, eventID string) (events.APIGatewayProxyResponse, error) {
	if err := h.useCase.DeleteEvent(ctx, eventID); err != nil {
		return response.FromError(err)
	}

	return response.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Event %s deleted successfully", eventID),
	})
}

// eventIDFromRequest prefers the API Gateway path parameter and falls
// back to parsing the raw path (local dev server has no parameters).
func eventIDFromRequest(request events.APIGatewayProxyRequest, path string) string {
	if id := request.PathParameters["eventId"]; id != "" {
		return id
	}
	return strings.TrimPrefix(path, eventsPath+"/")
}
