package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/evently/event-api/common/config"
	"github.com/evently/event-api/common/dynamo"
	"github.com/evently/event-api/common/logger"
	"github.com/evently/event-api/services/event-lambda/handler"
	"github.com/evently/event-api/services/event-lambda/repository"
	"github.com/evently/event-api/services/event-lambda/usecase"
)

// Local development server. Adapts net/http requests to the
// APIGatewayProxyRequest shape so the Lambda handler runs unchanged
// outside AWS.

// adaptRequest converts http.Request to APIGatewayProxyRequest
func adaptRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}
	defer r.Body.Close()

	headers := make(map[string]string)
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	queryParams := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			queryParams[key] = values[0]
		}
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		QueryStringParameters: queryParams,
		Body:                  string(body),
	}, nil
}

// writeResponse writes APIGatewayProxyResponse to http.ResponseWriter
func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write([]byte(resp.Body))
}

// proxyHandler bridges a proxy-style Lambda handler into net/http,
// logging each request the way the deployed gateway would.
func proxyHandler(fn func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		request, err := adaptRequest(r)
		if err != nil {
			http.Error(w, "failed to read request", http.StatusInternalServerError)
			return
		}

		resp, err := fn(r.Context(), request)
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeResponse(w, resp)

		logger.Default().LogRequest(logger.RequestLog{
			Method:   r.Method,
			Path:     r.URL.Path,
			Status:   resp.StatusCode,
			Duration: time.Since(start),
			ClientIP: r.RemoteAddr,
		})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	client, err := dynamo.NewClient(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to create DynamoDB client: %v", err)
	}

	eventRepo := repository.NewDynamoEventRepository(client, cfg.TableName)
	eventHandler := handler.NewEventHandler(usecase.NewEventUseCase(eventRepo))

	mux := http.NewServeMux()
	mux.HandleFunc("/", proxyHandler(eventHandler.HandleRequest))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.With("addr", addr).Info("local dev server listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server error: %v", err)
	}
}
