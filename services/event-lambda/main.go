package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/evently/event-api/common/config"
	"github.com/evently/event-api/common/dynamo"
	"github.com/evently/event-api/common/logger"
	"github.com/evently/event-api/services/event-lambda/handler"
	"github.com/evently/event-api/services/event-lambda/repository"
	"github.com/evently/event-api/services/event-lambda/usecase"
)

// For AWS Lambda deployment behind the API Gateway proxy integration.
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

	lambda.Start(eventHandler.HandleRequest)
}
