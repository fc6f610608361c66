package dynamo

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/evently/event-api/common/config"
	"github.com/evently/event-api/common/logger"
)

// NewClient builds a DynamoDB client from the service configuration.
// Credentials come from the default chain (Lambda execution role in
// production, shared config or env locally).
func NewClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"table":  cfg.TableName,
		"region": awsCfg.Region,
	}).Info("DynamoDB client initialized")

	return dynamodb.NewFromConfig(awsCfg), nil
}
