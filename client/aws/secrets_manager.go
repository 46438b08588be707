package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/cyphera/circle-w3s/logger"
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc SecretsManagerAPI
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing client, e.g. a fake in tests.
func NewSecretsManagerClientWithAPI(svc SecretsManagerAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString fetches a secret string by ARN. Secrets stored as a JSON
// object with a single key yield that key's value; anything else is
// returned as stored.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArn string) (string, error) {
	if secretArn == "" {
		return "", fmt.Errorf("secret ARN is required")
	}

	logger.Debug("Fetching secret from Secrets Manager", zap.String("secretArn", secretArn))

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", secretArn, err)
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	secret := *result.SecretString

	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(secret), &secretJSON); err == nil {
		if len(secretJSON) == 1 {
			for key, value := range secretJSON {
				logger.Info("Fetched secret from Secrets Manager (extracted from single-key JSON)",
					zap.String("secretArn", secretArn),
					zap.String("jsonKey", key))
				return value, nil
			}
		}
		logger.Warn("Secret was JSON but not single-key format, returning raw JSON string",
			zap.String("secretArn", secretArn),
			zap.Int("keyCount", len(secretJSON)))
		return secret, nil
	}

	logger.Info("Fetched secret from Secrets Manager (treated as plain text)", zap.String("secretArn", secretArn))
	return secret, nil
}
