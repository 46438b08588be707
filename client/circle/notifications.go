package circle

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	httpClient "github.com/cyphera/circle-w3s/client/http"
)

const subscriptionsPath = "/v2/notifications/subscriptions"

// Subscription is a webhook endpoint registered for notifications.
type Subscription struct {
	ID                string    `json:"id"`
	Name              string    `json:"name,omitempty"`
	Endpoint          string    `json:"endpoint"`
	Enabled           bool      `json:"enabled"`
	NotificationTypes []string  `json:"notificationTypes,omitempty"`
	Restricted        bool      `json:"restricted,omitempty"`
	CreateDate        time.Time `json:"createDate"`
	UpdateDate        time.Time `json:"updateDate"`
}

// CreateSubscriptionRequest registers a webhook endpoint. An empty
// NotificationTypes subscribes to everything.
type CreateSubscriptionRequest struct {
	Endpoint          string   `json:"endpoint"`
	NotificationTypes []string `json:"notificationTypes,omitempty"`
}

// CreateSubscription registers a webhook endpoint. The endpoint must be an
// absolute https URL.
func (c *CircleClient) CreateSubscription(ctx context.Context, request CreateSubscriptionRequest) (*Subscription, error) {
	endpoint, err := url.Parse(request.Endpoint)
	if err != nil || endpoint.Scheme != "https" || endpoint.Host == "" {
		return nil, fmt.Errorf("subscription endpoint must be an absolute https URL: %q", request.Endpoint)
	}

	data, err := httpClient.Execute[Subscription](ctx, c.httpClient, http.MethodPost, subscriptionsPath, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return &data, nil
}

// ListSubscriptions lists webhook subscriptions.
func (c *CircleClient) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	data, err := httpClient.Execute[[]Subscription](ctx, c.httpClient, http.MethodGet, subscriptionsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return data, nil
}

// DeleteSubscription removes a subscription. Success has no body.
func (c *CircleClient) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	id, err := pathID("subscription ID", subscriptionID)
	if err != nil {
		return err
	}

	if _, err := httpClient.Execute[httpClient.Empty](ctx, c.httpClient, http.MethodDelete, subscriptionsPath+"/"+id, nil); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
