package rabbitmq_test

import (
	"testing"
	"time"

	"catalog/internal/models"
	"catalog/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductEventWireFormat(t *testing.T) {
	event := models.ProductEvent{
		Type:       models.ProductUpdated,
		ProductID:  12,
		SKU:        "BK-DUNE",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := rabbitmq.EncodeProductEvent(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"product.updated","product_id":12,"sku":"BK-DUNE","occurred_at":"2024-05-01T12:00:00Z"}`, string(body))

	decoded, err := rabbitmq.DecodeProductEvent(body)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestDecodeProductEventRejectsGarbage(t *testing.T) {
	_, err := rabbitmq.DecodeProductEvent([]byte("not json"))
	assert.Error(t, err)

	_, err = rabbitmq.DecodeProductEvent([]byte(`{"product_id":1}`))
	assert.EqualError(t, err, "product event has no type")
}

func TestPublishWithoutChannel(t *testing.T) {
	var client rabbitmq.Client
	err := client.PublishProductEvent(models.ProductEvent{Type: models.ProductCreated})
	assert.EqualError(t, err, "RabbitMQ channel is not available")

	err = client.ConsumeProductEvents(func(models.ProductEvent) error { return nil })
	assert.Error(t, err)
}
