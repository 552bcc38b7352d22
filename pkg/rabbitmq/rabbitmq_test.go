package rabbitmq

import (
	"errors"
	"testing"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable).Error(0)
}

func (m *MockChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	ret := m.Called(name, durable)
	return amqp.Queue{Name: name}, ret.Error(0)
}

func (m *MockChannel) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	return m.Called(name, key, exchange).Error(0)
}

func (m *MockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(exchange, key, msg).Error(0)
}

func (m *MockChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	ret := m.Called(queue, autoAck)
	ch, _ := ret.Get(0).(<-chan amqp.Delivery)
	return ch, ret.Error(1)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

var testConfig = Config{URL: "amqp://unused", Exchange: "inventory", Queue: "inventory_events"}

func newTestClient(t *testing.T) (*Client, *MockChannel) {
	t.Helper()
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", "inventory", "topic", true).Return(nil)
	ch.On("QueueDeclare", "inventory_events", true).Return(nil)
	ch.On("QueueBind", "inventory_events", "#", "inventory").Return(nil)

	client, err := NewClientWithChannel(ch, testConfig)
	require.NoError(t, err)
	return client, ch
}

func TestNewClientWithChannel_DeclaresTopology(t *testing.T) {
	_, ch := newTestClient(t)
	ch.AssertExpectations(t)
}

func TestNewClientWithChannel_ExchangeFailureClosesChannel(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", "inventory", "topic", true).Return(errors.New("access refused"))
	ch.On("Close").Return(nil)

	client, err := NewClientWithChannel(ch, testConfig)
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "failed to declare exchange inventory")
	ch.AssertCalled(t, "Close")
	ch.AssertNotCalled(t, "QueueDeclare", mock.Anything, mock.Anything)
}

func TestPublish(t *testing.T) {
	client, ch := newTestClient(t)
	body := []byte(`{"type":"store.created","name":"corner"}`)

	ch.On("Publish", "inventory", "store.created", mock.MatchedBy(func(msg amqp.Publishing) bool {
		return msg.ContentType == "application/json" &&
			msg.DeliveryMode == amqp.Persistent &&
			msg.MessageId != "" &&
			string(msg.Body) == string(body)
	})).Return(nil).Once()

	require.NoError(t, client.Publish("store.created", body))
	ch.AssertExpectations(t)
}

func TestPublish_WrapsBrokerError(t *testing.T) {
	client, ch := newTestClient(t)
	ch.On("Publish", "inventory", "item.deleted", mock.Anything).Return(errors.New("channel closed"))

	err := client.Publish("item.deleted", []byte(`{}`))
	assert.ErrorContains(t, err, "failed to publish item.deleted")
}

func TestPublish_NoChannel(t *testing.T) {
	client := &Client{exchange: "inventory"}
	assert.Error(t, client.Publish("store.created", nil))
}

func TestConsume_RegisterFailure(t *testing.T) {
	client, ch := newTestClient(t)
	ch.On("Consume", "inventory_events", false).Return(nil, errors.New("no queue"))

	err := client.Consume(LogEvent)
	assert.ErrorContains(t, err, "failed to register consumer")
}

func TestClose(t *testing.T) {
	client, ch := newTestClient(t)
	ch.On("Close").Return(nil).Once()

	assert.NoError(t, client.Close())
	ch.AssertExpectations(t)
}
