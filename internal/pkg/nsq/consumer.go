package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"
)

// MessageHandler processes a raw NSQ message body. Returning an error requeues
// the message for redelivery; returning nil finishes it.
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from an NSQ topic.
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for the given topic/channel and connects it
// to the NSQ daemon at address.
func NewConsumer(topic, channel, address string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		message.Touch()

		if err := handler(message.Body); err != nil {
			// Requeue for later processing.
			return err
		}

		message.Finish()
		return nil
	}))

	if err := consumer.ConnectToNSQD(address); err != nil {
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances.
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		if err := c.consumer.ConnectToNSQLookupd(addr); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// Stop gracefully stops the consumer.
func (c *Consumer) Stop() {
	c.consumer.Stop()
}
