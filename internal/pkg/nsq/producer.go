package nsq

import (
	"context"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
)

// Producer publishes audit events to an nsqd instance. It satisfies the audit
// Publisher interface, so NSQ can stand in for NATS as the event transport.
type Producer struct {
	producer *nsq.Producer
	address  string
}

// NewProducer connects to the nsqd at address and pings it once
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon at %s: %w", address, err)
	}

	logger.Info("Connected to NSQ", logger.String("address", address))
	return &Producer{producer: producer, address: address}, nil
}

// Publish sends data to topic. Subjects such as "kaviar.admin.combo.created" are valid topic names.
func (p *Producer) Publish(topic string, data []byte) error {
	if err := p.producer.Publish(topic, data); err != nil {
		return fmt.Errorf("failed to publish to NSQ topic %s: %w", topic, err)
	}
	return nil
}

// Ping reports whether nsqd still answers
func (p *Producer) Ping(_ context.Context) error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
