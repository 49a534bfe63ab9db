// SPDX-License-Identifier: GPL-3.0-only

package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"coverage-server/commons"
	"coverage-server/coverage"
)

const (
	ExchangeName = "coverage.events"
	CheckedKey   = "coverage.checked"

	// queueDepth bounds the in-flight event backlog. Events are dropped
	// beyond it; checks must never wait on the broker.
	queueDepth = 256
)

// CheckEvent is the message published after every completed check.
type CheckEvent struct {
	RequestID         string    `json:"request_id"`
	Lat               float64   `json:"lat"`
	Lng               float64   `json:"lng"`
	Address           string    `json:"address,omitempty"`
	CoverageAvailable bool      `json:"coverage_available"`
	ServiceCount      int       `json:"service_count"`
	SourceTier        string    `json:"source_tier"`
	Confidence        string    `json:"confidence"`
	Provider          string    `json:"provider,omitempty"`
	ResolvedAt        time.Time `json:"resolved_at"`
}

// Publisher pushes check events to the broker. Publish is asynchronous:
// events are handed to a background worker and dropped when the queue is
// full or the broker unreachable, with a warning either way. A Publisher
// with an empty URL is disabled and every publish is a no-op.
type Publisher struct {
	url       string
	queue     chan CheckEvent
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once

	// worker-owned, no locking
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(amqpURL string) *Publisher {
	if amqpURL == "" {
		commons.Logger.Debug("AMQP_URL not set, event publishing disabled")
	}
	return &Publisher{
		url:   amqpURL,
		queue: make(chan CheckEvent, queueDepth),
		done:  make(chan struct{}),
	}
}

// Publish enqueues the event and returns immediately.
func (p *Publisher) Publish(ctx context.Context, event CheckEvent) {
	if p.url == "" {
		return
	}
	p.startOnce.Do(func() { go p.run() })
	select {
	case <-p.done:
	case p.queue <- event:
	default:
		commons.Logger.Warnf("Event queue full, dropping event %s", event.RequestID)
	}
}

func (p *Publisher) run() {
	for {
		select {
		case <-p.done:
			p.reset()
			return
		case event := <-p.queue:
			p.deliver(event)
		}
	}
}

func (p *Publisher) deliver(event CheckEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		commons.Logger.Errorf("Failed to encode check event: %v", err)
		return
	}
	channel, err := p.ensureChannel()
	if err != nil {
		commons.Logger.Warnf("Event broker unavailable, dropping event %s: %v", event.RequestID, err)
		return
	}
	err = channel.PublishWithContext(context.Background(), ExchangeName, CheckedKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		commons.Logger.Warnf("Failed to publish check event %s: %v", event.RequestID, err)
		p.reset()
	}
}

func (p *Publisher) ensureChannel() (*amqp.Channel, error) {
	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := channel.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	p.conn = conn
	p.channel = channel
	return channel, nil
}

func (p *Publisher) reset() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close stops the worker; queued but undelivered events are discarded.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

// EventFromResult flattens a coverage result into its event form.
func EventFromResult(result coverage.CoverageResult, address string) CheckEvent {
	return CheckEvent{
		RequestID:         result.RequestID,
		Lat:               result.Coordinates.Lat,
		Lng:               result.Coordinates.Lng,
		Address:           address,
		CoverageAvailable: result.CoverageAvailable,
		ServiceCount:      len(result.Services),
		SourceTier:        string(result.Metadata.Source),
		Confidence:        string(result.Metadata.Confidence),
		Provider:          result.Provider,
		ResolvedAt:        result.ResolvedAt,
	}
}
