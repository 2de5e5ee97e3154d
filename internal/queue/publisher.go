package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// dialTimeout bounds the TCP connect and AMQP handshake to the broker.
	dialTimeout = 3 * time.Second
	// publishTimeout bounds a single publish on an open channel.
	publishTimeout = 3 * time.Second
	// pendingEvents is how many events may wait for the broker before new
	// ones are dropped.
	pendingEvents = 64
)

// Publisher sends QueryDegradedEvent messages from a single background
// goroutine over one long-lived connection. QueryDegraded only enqueues, so
// a slow or unreachable broker never holds up a request.
type Publisher struct {
	url         string
	queue       string
	log         *slog.Logger
	dialTimeout time.Duration
	dial        func(url string) (channel, func(), error)
	events      chan QueryDegradedEvent
}

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// NewPublisher returns a publisher for the given broker URL. Nothing is sent
// until Run is started.
func NewPublisher(url string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{
		url:         url,
		queue:       DegradedQueue,
		log:         logger.With("component", "queue_publisher"),
		dialTimeout: dialTimeout,
		events:      make(chan QueryDegradedEvent, pendingEvents),
	}
	p.dial = func(url string) (channel, func(), error) { return dialChannel(url, p.dialTimeout) }
	return p
}

func dialChannel(url string, timeout time.Duration) (channel, func(), error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return ch, func() {
		_ = ch.Close()
		_ = conn.Close()
	}, nil
}

// QueryDegraded queues the failure for publishing and returns immediately.
// When the queue is full the event is dropped and logged. It satisfies
// analytics.Notifier.
func (p *Publisher) QueryDegraded(ctx context.Context, query string, err error) {
	select {
	case p.events <- NewQueryDegradedEvent(query, err):
	default:
		p.log.WarnContext(ctx, "degradation event dropped; publisher backlog full", "query", query)
	}
}

// Run publishes queued events until ctx is cancelled. The connection is
// opened on the first event and reopened on the next event after a failure.
func (p *Publisher) Run(ctx context.Context) {
	var (
		ch      channel
		closeFn func()
	)
	reset := func() {
		if closeFn != nil {
			closeFn()
		}
		ch, closeFn = nil, nil
	}
	defer reset()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-p.events:
			if ch == nil {
				var err error
				if ch, closeFn, err = p.open(); err != nil {
					p.log.Warn("degradation event not published", "query", ev.Query, "err", err)
					reset()
					continue
				}
			}
			if err := p.send(ctx, ch, ev); err != nil {
				p.log.Warn("degradation event not published", "query", ev.Query, "err", err)
				reset()
			}
		}
	}
}

func (p *Publisher) open() (channel, func(), error) {
	ch, closeFn, err := p.dial(p.url)
	if err != nil {
		return nil, nil, err
	}
	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		closeFn()
		return nil, nil, err
	}
	return ch, closeFn, nil
}

// send writes one event as a persistent JSON message to the durable queue.
func (p *Publisher) send(ctx context.Context, ch channel, ev QueryDegradedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
