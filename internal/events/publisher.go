// README: Optional NATS publisher for trip lifecycle events.
package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Santhosh-R2/smart-travel/internal/types"
)

// Publisher emits trip lifecycle events on "trips.<action>" subjects.
// It satisfies trip.EventSink; callers that run without a broker simply
// pass nil in its place.
type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("smart-travel-api"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			log.Printf("nats closed")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

type tripEventMessage struct {
	TripID    string    `json:"tripId"`
	OwnerID   string    `json:"ownerId"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// TripEvent publishes one lifecycle event. Publishing is best-effort: a
// failed publish is logged, never surfaced to the request path.
func (p *Publisher) TripEvent(action string, tripID types.ID, ownerID string) {
	msg := tripEventMessage{
		TripID:    string(tripID),
		OwnerID:   ownerID,
		Action:    action,
		Timestamp: time.Now(),
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := p.nc.Publish("trips."+action, b); err != nil {
		log.Printf("nats publish trips.%s: %v", action, err)
	}
}
