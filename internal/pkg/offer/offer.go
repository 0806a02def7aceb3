// Package offer holds the client-side view of upstream flight offers: the
// cached envelope with its locally generated identifier, the expiry predicate,
// result ordering and facet filtering, and fare-bundle synthesis.
package offer

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
)

// CachedOffer wraps an upstream offer with the client identifier assigned at
// ingestion. The identifier is the only key the rest of the session uses; the
// upstream payload inside is sent back to the API untouched, so nothing local
// is ever written into it.
type CachedOffer struct {
	ClientID   string              `json:"clientId"`
	Generation int64               `json:"generation"`
	Verified   bool                `json:"verified"`
	Offer      amadeus.FlightOffer `json:"offer"`
}

// SelectedFare records the fare bundle the user picked. Confirmed marks the
// fare actually returned by the upstream price check, as opposed to a locally
// synthesized upsell tier.
type SelectedFare struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Confirmed bool   `json:"confirmed"`
}

// IDGenerator issues client offer identifiers. Snowflake IDs are unique within
// and across cache generations, so an identifier is never reused between two
// searches.
type IDGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewIDGenerator initializes the generator. nodeID must be unique per server
// instance (0-1023) to prevent collisions.
func NewIDGenerator(nodeID int64) (*IDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node: %w", err)
	}

	return &IDGenerator{node: node}, nil
}

// NextID returns a new opaque client identifier.
func (g *IDGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.node.Generate().Base58()
}

// Annotate assigns a fresh client identifier to every offer in original order,
// producing the envelopes for one cache generation.
func Annotate(ids *IDGenerator, generation int64, offers []amadeus.FlightOffer) []CachedOffer {
	cached := make([]CachedOffer, len(offers))
	for i, o := range offers {
		cached[i] = CachedOffer{
			ClientID:   ids.NextID(),
			Generation: generation,
			Offer:      o,
		}
	}

	return cached
}

// Clone deep-copies an upstream offer so submission-time price overrides never
// touch the cached original.
func Clone(o amadeus.FlightOffer) (amadeus.FlightOffer, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return amadeus.FlightOffer{}, fmt.Errorf("marshal offer: %w", err)
	}

	var copied amadeus.FlightOffer
	if err := json.Unmarshal(data, &copied); err != nil {
		return amadeus.FlightOffer{}, fmt.Errorf("unmarshal offer copy: %w", err)
	}

	return copied, nil
}

const segmentTimeLayout = "2006-01-02T15:04:05"

// IsExpired reports whether the offer's last-ticketing-date deadline,
// interpreted as end of that day in now's location, has already passed.
// Offers without a deadline never expire.
func IsExpired(o amadeus.FlightOffer, now time.Time) bool {
	if o.LastTicketingDate == "" {
		return false
	}

	day, err := time.ParseInLocation("2006-01-02", o.LastTicketingDate, now.Location())
	if err != nil {
		return false
	}

	endOfDay := day.Add(24*time.Hour - time.Second)

	return now.After(endOfDay)
}

// FilterExpired drops offers whose ticketing deadline has passed.
func FilterExpired(offers []amadeus.FlightOffer, now time.Time) []amadeus.FlightOffer {
	results := make([]amadeus.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if IsExpired(o, now) {
			continue
		}

		results = append(results, o)
	}

	return results
}

// firstSegment returns the first segment of the first itinerary.
func firstSegment(o amadeus.FlightOffer) (amadeus.Segment, bool) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return amadeus.Segment{}, false
	}

	return o.Itineraries[0].Segments[0], true
}

// lastSegment returns the last segment of the first itinerary.
func lastSegment(o amadeus.FlightOffer) (amadeus.Segment, bool) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return amadeus.Segment{}, false
	}

	segments := o.Itineraries[0].Segments

	return segments[len(segments)-1], true
}

// Stops counts the stops of the first itinerary.
func Stops(o amadeus.FlightOffer) int {
	if len(o.Itineraries) == 0 {
		return 0
	}

	n := len(o.Itineraries[0].Segments) - 1
	if n < 0 {
		return 0
	}

	return n
}

// CarrierCode returns the operating carrier of the first segment.
func CarrierCode(o amadeus.FlightOffer) string {
	seg, ok := firstSegment(o)
	if !ok {
		return ""
	}

	return seg.CarrierCode
}

// minutesOfDay extracts the time-of-day in minutes from a segment timestamp.
func minutesOfDay(at string) int {
	t, err := time.Parse(segmentTimeLayout, at)
	if err != nil {
		return 0
	}

	return t.Hour()*60 + t.Minute()
}
