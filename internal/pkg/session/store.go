// Package session is the durable per-user booking session store. Everything
// the browser flow needs across navigations lives here under one namespace
// per session: the current offer cache generation, the selected fare, the
// traveler drafts, the seat map and the orders created so far.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
	"github.com/tripway/flight-booking-service/internal/pkg/offer"
)

// ErrNotFound marks a key absent from the session, including sessions expired
// by TTL.
var ErrNotFound = errors.New("not found in session")

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Store reads and writes session state. All state shares the session TTL so
// an abandoned booking flow disappears as one unit.
type Store struct {
	redis RedisClient
	ttl   time.Duration
}

func NewStore(redis RedisClient, ttl time.Duration) *Store {
	return &Store{
		redis: redis,
		ttl:   ttl,
	}
}

func (s *Store) key(sessionID, suffix string) string {
	return fmt.Sprintf("booking:session:%s:%s", sessionID, suffix)
}

// NextGeneration increments the session's offer cache generation counter.
func (s *Store) NextGeneration(ctx context.Context, sessionID string) (int64, error) {
	key := s.key(sessionID, "generation")

	generation, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("increment generation: %w", err)
	}

	if err := s.redis.Expire(ctx, key, s.ttl).Err(); err != nil {
		return 0, fmt.Errorf("expire generation: %w", err)
	}

	return generation, nil
}

// ReplaceOffers swaps in a new cache generation wholesale and clears the
// downstream flow state that belonged to the previous one.
func (s *Store) ReplaceOffers(ctx context.Context, sessionID string, offers []offer.CachedOffer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("marshal offers: %w", err)
	}

	if err := s.redis.Set(ctx, s.key(sessionID, "offers"), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set offers: %w", err)
	}

	return s.clearFlowState(ctx, sessionID)
}

// ClearOffers drops the cache, leaving no stale generation behind after a
// failed search.
func (s *Store) ClearOffers(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, s.key(sessionID, "offers")).Err(); err != nil {
		return fmt.Errorf("clear offers: %w", err)
	}

	return s.clearFlowState(ctx, sessionID)
}

func (s *Store) clearFlowState(ctx context.Context, sessionID string) error {
	err := s.redis.Del(ctx,
		s.key(sessionID, "fare"),
		s.key(sessionID, "travelers"),
		s.key(sessionID, "seats"),
	).Err()
	if err != nil {
		return fmt.Errorf("clear flow state: %w", err)
	}

	return nil
}

// Offers returns the current cache generation in its original order.
func (s *Store) Offers(ctx context.Context, sessionID string) ([]offer.CachedOffer, error) {
	var offers []offer.CachedOffer
	if err := s.get(ctx, s.key(sessionID, "offers"), &offers); err != nil {
		return nil, err
	}

	return offers, nil
}

// OfferByClientID resolves one offer from the live generation. Pure cache
// read, never touches the network.
func (s *Store) OfferByClientID(ctx context.Context, sessionID, clientID string) (offer.CachedOffer, error) {
	offers, err := s.Offers(ctx, sessionID)
	if err != nil {
		return offer.CachedOffer{}, err
	}

	for _, o := range offers {
		if o.ClientID == clientID {
			return o, nil
		}
	}

	return offer.CachedOffer{}, ErrNotFound
}

// PutOffer replaces a single cached offer in place, keeping list order. Used
// to swap in the price-verified version of an offer.
func (s *Store) PutOffer(ctx context.Context, sessionID string, updated offer.CachedOffer) error {
	offers, err := s.Offers(ctx, sessionID)
	if err != nil {
		return err
	}

	found := false
	for i, o := range offers {
		if o.ClientID == updated.ClientID {
			offers[i] = updated
			found = true
			break
		}
	}

	if !found {
		return ErrNotFound
	}

	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("marshal offers: %w", err)
	}

	if err := s.redis.Set(ctx, s.key(sessionID, "offers"), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set offers: %w", err)
	}

	return nil
}

func (s *Store) SetSelectedFare(ctx context.Context, sessionID string, fare offer.SelectedFare) error {
	return s.set(ctx, s.key(sessionID, "fare"), fare)
}

func (s *Store) SelectedFare(ctx context.Context, sessionID string) (offer.SelectedFare, error) {
	var fare offer.SelectedFare
	if err := s.get(ctx, s.key(sessionID, "fare"), &fare); err != nil {
		return offer.SelectedFare{}, err
	}

	return fare, nil
}

func (s *Store) SetTravelers(ctx context.Context, sessionID string, travelers []amadeus.Traveler) error {
	return s.set(ctx, s.key(sessionID, "travelers"), travelers)
}

func (s *Store) Travelers(ctx context.Context, sessionID string) ([]amadeus.Traveler, error) {
	var travelers []amadeus.Traveler
	if err := s.get(ctx, s.key(sessionID, "travelers"), &travelers); err != nil {
		return nil, err
	}

	return travelers, nil
}

// SetSeats replaces the seat map wholesale, keyed by traveler id.
func (s *Store) SetSeats(ctx context.Context, sessionID string, seats map[string]string) error {
	return s.set(ctx, s.key(sessionID, "seats"), seats)
}

func (s *Store) Seats(ctx context.Context, sessionID string) (map[string]string, error) {
	var seats map[string]string

	err := s.get(ctx, s.key(sessionID, "seats"), &seats)
	if errors.Is(err, ErrNotFound) {
		return map[string]string{}, nil
	}

	if err != nil {
		return nil, err
	}

	return seats, nil
}

// PutOrder stores a confirmed order by its booking reference and marks it as
// the session's most recent order for the retrieval fast path.
func (s *Store) PutOrder(ctx context.Context, sessionID, reference string, result amadeus.OrderResult) error {
	if err := s.set(ctx, s.key(sessionID, "order:"+reference), result); err != nil {
		return err
	}

	return s.set(ctx, s.key(sessionID, "order:last"), result)
}

func (s *Store) OrderByReference(ctx context.Context, sessionID, reference string) (amadeus.OrderResult, error) {
	var result amadeus.OrderResult
	if err := s.get(ctx, s.key(sessionID, "order:"+reference), &result); err != nil {
		return amadeus.OrderResult{}, err
	}

	return result, nil
}

func (s *Store) LastOrder(ctx context.Context, sessionID string) (amadeus.OrderResult, error) {
	var result amadeus.OrderResult
	if err := s.get(ctx, s.key(sessionID, "order:last"), &result); err != nil {
		return amadeus.OrderResult{}, err
	}

	return result, nil
}

// AcquireSubmitLock guards against double submission of the same booking
// while a request is outstanding.
func (s *Store) AcquireSubmitLock(ctx context.Context, sessionID string, timeout time.Duration) (bool, error) {
	return s.redis.SetNX(ctx, s.key(sessionID, "submit"), "1", timeout).Result()
}

func (s *Store) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, s.key(sessionID, "submit")).Err()
}

func (s *Store) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (s *Store) get(ctx context.Context, key string, out interface{}) error {
	data, err := s.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}

	return nil
}
