package bookings

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type bookingIntentRedisRepository struct {
	RedisRepository contracts.RedisRepository
}

func NewBookingIntentRedisRepository(redisRepository contracts.RedisRepository) contracts.BookingIntentRepository {
	return &bookingIntentRedisRepository{
		RedisRepository: redisRepository,
	}
}

func (repo *bookingIntentRedisRepository) Save(ctx context.Context, intent *models.BookingIntent, ttl time.Duration) error {
	return repo.RedisRepository.Set(ctx, bookingIntentKey(intent.OrderID), intent, ttl)
}

// FindByOrderID returns nil without error when the intent expired or never existed.
func (repo *bookingIntentRedisRepository) FindByOrderID(ctx context.Context, orderID string) (*models.BookingIntent, error) {
	raw, err := repo.RedisRepository.Get(ctx, bookingIntentKey(orderID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var intent models.BookingIntent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &intent, nil
}

func bookingIntentKey(orderID string) string {
	return fmt.Sprintf(constvars.RedisKeyBookingIntentFormat, orderID)
}
