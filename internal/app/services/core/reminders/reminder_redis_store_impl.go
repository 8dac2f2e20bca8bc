package reminders

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// reminderRedisStore keeps jobs in a sorted set scored by fire time in unix seconds.
type reminderRedisStore struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewReminderRedisStore(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.ReminderStore {
	return &reminderRedisStore{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func (s *reminderRedisStore) Add(ctx context.Context, job *models.ReminderJob) error {
	member, err := json.Marshal(job)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.RedisRepository.SortedSetAdd(ctx, constvars.RedisKeyReminderScheduledZSet, float64(job.FireAt.Unix()), string(member))
}

// ClaimDue removes each due member before returning it. A member another
// worker removed first is skipped.
func (s *reminderRedisStore) ClaimDue(ctx context.Context, now time.Time, limit int) ([]models.ReminderJob, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	members, err := s.RedisRepository.SortedSetRangeByScore(ctx, constvars.RedisKeyReminderScheduledZSet, float64(now.Unix()), int64(limit))
	if err != nil {
		return nil, err
	}

	jobs := make([]models.ReminderJob, 0, len(members))
	for _, member := range members {
		removed, err := s.RedisRepository.SortedSetRemove(ctx, constvars.RedisKeyReminderScheduledZSet, member)
		if err != nil {
			return jobs, err
		}
		if !removed {
			continue
		}

		var job models.ReminderJob
		if err := json.Unmarshal([]byte(member), &job); err != nil {
			s.Log.Error("reminderRedisStore.ClaimDue dropping undecodable job",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
