package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kalbaitzer/taskboard/internal/application/report"
)

const reportKey = "taskboard:report:performance"

// ReportCache stores the generated performance report in Redis for a
// short TTL so repeated manager requests don't rescan the ledger.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

func (c *ReportCache) Get(ctx context.Context) (*report.Report, error) {
	raw, err := c.client.Get(ctx, reportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var rep report.Report
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

func (c *ReportCache) Set(ctx context.Context, rep *report.Report) error {
	raw, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey, raw, c.ttl).Err()
}

var _ report.Cache = (*ReportCache)(nil)
