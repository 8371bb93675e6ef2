package lingora

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lingora/client-go/internal/api"
)

// Terminal and in-progress i18n job statuses reported by the API.
const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// CreateI18nJob uploads an i18n file and queues an asynchronous translation
// job into the given target languages. The file is sent as a multipart
// upload and must exist on disk.
func (c *Client) CreateI18nJob(ctx context.Context, filePath string, targetLangs []string, opts ...TranslateOption) (Result, error) {
	if filePath == "" {
		return nil, validationError("file path must not be empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return nil, &APIError{
			Kind:    KindValidation,
			Message: fmt.Sprintf("file not found: %s", filePath),
			Cause:   err,
		}
	}
	if len(targetLangs) == 0 {
		return nil, validationError("target languages must not be empty")
	}
	cfg := newTranslateConfig(opts)

	res, err := c.apiClient.CreateI18nJob(ctx, api.I18nJobParams{
		FilePath:        filePath,
		TargetLanguages: targetLangs,
		SourceLanguage:  cfg.source,
	})
	return res, wrapError(err)
}

// GetI18nJob returns the current state of a job, including its status and
// any produced artifacts.
func (c *Client) GetI18nJob(ctx context.Context, jobID string) (Result, error) {
	if jobID == "" {
		return nil, validationError("job ID must not be empty")
	}
	res, err := c.apiClient.GetI18nJob(ctx, jobID)
	return res, wrapError(err)
}

// ListI18nJobs returns a page of the account's i18n jobs. Page numbering
// starts at 1 with a default page size of 10.
func (c *Client) ListI18nJobs(ctx context.Context, opts ...ListOption) (Result, error) {
	cfg := &listConfig{
		page:     defaultPage,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.page < 1 {
		return nil, validationError(fmt.Sprintf("page must be >= 1, got %d", cfg.page))
	}
	if cfg.pageSize < 1 {
		return nil, validationError(fmt.Sprintf("page size must be >= 1, got %d", cfg.pageSize))
	}

	res, err := c.apiClient.ListI18nJobs(ctx, cfg.page, cfg.pageSize)
	return res, wrapError(err)
}

// WaitForI18nJob polls a job until its status is completed or failed, or
// the context is cancelled. The poll interval grows by the configured
// multiplier up to the maximum interval. The final job state is returned;
// a failed job is not an error here, callers inspect the status field.
func (c *Client) WaitForI18nJob(ctx context.Context, jobID string, opts ...JobWaitOption) (Result, error) {
	if jobID == "" {
		return nil, validationError("job ID must not be empty")
	}

	cfg := &jobWaitConfig{
		interval:    defaultJobPollInterval,
		maxInterval: defaultJobPollMaxInterval,
		multiplier:  defaultJobPollMultiplier,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.interval <= 0 {
		cfg.interval = defaultJobPollInterval
	}
	if cfg.maxInterval < cfg.interval {
		cfg.maxInterval = cfg.interval
	}
	if cfg.multiplier < 1 {
		cfg.multiplier = 1
	}

	// The zero-duration timer fires immediately so the first poll happens
	// without waiting a full interval.
	interval := cfg.interval
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		res, err := c.GetI18nJob(ctx, jobID)
		if err != nil {
			return nil, err
		}

		if status, _ := res["status"].(string); status == JobStatusCompleted || status == JobStatusFailed {
			return res, nil
		}

		timer.Reset(interval)
		interval = time.Duration(float64(interval) * cfg.multiplier)
		if interval > cfg.maxInterval {
			interval = cfg.maxInterval
		}
	}
}
