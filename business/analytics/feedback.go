package analytics

import (
	"sync"
	"time"

	"dineWise/domain"
)

// FeedbackLog keeps thumbs up/down submissions in process memory.
type FeedbackLog struct {
	mu      sync.Mutex
	records []domain.FeedbackRecord
}

func NewFeedbackLog() *FeedbackLog {
	return &FeedbackLog{}
}

func (l *FeedbackLog) Add(req domain.FeedbackRequest) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, domain.FeedbackRecord{
		RestaurantID:  req.RestaurantID,
		QueryLocation: req.QueryLocation,
		IsPositive:    req.IsPositive,
		Variant:       req.Variant,
		Timestamp:     time.Now(),
	})

	return len(l.records)
}

func (l *FeedbackLog) Records() []domain.FeedbackRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.FeedbackRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *FeedbackLog) Summary() domain.FeedbackSummary {
	records := l.Records()

	positive := 0
	for _, r := range records {
		if r.IsPositive {
			positive++
		}
	}

	summary := domain.FeedbackSummary{
		Total:    len(records),
		Positive: positive,
		Negative: len(records) - positive,
	}
	if summary.Total > 0 {
		summary.SatisfactionRate = round1(float64(positive) / float64(summary.Total) * 100)
	}

	return summary
}

func (l *FeedbackLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}
