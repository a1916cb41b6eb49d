package feed

import (
	"context"
	"time"

	"github.com/go-kit/log"

	"github.com/monet-go/monet"
)

// loggingService decorates a feed.Service with logging.
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService returns a new logging Service.
func NewLoggingService(logger log.Logger, next Service) Service {
	return &loggingService{
		next:   next,
		logger: logger,
	}
}

func (s *loggingService) Rates(ctx context.Context) (table *monet.Rates, err error) {
	defer func(begin time.Time) {
		currencies := 0
		if table != nil {
			currencies = table.Len()
		}
		s.logger.Log(
			"method", "rates",
			"currencies", currencies,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates(ctx)
}
