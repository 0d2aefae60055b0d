package dice

import "go.uber.org/zap"

// loggedRoller decorates a Roller, logging every roll at debug level
type loggedRoller struct {
	next   Roller
	logger *zap.Logger
}

// NewLoggedRoller wraps next so each roll is logged with its dice, bonus and total
func NewLoggedRoller(next Roller, logger *zap.Logger) Roller {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &loggedRoller{
		next:   next,
		logger: logger,
	}
}

// Roll implements Roller.Roll
func (r *loggedRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	result, err := r.next.Roll(count, sides, bonus)
	if err != nil {
		r.logger.Warn("dice roll failed",
			zap.Int("count", count),
			zap.Int("sides", sides),
			zap.Error(err),
		)
		return nil, err
	}

	r.logger.Debug("dice roll",
		zap.Int("count", count),
		zap.Int("sides", sides),
		zap.Ints("rolls", result.Rolls),
		zap.Int("bonus", bonus),
		zap.Int("total", result.Total),
	)
	return result, nil
}
