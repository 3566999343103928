package qa

import (
	"io"
	"log/slog"
	"time"
)

// AnswerEvent captures telemetry for one answered query.
type AnswerEvent struct {
	Intent       Intent
	KeywordCount int
	ChartID      string
	Fallback     bool
	Duration     time.Duration
}

// Observer receives answer events.
type Observer interface {
	ObserveAnswer(event AnswerEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveAnswer(AnswerEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes answer events to w as slog text records.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveAnswer(event AnswerEvent) {
	o.logger.Info("qa_answer",
		"intent", string(event.Intent),
		"keywords", event.KeywordCount,
		"chart", event.ChartID,
		"fallback", event.Fallback,
		"duration_us", event.Duration.Microseconds(),
	)
}
