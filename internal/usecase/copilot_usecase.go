package usecase

import (
	"context"
	"strings"
	"time"

	"portal-api/internal/copilot"
	applog "portal-api/internal/logger"
	"portal-api/internal/telemetry"

	"go.uber.org/zap"
)

type CopilotAnswer struct {
	Response string `json:"response"`
}

type IndustryAnswer struct {
	Response  string             `json:"response"`
	Industry  string             `json:"industry"`
	Knowledge *copilot.Knowledge `json:"knowledge"`
	Timestamp string             `json:"timestamp"`
}

type CopilotUsecase interface {
	AskAI(ctx context.Context, query string) (CopilotAnswer, error)
	AskCloud(ctx context.Context, query string) (CopilotAnswer, error)
	AskIndustry(ctx context.Context, query, industry string) (IndustryAnswer, error)
}

type Copilot struct {
	lib    *copilot.Library
	logger *zap.Logger
	now    func() time.Time
}

func NewCopilotUsecase(lib *copilot.Library, logger *zap.Logger) *Copilot {
	logger = applog.OrNop(logger)
	return &Copilot{lib: lib, logger: logger, now: time.Now}
}

func (u *Copilot) AskAI(ctx context.Context, query string) (CopilotAnswer, error) {
	return u.ask(ctx, copilot.KindAI, query)
}

func (u *Copilot) AskCloud(ctx context.Context, query string) (CopilotAnswer, error) {
	return u.ask(ctx, copilot.KindCloud, query)
}

func (u *Copilot) ask(ctx context.Context, kind copilot.Kind, query string) (CopilotAnswer, error) {
	if strings.TrimSpace(query) == "" {
		return CopilotAnswer{}, ErrQueryRequired
	}
	book, ok := u.lib.Book(kind)
	if !ok {
		return CopilotAnswer{}, ErrInternal
	}

	_, span := telemetry.GetTracer(telemetry.ServiceName).Start(ctx, "copilot."+string(kind))
	defer span.End()

	topic, matched := book.Match(query)
	span.SetAttributes(telemetry.String("topic", topic.Name), telemetry.Bool("matched", matched))
	u.logger.Debug("[Copilot] answered",
		zap.String("kind", string(kind)), zap.String("topic", topic.Name), zap.Bool("matched", matched))

	return CopilotAnswer{Response: topic.Response}, nil
}

// AskIndustry answers from the industry book. An industry named by the
// caller takes precedence over one detected in the query text.
func (u *Copilot) AskIndustry(ctx context.Context, query, industry string) (IndustryAnswer, error) {
	if strings.TrimSpace(query) == "" {
		return IndustryAnswer{}, ErrQueryRequired
	}
	book, ok := u.lib.Book(copilot.KindIndustry)
	if !ok {
		return IndustryAnswer{}, ErrInternal
	}

	_, span := telemetry.GetTracer(telemetry.ServiceName).Start(ctx, "copilot.industry")
	defer span.End()

	topic, matched := book.ByIndustry(industry)
	if !matched {
		topic, matched = book.Match(query)
	}

	name := topic.Industry
	if !matched {
		name = copilot.NormalizeIndustry(industry)
	}
	if name == "" {
		name = copilot.GeneralIndustry
	}

	knowledge := topic.Knowledge
	if knowledge == nil {
		knowledge = book.Fallback.Knowledge
	}

	span.SetAttributes(telemetry.String("industry", name), telemetry.Bool("matched", matched))
	u.logger.Debug("[Copilot] answered",
		zap.String("kind", string(copilot.KindIndustry)), zap.String("industry", name), zap.Bool("matched", matched))

	return IndustryAnswer{
		Response:  topic.Response,
		Industry:  name,
		Knowledge: knowledge,
		Timestamp: u.now().UTC().Format(time.RFC3339),
	}, nil
}
