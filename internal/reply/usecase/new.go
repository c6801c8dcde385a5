package usecase

import (
	"time"

	"comment-srv/internal/comment"
	"comment-srv/internal/notification"
	"comment-srv/internal/onboarding"
	"comment-srv/internal/reply"
	"comment-srv/internal/reply/repository"
	"comment-srv/pkg/gemini"
	"comment-srv/pkg/log"
)

type Config struct {
	SubmitLockTTL time.Duration
}

type implUseCase struct {
	drafts         repository.DraftRepository
	repo           repository.PostgresRepository
	producer       reply.Producer
	commentUC      comment.UseCase
	notificationUC notification.UseCase
	onboardingUC   onboarding.UseCase
	selection      reply.SelectionReader
	llm            gemini.IGemini // nil disables personalised suggestions
	l              log.Logger
	cfg            Config
	now            func() time.Time
}

// New - Factory function
func New(
	drafts repository.DraftRepository,
	repo repository.PostgresRepository,
	producer reply.Producer,
	commentUC comment.UseCase,
	notificationUC notification.UseCase,
	onboardingUC onboarding.UseCase,
	selection reply.SelectionReader,
	llm gemini.IGemini,
	l log.Logger,
	cfg Config,
) reply.UseCase {
	if cfg.SubmitLockTTL <= 0 {
		cfg.SubmitLockTTL = reply.DefaultSubmitLockTTL
	}
	return &implUseCase{
		drafts:         drafts,
		repo:           repo,
		producer:       producer,
		commentUC:      commentUC,
		notificationUC: notificationUC,
		onboardingUC:   onboardingUC,
		selection:      selection,
		llm:            llm,
		l:              l,
		cfg:            cfg,
		now:            time.Now,
	}
}
