package usecase

import (
	"comment-srv/internal/comment"
	"comment-srv/internal/dashboard"
	"comment-srv/internal/dashboard/repository"
	"comment-srv/internal/reply"
	"comment-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.Repository
	commentUC comment.UseCase
	replyUC   reply.UseCase
	l         log.Logger
}

// New - Factory function
func New(repo repository.Repository, commentUC comment.UseCase, replyUC reply.UseCase, l log.Logger) dashboard.UseCase {
	return &implUseCase{
		repo:      repo,
		commentUC: commentUC,
		replyUC:   replyUC,
		l:         l,
	}
}
