package usecase

import (
	"time"

	"comment-srv/internal/onboarding"
	"comment-srv/internal/onboarding/repository"
	"comment-srv/pkg/encrypter"
	"comment-srv/pkg/log"
	"comment-srv/pkg/minio"
)

// Config holds avatar storage settings.
type Config struct {
	AvatarBucket string
}

type implUseCase struct {
	repo      repository.PostgresRepository
	minio     minio.MinIO
	encrypter encrypter.Encrypter
	l         log.Logger
	cfg       Config
	now       func() time.Time
}

// New - Factory
func New(
	repo repository.PostgresRepository,
	minioClient minio.MinIO,
	enc encrypter.Encrypter,
	l log.Logger,
	cfg Config,
) onboarding.UseCase {
	if cfg.AvatarBucket == "" {
		cfg.AvatarBucket = onboarding.DefaultAvatarBucket
	}
	return &implUseCase{
		repo:      repo,
		minio:     minioClient,
		encrypter: enc,
		l:         l,
		cfg:       cfg,
		now:       time.Now,
	}
}
