package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/onboarding"
	"comment-srv/internal/onboarding/repository"
	"comment-srv/internal/onboarding/repository/mocks"
	"comment-srv/pkg/encrypter"
	"comment-srv/pkg/log"
	"comment-srv/pkg/minio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

var sc = model.Scope{UserID: "u-1"}

type fakeStorage struct {
	minio.MinIO
	uploaded []*minio.UploadRequest
	deleted  []string
	err      error
}

func (f *fakeStorage) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	f.uploaded = append(f.uploaded, req)
	if f.err != nil {
		return nil, f.err
	}
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName}, nil
}

func (f *fakeStorage) PresignGet(_ context.Context, _, objectName string, expiry time.Duration) (*minio.PresignedURL, error) {
	return &minio.PresignedURL{URL: "https://cdn.local/" + objectName, ExpiresAt: time.Now().Add(expiry)}, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, _, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	return nil
}

func initUseCase(t *testing.T) (*implUseCase, *mocks.PostgresRepository, *fakeStorage) {
	repo := mocks.NewPostgresRepository(t)
	storage := &fakeStorage{}
	uc := New(repo, storage, encrypter.New(testKey), log.NewNop(), Config{}).(*implUseCase)
	return uc, repo, storage
}

func profileAt(step model.OnboardingStep) model.Profile {
	p := newProfile("u-1")
	p.Name = "Ana"
	p.Step = step
	return p
}

func TestGetProgressNewUser(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := initUseCase(t)
	repo.On("GetProfile", ctx, "u-1").Return(model.Profile{}, repository.ErrNotFound)
	repo.On("ListConnections", ctx, "u-1").Return([]model.PlatformConnection{}, nil)

	got, err := uc.GetProgress(ctx, sc)
	require.NoError(t, err)
	assert.Equal(t, model.StepProfileSetup, got.Step)
	assert.Equal(t, model.ToneFriendly, got.Profile.Tone)
	assert.Equal(t, model.ActionBiasEngage, got.Profile.ActionBias)
	assert.Len(t, got.Connections, len(model.Platforms))
	assert.Zero(t, got.ConnectedCount())
}

func TestSaveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("advances from profile setup with defaults", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		repo.On("GetProfile", ctx, "u-1").Return(model.Profile{}, repository.ErrNotFound)
		repo.On("UpsertProfile", ctx, mock.MatchedBy(func(p model.Profile) bool {
			return p.Name == "Ana" && p.Tone == model.ToneFriendly && p.ActionBias == model.ActionBiasEngage &&
				p.Step == model.StepPlatformConnect
		})).Return(profileAt(model.StepPlatformConnect), nil)
		repo.On("ListConnections", ctx, "u-1").Return(nil, nil)

		got, err := uc.SaveProfile(ctx, sc, onboarding.SaveProfileInput{Name: "  Ana "})
		require.NoError(t, err)
		assert.Equal(t, model.StepPlatformConnect, got.Step)
	})

	t.Run("later saves keep the step", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		repo.On("GetProfile", ctx, "u-1").Return(profileAt(model.StepDashboard), nil)
		repo.On("UpsertProfile", ctx, mock.MatchedBy(func(p model.Profile) bool {
			return p.Step == model.StepDashboard && p.Tone == model.ToneWitty
		})).Return(profileAt(model.StepDashboard), nil)
		repo.On("ListConnections", ctx, "u-1").Return(nil, nil)

		_, err := uc.SaveProfile(ctx, sc, onboarding.SaveProfileInput{Name: "Ana", Tone: model.ToneWitty})
		require.NoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		uc, _, _ := initUseCase(t)
		_, err := uc.SaveProfile(ctx, sc, onboarding.SaveProfileInput{Name: "   "})
		assert.ErrorIs(t, err, onboarding.ErrNameRequired)
		_, err = uc.SaveProfile(ctx, sc, onboarding.SaveProfileInput{Name: "Ana", Tone: "sarcastic"})
		assert.ErrorIs(t, err, onboarding.ErrInvalidTone)
		_, err = uc.SaveProfile(ctx, sc, onboarding.SaveProfileInput{Name: "Ana", ActionBias: "ignore"})
		assert.ErrorIs(t, err, onboarding.ErrInvalidActionBias)
	})
}

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("stores object and replaces previous", func(t *testing.T) {
		uc, repo, storage := initUseCase(t)
		old := profileAt(model.StepPlatformConnect)
		old.Avatar = "avatars/u-1/old.png"
		repo.On("GetProfile", ctx, "u-1").Return(old, nil)
		repo.On("UpsertProfile", ctx, mock.MatchedBy(func(p model.Profile) bool {
			return strings.HasPrefix(p.Avatar, "avatars/u-1/") && strings.HasSuffix(p.Avatar, ".png")
		})).Return(func() model.Profile { p := old; p.Avatar = "avatars/u-1/new.png"; return p }(), nil)
		repo.On("ListConnections", ctx, "u-1").Return(nil, nil)

		got, err := uc.UploadAvatar(ctx, sc, onboarding.UploadAvatarInput{
			Filename: "../me.png", ContentType: "image/png", Size: 4, Reader: strings.NewReader("\x89PNG"),
		})
		require.NoError(t, err)
		require.Len(t, storage.uploaded, 1)
		assert.Equal(t, onboarding.DefaultAvatarBucket, storage.uploaded[0].BucketName)
		assert.Equal(t, "me.png", storage.uploaded[0].OriginalName)
		assert.Equal(t, []string{"avatars/u-1/old.png"}, storage.deleted)
		assert.Equal(t, "https://cdn.local/avatars/u-1/new.png", got.AvatarURL)
	})

	t.Run("rejects non-images", func(t *testing.T) {
		uc, _, _ := initUseCase(t)
		_, err := uc.UploadAvatar(ctx, sc, onboarding.UploadAvatarInput{
			ContentType: "application/pdf", Size: 10, Reader: strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, onboarding.ErrInvalidAvatar)
	})

	t.Run("storage failure", func(t *testing.T) {
		uc, _, storage := initUseCase(t)
		storage.err = errors.New("bucket gone")
		_, err := uc.UploadAvatar(ctx, sc, onboarding.UploadAvatarInput{
			ContentType: "image/jpeg", Size: 1, Reader: strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, onboarding.ErrStorageFailed)
	})
}

func TestTogglePlatform(t *testing.T) {
	ctx := context.Background()

	t.Run("connect encrypts token", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		uc.now = func() time.Time { return time.Unix(100, 0) }
		repo.On("GetProfile", ctx, "u-1").Return(profileAt(model.StepPlatformConnect), nil)
		repo.On("ListConnections", ctx, "u-1").Return(nil, nil)

		var stored model.PlatformConnection
		repo.On("SetConnection", ctx, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(1).(model.PlatformConnection)
		}).Return(nil)

		_, err := uc.TogglePlatform(ctx, sc, onboarding.TogglePlatformInput{Platform: model.PlatformYouTube, AccessToken: "ya29.secret"})
		require.NoError(t, err)
		assert.True(t, stored.Connected)
		require.NotNil(t, stored.ConnectedAt)
		assert.NotEqual(t, "ya29.secret", stored.AccessToken)

		plain, err := encrypter.New(testKey).Decrypt(stored.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "ya29.secret", plain)
	})

	t.Run("disconnect clears token", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		now := time.Now()
		repo.On("GetProfile", ctx, "u-1").Return(profileAt(model.StepPlatformConnect), nil)
		repo.On("ListConnections", ctx, "u-1").Return([]model.PlatformConnection{
			{UserID: "u-1", Platform: model.PlatformYouTube, Connected: true, AccessToken: "enc", ConnectedAt: &now},
		}, nil)
		repo.On("SetConnection", ctx, model.PlatformConnection{UserID: "u-1", Platform: model.PlatformYouTube}).Return(nil)

		_, err := uc.TogglePlatform(ctx, sc, onboarding.TogglePlatformInput{Platform: model.PlatformYouTube})
		require.NoError(t, err)
	})

	t.Run("unknown platform", func(t *testing.T) {
		uc, _, _ := initUseCase(t)
		_, err := uc.TogglePlatform(ctx, sc, onboarding.TogglePlatformInput{Platform: "myspace"})
		assert.ErrorIs(t, err, onboarding.ErrInvalidPlatform)
	})

	t.Run("before profile setup", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		repo.On("GetProfile", ctx, "u-1").Return(model.Profile{}, repository.ErrNotFound)
		_, err := uc.TogglePlatform(ctx, sc, onboarding.TogglePlatformInput{Platform: model.PlatformYouTube})
		assert.ErrorIs(t, err, onboarding.ErrProfileIncomplete)
	})
}

func TestContinue(t *testing.T) {
	ctx := context.Background()

	t.Run("needs a connected platform", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		repo.On("GetProfile", ctx, "u-1").Return(profileAt(model.StepPlatformConnect), nil)
		repo.On("ListConnections", ctx, "u-1").Return(nil, nil)

		_, err := uc.Continue(ctx, sc)
		assert.ErrorIs(t, err, onboarding.ErrNoPlatformConnected)
	})

	t.Run("advances to dashboard", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		repo.On("GetProfile", ctx, "u-1").Return(profileAt(model.StepPlatformConnect), nil)
		repo.On("ListConnections", ctx, "u-1").Return([]model.PlatformConnection{
			{UserID: "u-1", Platform: model.PlatformTikTok, Connected: true},
		}, nil)
		repo.On("UpsertProfile", ctx, mock.MatchedBy(func(p model.Profile) bool {
			return p.Step == model.StepDashboard
		})).Return(profileAt(model.StepDashboard), nil)

		got, err := uc.Continue(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.StepDashboard, got.Step)
	})

	t.Run("idempotent at dashboard", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		repo.On("GetProfile", ctx, "u-1").Return(profileAt(model.StepDashboard), nil)
		repo.On("ListConnections", ctx, "u-1").Return(nil, nil)

		got, err := uc.Continue(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.StepDashboard, got.Step)
	})

	t.Run("profile incomplete", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		repo.On("GetProfile", ctx, "u-1").Return(profileAt(model.StepProfileSetup), nil)

		_, err := uc.Continue(ctx, sc)
		assert.ErrorIs(t, err, onboarding.ErrProfileIncomplete)
	})
}
