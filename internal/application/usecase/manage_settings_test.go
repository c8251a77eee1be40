package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/qualzed/qb/internal/application/usecase"
	"github.com/qualzed/qb/internal/domain/entity"
	repomocks "github.com/qualzed/qb/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageSettingsUseCase_InitLoadsLanguage(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockConfigRepository(t)
	repo.EXPECT().Load(mock.Anything).
		Return(entity.Config{Language: entity.LanguageEnglish, Width: 1280, Height: 720}, nil).Once()

	uc := usecase.NewManageSettingsUseCase(repo)
	assert.Equal(t, entity.DefaultLanguage, uc.Language())

	cfg, err := uc.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, entity.LanguageEnglish, uc.Language())
}

func TestManageSettingsUseCase_ChangeLanguagePersistsThenNotifies(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockConfigRepository(t)

	var saved entity.ConfigPatch
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p entity.ConfigPatch) { saved = p }).
		Return(nil).Once()

	uc := usecase.NewManageSettingsUseCase(repo)

	var notified []entity.Language
	uc.Subscribe(func(l entity.Language) { notified = append(notified, l) })

	require.NoError(t, uc.ChangeLanguage(ctx, entity.LanguageEnglish))
	assert.Equal(t, entity.LanguageEnglish, uc.Language())
	assert.Equal(t, []entity.Language{entity.LanguageEnglish}, notified)
	require.NotNil(t, saved.Language)
	assert.Equal(t, entity.LanguageEnglish, *saved.Language)
	assert.Nil(t, saved.Width)
	assert.Nil(t, saved.Height)
}

func TestManageSettingsUseCase_ChangeLanguageRejectsUnsupported(t *testing.T) {
	repo := repomocks.NewMockConfigRepository(t)
	uc := usecase.NewManageSettingsUseCase(repo)

	err := uc.ChangeLanguage(testContext(), entity.Language("de"))
	require.ErrorIs(t, err, entity.ErrUnsupportedLanguage)
	assert.Equal(t, entity.DefaultLanguage, uc.Language())
}

func TestManageSettingsUseCase_ChangeLanguageSameIsNoop(t *testing.T) {
	repo := repomocks.NewMockConfigRepository(t)
	uc := usecase.NewManageSettingsUseCase(repo)

	called := false
	uc.Subscribe(func(entity.Language) { called = true })
	require.NoError(t, uc.ChangeLanguage(testContext(), entity.DefaultLanguage))
	assert.False(t, called)
}

func TestManageSettingsUseCase_ChangeLanguageSaveFailureKeepsState(t *testing.T) {
	repo := repomocks.NewMockConfigRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("read-only")).Once()
	uc := usecase.NewManageSettingsUseCase(repo)

	require.Error(t, uc.ChangeLanguage(testContext(), entity.LanguageEnglish))
	assert.Equal(t, entity.LanguageRussian, uc.Language())
}

func TestManageSettingsUseCase_Unsubscribe(t *testing.T) {
	repo := repomocks.NewMockConfigRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	uc := usecase.NewManageSettingsUseCase(repo)

	count := 0
	unsubscribe := uc.Subscribe(func(entity.Language) { count++ })
	unsubscribe()

	require.NoError(t, uc.ChangeLanguage(testContext(), entity.LanguageEnglish))
	assert.Zero(t, count)
}

func TestManageSettingsUseCase_SaveGeometry(t *testing.T) {
	repo := repomocks.NewMockConfigRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p entity.ConfigPatch) bool {
		return p.Language == nil && p.Width != nil && *p.Width == 1024 && p.Height != nil && *p.Height == 768
	})).Return(nil).Once()
	uc := usecase.NewManageSettingsUseCase(repo)

	require.NoError(t, uc.SaveGeometry(testContext(), 1024, 768))
	assert.Equal(t, 1024, uc.Config().Width)

	require.Error(t, uc.SaveGeometry(testContext(), 0, 768))
}
