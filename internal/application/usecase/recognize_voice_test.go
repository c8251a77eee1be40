package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qualzed/qb/internal/application/port/mocks"
	"github.com/qualzed/qb/internal/application/usecase"
	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecognizeVoiceUseCase_UsesLanguageTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	recognizer := mocks.NewMockSpeechRecognizer(ctrl)
	recognizer.EXPECT().Recognize(gomock.Any(), "en-US").Return("  weather today ", nil)

	uc := usecase.NewRecognizeVoiceUseCase(recognizer, time.Second)
	text, err := uc.Execute(testContext(), entity.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "weather today", text)
}

func TestRecognizeVoiceUseCase_EmptyTranscript(t *testing.T) {
	ctrl := gomock.NewController(t)
	recognizer := mocks.NewMockSpeechRecognizer(ctrl)
	recognizer.EXPECT().Recognize(gomock.Any(), "ru-RU").Return("   ", nil)

	uc := usecase.NewRecognizeVoiceUseCase(recognizer, 0)
	_, err := uc.Execute(testContext(), entity.LanguageRussian)
	require.ErrorIs(t, err, usecase.ErrEmptyTranscript)
}

func TestRecognizeVoiceUseCase_WrapsRecognizerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	recognizer := mocks.NewMockSpeechRecognizer(ctrl)
	sentinel := errors.New("no microphone")
	recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return("", sentinel)

	uc := usecase.NewRecognizeVoiceUseCase(recognizer, time.Second)
	_, err := uc.Execute(testContext(), entity.LanguageRussian)
	require.ErrorIs(t, err, sentinel)
}

func TestRecognizeVoiceUseCase_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	recognizer := mocks.NewMockSpeechRecognizer(ctrl)
	recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	uc := usecase.NewRecognizeVoiceUseCase(recognizer, 20*time.Millisecond)
	_, err := uc.Execute(testContext(), entity.LanguageEnglish)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
