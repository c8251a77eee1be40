package entity_test

import (
	"testing"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestConfigPatch_Apply(t *testing.T) {
	base := entity.Config{Language: entity.LanguageRussian, Width: 800, Height: 600}

	got := entity.LanguagePatch(entity.LanguageEnglish).Apply(base)
	assert.Equal(t, entity.Config{Language: entity.LanguageEnglish, Width: 800, Height: 600}, got)

	got = entity.GeometryPatch(1024, 768).Apply(base)
	assert.Equal(t, entity.Config{Language: entity.LanguageRussian, Width: 1024, Height: 768}, got)
}

func TestConfigPatch_ApplyIgnoresInvalid(t *testing.T) {
	base := entity.Config{Language: entity.LanguageEnglish, Width: 800, Height: 600}

	assert.Equal(t, base, entity.GeometryPatch(0, -3).Apply(base))
	assert.Equal(t, base, entity.LanguagePatch("de").Apply(base))
}

func TestConfigPatch_Empty(t *testing.T) {
	assert.True(t, entity.ConfigPatch{}.Empty())
	assert.False(t, entity.LanguagePatch(entity.LanguageEnglish).Empty())
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, entity.LanguageEnglish, entity.ParseLanguage(" EN "))
	assert.Equal(t, entity.LanguageRussian, entity.ParseLanguage("ru"))
	assert.Equal(t, entity.DefaultLanguage, entity.ParseLanguage("fr"))
	assert.Equal(t, entity.DefaultLanguage, entity.ParseLanguage(""))
}

func TestLanguage_SpeechTag(t *testing.T) {
	assert.Equal(t, "en-US", entity.LanguageEnglish.SpeechTag())
	assert.Equal(t, "ru-RU", entity.LanguageRussian.SpeechTag())
}

func TestNewestFirst(t *testing.T) {
	got := entity.NewestFirst([]string{"a", "b", "a"})
	assert.Equal(t, []entity.HistoryEntry{
		{URL: "a", Index: 2},
		{URL: "b", Index: 1},
		{URL: "a", Index: 0},
	}, got)
	assert.Empty(t, entity.NewestFirst(nil))
}
