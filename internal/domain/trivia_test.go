package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludeQuestions(t *testing.T) {
	questions := []*Question{{ID: 1}, {ID: 2}, {ID: 3}}

	t.Run("NoneSeen", func(t *testing.T) {
		assert.Len(t, ExcludeQuestions(questions, nil), 3)
	})

	t.Run("SomeSeen", func(t *testing.T) {
		remaining := ExcludeQuestions(questions, []int64{1, 2})
		assert.Len(t, remaining, 1)
		assert.Equal(t, int64(3), remaining[0].ID)
	})

	t.Run("AllSeen", func(t *testing.T) {
		assert.Empty(t, ExcludeQuestions(questions, []int64{3, 2, 1, 99}))
	})
}

func TestDomainError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("failed to load questions", cause)

	assert.Equal(t, "failed to load questions: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("service: %w", NewQuestionNotFoundError(7))
	assert.True(t, IsCode(wrapped, CodeQuestionNotFound))
	assert.False(t, IsCode(wrapped, CodeNoCategories))
	assert.False(t, IsCode(cause, CodeInternal))
}

func TestDomainError_MarshalJSON(t *testing.T) {
	data, err := NewMissingFieldError("answer").MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"code":"MISSING_FIELD","message":"missing required fields: [answer]"}`, string(data))
}
