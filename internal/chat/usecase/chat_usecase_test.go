package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-notice-backend/pkg/apperr"
)

type askerFunc func(ctx context.Context, question string) (string, error)

func (f askerFunc) Ask(ctx context.Context, question string) (string, error) {
	return f(ctx, question)
}

func TestChatAsk(t *testing.T) {
	var gotQuestion string
	uc := NewChatUsecase(askerFunc(func(_ context.Context, question string) (string, error) {
		gotQuestion = question
		return "장학금 신청은 3월 14일까지입니다.\n\n1. [💬 신청 서류는 무엇인가요?]\n", nil
	}))

	resp, err := uc.Ask(context.Background(), "장학금 신청 기간 알려줘")
	require.NoError(t, err)
	assert.Equal(t, "장학금 신청 기간 알려줘", gotQuestion)
	assert.Equal(t, "장학금 신청은 3월 14일까지입니다.", resp.MainAnswer)
	assert.Len(t, resp.SuggestedQuestions, 1)
}

func TestChatAskEmptyQuestion(t *testing.T) {
	uc := NewChatUsecase(askerFunc(func(context.Context, string) (string, error) {
		t.Fatal("asker should not be called")
		return "", nil
	}))

	_, err := uc.Ask(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestChatAskUpstreamError(t *testing.T) {
	upstream := apperr.New(apperr.Upstream, "chat service unavailable")
	uc := NewChatUsecase(askerFunc(func(context.Context, string) (string, error) {
		return "", upstream
	}))

	_, err := uc.Ask(context.Background(), "기숙사 비용")
	require.Error(t, err)
	assert.Equal(t, apperr.Upstream, apperr.KindOf(err))
}
