package usecase

import (
	"context"

	chatdto "campus-notice-backend/internal/chat/dto"
	"campus-notice-backend/pkg/apperr"
)

// Asker is the external answer backend. pkg/chat provides the HTTP
// implementation; tests plug in a stub.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

type ChatUsecase interface {
	Ask(ctx context.Context, question string) (*chatdto.ChatResponse, error)
}

type chatUsecase struct {
	asker Asker
}

func NewChatUsecase(asker Asker) ChatUsecase {
	return &chatUsecase{asker: asker}
}

func (u *chatUsecase) Ask(ctx context.Context, question string) (*chatdto.ChatResponse, error) {
	if question == "" {
		return nil, apperr.New(apperr.Validation, "question is required")
	}

	answer, err := u.asker.Ask(ctx, question)
	if err != nil {
		return nil, err
	}
	return parseAnswer(answer), nil
}
