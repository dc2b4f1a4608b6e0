package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/service/ports"
	"github.com/google/uuid"
)

type MemberService struct {
	repo ports.MemberRepo
}

func NewMemberService(repo ports.MemberRepo) *MemberService {
	return &MemberService{repo: repo}
}

func (s *MemberService) Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error) {
	name := strings.TrimSpace(input.DisplayName)
	if name == "" {
		return nil, fmt.Errorf("%w: display_name is required", domain.ErrValidation)
	}

	member := &domain.Member{
		ID:             uuid.New().String(),
		DisplayName:    name,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.List(ctx)
}
