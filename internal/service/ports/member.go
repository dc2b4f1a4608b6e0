package ports

import (
	"context"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}
