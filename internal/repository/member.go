package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (id, display_name, telegram_chat_id, created_at)
 			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, m.ID, m.DisplayName, m.TelegramChatID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}

	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT id, display_name, telegram_chat_id, created_at
    		  FROM members
    		  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	var m domain.Member
	if err = row.Scan(&m.ID, &m.DisplayName, &m.TelegramChatID, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}

	return &m, nil
}

// GetByIDs skips ids that have no member row.
func (r *MemberRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Member, error) {
	res := make(map[string]*domain.Member, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	query := `SELECT id, display_name, telegram_chat_id, created_at
			  FROM members
			  WHERE id = ANY($1::uuid[])`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("get members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.Member
		if err = rows.Scan(&m.ID, &m.DisplayName, &m.TelegramChatID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res[m.ID] = &m
	}

	return res, rows.Err()
}

func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	query := `SELECT id, display_name, telegram_chat_id, created_at
			  FROM members
			  ORDER BY display_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.Member
	for rows.Next() {
		var m domain.Member
		if err = rows.Scan(&m.ID, &m.DisplayName, &m.TelegramChatID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}
