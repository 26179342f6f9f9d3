package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/store"
	"github.com/hance08/tailorbook/internal/validation"
)

type ClientService struct {
	repo store.ClientRepository
	l    *zap.Logger
}

func NewClientService(repo store.ClientRepository, l *zap.Logger) *ClientService {
	return &ClientService{repo: repo, l: l}
}

func (cs *ClientService) Create(ctx context.Context, session model.Session, name, phone string) (*model.Client, error) {
	if err := checkSession(session); err != nil {
		return nil, err
	}

	if err := validation.ValidateClientName(name); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)

	id, err := cs.repo.CreateClient(ctx, name, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}

	cs.l.Info("client created", zap.Int64("id", id), zap.String("operator", session.Operator))

	return cs.repo.GetClientByID(ctx, id)
}

func (cs *ClientService) List(ctx context.Context) ([]*model.Client, error) {
	return cs.repo.ListClients(ctx)
}

func (cs *ClientService) GetByName(ctx context.Context, name string) (*model.Client, error) {
	return cs.repo.GetClientByName(ctx, strings.TrimSpace(name))
}
