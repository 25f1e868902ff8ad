package service

import (
	"context"
	"fmt"

	"employee-tracker/internal/domain"
	"employee-tracker/internal/model"
)

type RoleService struct {
	Repo domain.RoleRepo
}

func NewRoleService(repo domain.RoleRepo) *RoleService {
	return &RoleService{Repo: repo}
}

func (s *RoleService) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.Repo.GetAllRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *RoleService) GetRoleRows(ctx context.Context) ([]model.RoleRow, error) {
	rows, err := s.Repo.GetRoleRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("view roles: %w", err)
	}
	return rows, nil
}

func (s *RoleService) AddRole(ctx context.Context, r domain.NewRole) (int64, error) {
	id, err := s.Repo.AddRole(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("add role %q: %w", r.Title, err)
	}
	return id, nil
}
