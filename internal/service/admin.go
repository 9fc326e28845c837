package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

// AdminService builds the dashboard summary.
type AdminService interface {
	Stats(ctx context.Context) (*model.AdminStats, error)
}

type adminService struct {
	repo repository.StatsRepository
}

func NewAdminService(repo repository.StatsRepository) AdminService {
	return &adminService{repo: repo}
}

// Stats runs the five aggregations concurrently. The first failure cancels the
// rest. The figures are not read from a single snapshot.
func (s *adminService) Stats(ctx context.Context) (*model.AdminStats, error) {
	var out model.AdminStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.TotalUsers, err = s.repo.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalScholarships, err = s.repo.CountScholarships(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalApplications, err = s.repo.CountApplications(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalRevenue, err = s.repo.SumApplicationFees(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.ChartData, err = s.repo.ApplicationsByCategory(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.Internal(err)
	}
	if out.ChartData == nil {
		out.ChartData = []model.CategoryCount{}
	}
	return &out, nil
}
