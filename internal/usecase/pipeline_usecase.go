package usecase

import (
	"context"
	"winnet_crm/internal/domain/pipeline"
	"winnet_crm/internal/usecase/interfaces"
)

type IPipelineUseCase interface {
	Board(ctx context.Context) ([]pipeline.Stage, error)
	Metrics(ctx context.Context) (pipeline.Metrics, error)
}

// PipelineUseCase rebuilds the funnel from the full quote set on every call.
type PipelineUseCase struct {
	quoteRepo  interfaces.IQuoteRepository
	clientRepo interfaces.IClientRepository
	saleRepo   interfaces.ISaleRepository
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(quoteRepo interfaces.IQuoteRepository, clientRepo interfaces.IClientRepository, saleRepo interfaces.ISaleRepository) *PipelineUseCase {
	return &PipelineUseCase{quoteRepo: quoteRepo, clientRepo: clientRepo, saleRepo: saleRepo}
}

func (u *PipelineUseCase) Board(ctx context.Context) ([]pipeline.Stage, error) {
	quotes, err := u.quoteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return pipeline.BuildBoard(quotes, names, nowFunc()), nil
}

func (u *PipelineUseCase) Metrics(ctx context.Context) (pipeline.Metrics, error) {
	board, err := u.Board(ctx)
	if err != nil {
		return pipeline.Metrics{}, err
	}
	since := pipeline.WindowStart(nowFunc())
	quotes, err := u.quoteRepo.ListCreatedSince(ctx, since)
	if err != nil {
		return pipeline.Metrics{}, err
	}
	sales, err := u.saleRepo.ListSince(ctx, since)
	if err != nil {
		return pipeline.Metrics{}, err
	}
	return pipeline.ComputeMetrics(board, quotes, sales), nil
}
