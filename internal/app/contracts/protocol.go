package contracts

import (
	"context"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
)

type ProtocolUsecase interface {
	EvaluateProtocol(ctx context.Context, request *requests.EvaluateProtocol) (*responses.ProtocolResult, error)
	ApplyProtocol(ctx context.Context, request *requests.ApplyProtocol) (*responses.AppliedProtocol, error)
	GetReference(ctx context.Context) *responses.ProtocolReference
}
