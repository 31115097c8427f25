package verification

import (
	"context"
	"verifier/pkg/domain"
)

//go:generate mockgen -package mockverification -source=interface.go -destination=mock/mockverification.go *
type Service interface {
	VerifyEmail(ctx context.Context, email string) (*domain.EmailResult, error)
	EmailResults(ctx context.Context) (map[string]domain.EmailResult, error)
	EmailResult(ctx context.Context, email string) (*domain.EmailResult, error)
	UpdateEmailResult(ctx context.Context, email string, payload []byte) error
	DeleteEmailResult(ctx context.Context, email string) error
	CountDomain(ctx context.Context, domainName string) (*domain.DomainCount, error)
	DomainResults(ctx context.Context) (map[string]domain.DomainCount, error)
}
