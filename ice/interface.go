package ice

import (
	"avatar/types/api/response"
	"context"
)

// Fetcher retrieves the raw relay token.
//
//go:generate mockgen -destination=mock_ice.go -package=ice . Fetcher
type Fetcher interface {
	GetIceToken(ctx context.Context) (response.IceToken, error)
}

// Metrics records refresh failures.
type Metrics interface {
	IncrementCredentialFailures()
}
