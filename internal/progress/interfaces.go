package progress

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by a tier whose write budget cannot fit
// the record. The multi-tier store treats it as a degraded save, not a
// failure.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// ErrMalformedPayload is returned by Import when the payload does not
// decode into a structurally valid record. The stored record is left
// untouched.
var ErrMalformedPayload = errors.New("malformed progress payload")

// Tier is one storage layer of the multi-tier store. Load returns
// (nil, nil) when the tier holds no record.
type Tier interface {
	Name() string
	Load(ctx context.Context) (*Progress, error)
	Save(ctx context.Context, p *Progress) error
	Clear(ctx context.Context) error
}
