package notify

import (
	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
)

// Service announces completed trades to an external channel. Delivery
// is best effort: settlement never fails because a notification did.
type Service interface {
	NotifySale(c ctx.Ctx, tx *domain.Transaction)
}

// NewNoop returns a Service that drops every notification. Used when
// no bot credentials are configured.
func NewNoop() Service {
	return &noopImpl{}
}

type noopImpl struct{}

func (im *noopImpl) NotifySale(c ctx.Ctx, tx *domain.Transaction) {}
