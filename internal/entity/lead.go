package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Lead struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	ResponsibleUserID int64           `json:"responsible_user_id"`
	StatusID          int64           `json:"status_id"`
	PipelineID        int64           `json:"pipeline_id"`
	CreatedAt         int64           `json:"created_at"`
	UpdatedAt         int64           `json:"updated_at"`
}

func (l Lead) CreatedTime() time.Time {
	return time.Unix(l.CreatedAt, 0)
}

type LeadsPage struct {
	Embedded struct {
		Leads []Lead `json:"leads"`
	} `json:"_embedded"`

	// Raw is the response body as received.
	Raw json.RawMessage `json:"-"`
}

func (p LeadsPage) Leads() []Lead {
	return p.Embedded.Leads
}
