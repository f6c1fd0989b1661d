package sqlite

import (
	"time"

	"github.com/zjrosen/reqdesk/internal/catalog"
)

// requestModel is one row of the requests table. Times are Unix millis.
type requestModel struct {
	ID           string
	Namespace    string
	Status       string
	CreatedAt    int64
	LastModified int64
}

func toRequestModel(r catalog.Record) requestModel {
	return requestModel{
		ID:           r.ID,
		Namespace:    r.Namespace,
		Status:       r.Status.String(),
		CreatedAt:    r.CreatedAt.UnixMilli(),
		LastModified: r.LastModified.UnixMilli(),
	}
}

func (m requestModel) toRecord() (catalog.Record, error) {
	status, err := catalog.ParseStatus(m.Status)
	if err != nil {
		return catalog.Record{}, err
	}
	return catalog.Record{
		ID:           m.ID,
		Namespace:    m.Namespace,
		Status:       status,
		CreatedAt:    time.UnixMilli(m.CreatedAt).UTC(),
		LastModified: time.UnixMilli(m.LastModified).UTC(),
	}, nil
}
