package presentation

import (
	"time"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/namespace"
)

// RequestDTO represents one catalog record for presentation
type RequestDTO struct {
	ID           string    `json:"id" yaml:"id"`
	Status       string    `json:"status" yaml:"status"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

// PageDTO represents one page of a namespace's requests
type PageDTO struct {
	Namespace  string       `json:"namespace" yaml:"namespace"`
	Page       int          `json:"page" yaml:"page"`
	TotalPages int          `json:"total_pages" yaml:"total_pages"`
	Total      int          `json:"total" yaml:"total"`
	Requests   []RequestDTO `json:"requests" yaml:"requests"`
}

// NamespaceDTO represents a registered namespace
type NamespaceDTO struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Default bool   `json:"default" yaml:"default"`
}

// FromRecord converts a catalog record to a DTO
func FromRecord(r catalog.Record) RequestDTO {
	return RequestDTO{
		ID:           r.ID,
		Status:       r.Status.String(),
		CreatedAt:    r.CreatedAt.UTC(),
		LastModified: r.LastModified.UTC(),
	}
}

// FromPage converts a catalog page to a DTO. Requests is never nil so empty
// pages encode as [] rather than null.
func FromPage(namespaceID string, p catalog.Page[catalog.Record]) PageDTO {
	reqs := make([]RequestDTO, len(p.Items))
	for i, r := range p.Items {
		reqs[i] = FromRecord(r)
	}
	return PageDTO{
		Namespace:  namespaceID,
		Page:       p.Page,
		TotalPages: p.TotalPages,
		Total:      p.Total,
		Requests:   reqs,
	}
}

// FromNamespaces converts the registry listing, marking defaultID.
func FromNamespaces(list []namespace.Namespace, defaultID string) []NamespaceDTO {
	dtos := make([]NamespaceDTO, len(list))
	for i, ns := range list {
		dtos[i] = NamespaceDTO{ID: ns.ID, Name: ns.Name, Default: ns.ID == defaultID}
	}
	return dtos
}
