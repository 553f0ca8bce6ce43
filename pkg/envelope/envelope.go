// Package envelope decodes the uniform {success, data, error} wrapper used
// by every backend endpoint of the administrative API.
package envelope

import (
	"encoding/json"

	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

// Envelope mirrors the common response contract.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Pagination is the canonical pagination block. Endpoints disagree on field
// spellings (pages vs totalPages, total vs totalItems, limit vs size), so
// decoding tolerates every observed variant and normalises here, once.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type paginationWire struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	PageSizeAlt int `json:"pageSize"`
	Limit       int `json:"limit"`
	Size        int `json:"size"`
	Total       int `json:"total"`
	TotalItems  int `json:"totalItems"`
	TotalSnake  int `json:"total_items"`
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"totalPages"`
	PagesSnake  int `json:"total_pages"`
	Pages       int `json:"pages"`
}

// UnmarshalJSON normalises the pagination field spellings.
func (p *Pagination) UnmarshalJSON(data []byte) error {
	var w paginationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.Page = w.Page
	p.PageSize = firstPositive(w.PageSize, w.PageSizeAlt, w.Limit, w.Size)
	p.TotalItems = firstPositive(w.Total, w.TotalItems, w.TotalSnake, w.TotalCount)
	p.TotalPages = firstPositive(w.TotalPages, w.PagesSnake, w.Pages)
	if p.TotalPages == 0 && p.PageSize > 0 {
		p.TotalPages = (p.TotalItems + p.PageSize - 1) / p.PageSize
	}
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	return nil
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// ListData is the payload shape of paginated list endpoints.
type ListData[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Decode parses an envelope body and returns the data payload. A body that
// is not valid JSON maps to the generic network error; success:false
// surfaces the server-provided message verbatim when present.
func Decode(body []byte) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, appErrors.ErrNetwork.Message)
	}
	if !env.Success {
		if env.Error != "" {
			return nil, appErrors.Clone(appErrors.ErrServer, env.Error)
		}
		return nil, appErrors.Clone(appErrors.ErrServer, "")
	}
	return env.Data, nil
}

// DecodeInto parses an envelope body and unmarshals the data payload into out.
func DecodeInto(body []byte, out any) error {
	data, err := Decode(body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, appErrors.ErrNetwork.Message)
	}
	return nil
}

// DecodeList parses a paginated list envelope into items plus normalised
// pagination metadata.
func DecodeList[T any](body []byte) ([]T, Pagination, error) {
	var list ListData[T]
	if err := DecodeInto(body, &list); err != nil {
		return nil, Pagination{}, err
	}
	if list.Pagination.TotalPages < 1 {
		list.Pagination.TotalPages = 1
	}
	return list.Items, list.Pagination, nil
}
