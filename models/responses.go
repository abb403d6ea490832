// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIResponse is the envelope wrapping every JSON body the API returns.
//
// All three keys are always serialized; absent values are null. A
// successful response carries Data (and Meta for paginated lists); a failed
// one carries Error. The type does not enforce that only one of Data and
// Error is set; use OK, OKWithMeta and Fail to build the conventional
// shapes.
type APIResponse[T any] struct {
	Data  T               `json:"data"`
	Error *string         `json:"error"`
	Meta  *PaginationMeta `json:"meta"`
}

// PaginationMeta describes one page of a paginated list.
type PaginationMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta returns metadata whose TotalPages is total divided by
// perPage, rounded up. A non-positive perPage yields zero pages.
func NewPaginationMeta(total, page, perPage int) PaginationMeta {
	meta := PaginationMeta{
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
	if perPage > 0 && total > 0 {
		meta.TotalPages = (total + perPage - 1) / perPage
	}

	return meta
}

// OK wraps data in a success envelope.
func OK[T any](data T) APIResponse[T] {
	return APIResponse[T]{Data: data}
}

// OKWithMeta wraps one page of data together with its pagination metadata.
func OKWithMeta[T any](data T, meta PaginationMeta) APIResponse[T] {
	return APIResponse[T]{Data: data, Meta: &meta}
}

// Fail returns an error envelope with null data.
func Fail(detail string) APIResponse[any] {
	return APIResponse[any]{Error: &detail}
}
