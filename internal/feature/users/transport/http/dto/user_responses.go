package dto

import (
	authdto "account_backend/internal/feature/auth/transport/http/dto"
)

// ListMeta carries the pagination metadata of a user listing.
type ListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// UserListResponse is the response body for GET /users: the page of
// profiles plus the pagination metadata.
type UserListResponse struct {
	Payload []authdto.UserProfile `json:"payload"`
	Meta    ListMeta              `json:"meta"`
}

// NewUserListResponse assembles the envelope. TotalPages rounds up so a
// partially filled last page still counts.
func NewUserListResponse(payload []authdto.UserProfile, page, limit int, total int64) UserListResponse {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return UserListResponse{
		Payload: payload,
		Meta: ListMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
