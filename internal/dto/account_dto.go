package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddAccountRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

type GetAccountRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
}

type AccountResponse struct {
	Id          uuid.UUID `json:"id"`
	ExternalUid string    `json:"external_uid"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}
