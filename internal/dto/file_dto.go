package dto

import "time"

type ListFilesRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
}

type FileSummaryResponse struct {
	Id        string    `json:"id"`
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

type ListFilesResponse struct {
	Files []*FileSummaryResponse `json:"files"`
}

type GetFilesByIdRequest struct {
	ExternalUid string   `json:"external_uid" validate:"required"`
	FileIds     []string `json:"file_ids" validate:"required,min=1"`
}

type FileDetailResponse struct {
	Id            string `json:"id"`
	Filename      string `json:"filename"`
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
	Url           string `json:"url"`
}

type GetFilesByIdResponse struct {
	Files []*FileDetailResponse `json:"files"`
}

type DeleteFileRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	FileId      string `json:"file_id" validate:"required"`
}

type UploadFilesResponse struct {
	Message string                 `json:"message"`
	Files   []*FileSummaryResponse `json:"files"`
}
