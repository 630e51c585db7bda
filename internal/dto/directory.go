package dto

// CreatePracticeRequest defines the data needed to add a GP practice.
type CreatePracticeRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website" binding:"omitempty,url"`
	Notes   string `json:"notes"`
}

// UpdatePracticeRequest defines the practice fields that may be changed.
type UpdatePracticeRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Website *string `json:"website" binding:"omitempty,url"`
	Notes   *string `json:"notes"`
}

// CreateResourceRequest records a file already uploaded to object storage.
type CreateResourceRequest struct {
	Name        string `json:"name"` // Defaults to the file name without extension
	Type        string `json:"type"` // Defaults to the MIME subtype
	Category    string `json:"category" binding:"required"`
	FileURL     string `json:"fileUrl" binding:"omitempty,url"`
	FileName    string `json:"fileName" binding:"required"`
	FileSize    *int64 `json:"fileSize" binding:"omitempty,min=0"`
	FileType    string `json:"fileType"`
	StoragePath string `json:"storagePath"`
}

// UpdateResourceRequest defines the resource fields that may be changed.
type UpdateResourceRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Category *string `json:"category"`
}

// ResourceQuery filters the resource library.
type ResourceQuery struct {
	Category string `form:"category"`
}
