package request

type DocumentUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

type ResolveCaseRequest struct {
	Action       string `json:"action" binding:"required,oneof=release refund split"`
	DocReference string `json:"doc_reference"`
}
