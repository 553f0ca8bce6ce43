package resource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/pkg/config"
	"github.com/noah-isme/hei-admin-console/pkg/envelope"
	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

// DocumentClient reads and uploads documents attached to entities.
type DocumentClient struct {
	client    *api.Client
	validator *validator.Validate
	upload    config.UploadConfig
}

// NewDocumentClient creates a document client. The upload config bounds file
// size and supplies the folder used when the caller leaves it blank.
func NewDocumentClient(client *api.Client, validate *validator.Validate, upload config.UploadConfig) *DocumentClient {
	if validate == nil {
		validate = validator.New()
	}
	return &DocumentClient{client: client, validator: validate, upload: upload}
}

// List returns documents matching the filter.
func (c *DocumentClient) List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "entity_type", filter.EntityType)
	setIf(values, "entity_id", filter.EntityID)
	setIf(values, "document_type", filter.DocumentType)
	setIf(values, "folder", filter.Folder)
	applyListQuery(values, filter.ListQuery)
	return list[models.Document](ctx, c.client, PathDocuments, values)
}

// Upload posts file bytes plus metadata as multipart/form-data and returns
// the stored document record. Files over the configured size limit are
// rejected before any request is sent.
func (c *DocumentClient) Upload(ctx context.Context, fileName string, file io.Reader, meta models.DocumentUpload) (*models.Document, error) {
	if meta.Folder == "" {
		meta.Folder = c.upload.DefaultFolder
	}
	if err := c.validator.Struct(meta); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid upload metadata")
	}

	if max := c.upload.MaxFileSizeBytes; max > 0 {
		var buf bytes.Buffer
		n, err := io.Copy(&buf, io.LimitReader(file, max+1))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "failed to read upload file")
		}
		if n > max {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("file exceeds the maximum upload size of %d bytes", max))
		}
		file = &buf
	}

	fields := []api.UploadField{
		{Name: "entity_type", Value: meta.EntityType},
		{Name: "entity_id", Value: meta.EntityID},
		{Name: "document_type", Value: meta.DocumentType},
		{Name: "description", Value: meta.Description},
		{Name: "folder", Value: meta.Folder},
	}
	body, err := c.client.Upload(ctx, PathDocuments, fileName, file, fields)
	if err != nil {
		return nil, err
	}

	var doc models.Document
	if err := envelope.DecodeInto(body, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
