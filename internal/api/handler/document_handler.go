package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casetrack/case-management/internal/api/metrics"
	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
	"github.com/casetrack/case-management/internal/core/service"
)

// DocumentHandler handles document listing, upload, deletion, and the two
// streaming endpoints (download as attachment, content inline).
type DocumentHandler struct {
	service ports.DocumentService
	files   service.FileStore
}

func NewDocumentHandler(svc ports.DocumentService, files service.FileStore) *DocumentHandler {
	return &DocumentHandler{service: svc, files: files}
}

// ListByPerson handles GET /api/documents/person/:personId.
//
// @Summary      List a person's documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        personId  path     string  true  "Person id"
// @Success      200       {array}  domain.Document
// @Router       /api/documents/person/{personId} [get]
func (h *DocumentHandler) ListByPerson(c echo.Context) error {
	docs, err := h.service.ListByPerson(c.Request().Context(), c.Param("personId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Upload handles POST /api/documents/person/:personId (multipart form,
// field name "document").
//
// @Summary      Upload a document for a person
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        personId  path      string  true  "Person id"
// @Param        document  formData  file    true  "File (jpg/png/pdf/doc/docx, max 10 MiB)"
// @Success      201       {object}  domain.Document
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/documents/person/{personId} [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		metrics.DocumentUploadsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "document file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		metrics.DocumentUploadsTotal.WithLabelValues("failed").Inc()
		return err
	}
	defer src.Close()

	doc, err := h.service.Upload(c.Request().Context(), ports.UploadInput{
		PersonID:     c.Param("personId"),
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Content:      src,
	})
	if err != nil {
		result := "failed"
		if errors.Is(err, domain.ErrFileTooLarge) || errors.Is(err, domain.ErrUnsupportedFileType) {
			result = "rejected"
		}
		metrics.DocumentUploadsTotal.WithLabelValues(result).Inc()
		return err
	}

	metrics.DocumentUploadsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusCreated, doc)
}

// Delete handles DELETE /api/documents/:documentId.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        documentId  path      string  true  "Document id"
// @Success      200         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /api/documents/{documentId} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("documentId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "document deleted"})
}

// Download handles GET /api/documents/:documentId/download — streams the
// file as an attachment under its original name.
//
// @Summary      Download a document
// @Tags         documents
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        documentId  path  string  true  "Document id"
// @Success      200         {file}    file
// @Failure      404         {object}  map[string]string
// @Router       /api/documents/{documentId}/download [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	doc, path, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.Attachment(path, doc.OriginalName)
}

// Content handles GET /api/documents/:documentId/content — streams the file
// inline so browsers can render images and PDFs in place.
//
// @Summary      View a document inline
// @Tags         documents
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        documentId  path  string  true  "Document id"
// @Success      200         {file}    file
// @Failure      404         {object}  map[string]string
// @Router       /api/documents/{documentId}/content [get]
func (h *DocumentHandler) Content(c echo.Context) error {
	doc, path, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.Inline(path, doc.OriginalName)
}

func (h *DocumentHandler) resolve(c echo.Context) (*domain.Document, string, error) {
	doc, err := h.service.Get(c.Request().Context(), c.Param("documentId"))
	if err != nil {
		return nil, "", err
	}
	path, err := h.files.Path(doc.FileName)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}
