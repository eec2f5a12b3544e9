package handlers

import (
	"fmt"
	"io"
	"log"

	"estatedesk-backend/internal/auth"
	"estatedesk-backend/internal/libraries"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	repo    repo.DocumentRepoInterface
	clients *libraries.Clients
}

func NewDocumentHandler(repo repo.DocumentRepoInterface, clients *libraries.Clients) *DocumentHandler {
	return &DocumentHandler{
		repo:    repo,
		clients: clients,
	}
}

// function to get documents for a project
func (h *DocumentHandler) GetDocumentsByProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}

	docs, err := h.repo.GetDocumentsByProject(projectID)
	if err != nil {
		log.Println(err, "Error getting documents")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get documents",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"documents": docs,
	})
}

// Upload stores each file in the documents bucket, pushes it to the Gemini
// file store, and records a document row carrying the provider file URI.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	if _, ok := auth.CallerID(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid form data",
		})
	}

	projectValues := form.Value["projectId"]
	if len(projectValues) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing projectId",
		})
	}
	projectID, err := uuid.Parse(projectValues[0])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}

	docType := models.DocumentTypeOther
	if typeValues := form.Value["type"]; len(typeValues) > 0 {
		switch models.DocumentType(typeValues[0]) {
		case models.DocumentTypeLegal, models.DocumentTypeMarketing, models.DocumentTypeTechnical:
			docType = models.DocumentType(typeValues[0])
		}
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files to upload",
		})
	}

	uploaded := []models.Document{}
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			log.Println(err, "Error opening uploaded file")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid file",
			})
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			log.Println(err, "Error reading uploaded file")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Upload failed",
			})
		}

		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := fmt.Sprintf("documents/%s/%s_%s", projectID, uuid.New(), file.Filename)
		gcsURL, err := h.clients.UploadObject(c.Context(), key, data, contentType)
		if err != nil {
			log.Println(err, "Error uploading to bucket")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Upload failed",
			})
		}

		fileURI, err := h.clients.UploadToGemini(c.Context(), file.Filename, data, contentType)
		if err != nil {
			log.Println(err, "Error uploading to Gemini file store")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Upload failed",
			})
		}

		doc := models.Document{
			ProjectUUID:    projectID,
			Name:           file.Filename,
			URL:            gcsURL,
			Type:           docType,
			IndexingStatus: models.IndexingCompleted,
			GeminiFileURI:  &fileURI,
		}
		if err := h.repo.CreateDocument(&doc); err != nil {
			log.Println(err, "Error saving document")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Upload failed",
			})
		}
		uploaded = append(uploaded, doc)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"documents": uploaded,
	})
}
