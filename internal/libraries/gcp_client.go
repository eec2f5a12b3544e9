package libraries

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
	"google.golang.org/genai"
)

type Clients struct {
	GCS       *storage.Client
	GenAI     *genai.Client
	Bucket    string
	ProjectID string
}

var clients *Clients

func GetClients() *Clients {
	return clients
}

func NewClients(ctx context.Context) (*Clients, error) {
	// read base64 encoded JSON
	encoded := os.Getenv("GCP_SERVICE_ACCOUNT_CREDENTIALS")
	if encoded == "" {
		return nil, fmt.Errorf("GCP_SERVICE_ACCOUNT_CREDENTIALS not set")
	}

	// decode JSON
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode service account json: %w", err)
	}

	credOpt := option.WithCredentialsJSON(decoded)

	// create GCS client
	gcsClient, err := storage.NewClient(ctx, credOpt)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}

	// create genai client for the Gemini file store
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	clients = &Clients{
		GCS:       gcsClient,
		GenAI:     genaiClient,
		Bucket:    os.Getenv("GCS_DOCUMENTS_BUCKET"),
		ProjectID: os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
	}

	return clients, nil
}

// UploadObject writes raw document bytes to the documents bucket and returns
// the gs:// URL of the object.
func (c *Clients) UploadObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := c.GCS.Bucket(c.Bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("gcs write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", c.Bucket, key), nil
}

// UploadToGemini pushes document bytes to the Gemini file store so later chat
// requests can reference the file without re-sending bytes. Returns the
// provider file URI.
func (c *Clients) UploadToGemini(ctx context.Context, displayName string, data []byte, mimeType string) (string, error) {
	file, err := c.GenAI.Files.Upload(ctx, bytes.NewReader(data), &genai.UploadFileConfig{
		DisplayName: displayName,
		MIMEType:    mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("genai file upload: %w", err)
	}

	return file.URI, nil
}

func (c *Clients) Close() {
	c.GCS.Close()
}
