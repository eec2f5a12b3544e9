package llmHandlers

import (
	"context"
)

type TurnRole string

const (
	TurnRoleUser  TurnRole = "user"
	TurnRoleModel TurnRole = "model"
)

// Part is one piece of a turn: either plain text or a reference to a file
// previously uploaded to the provider's file storage.
type Part struct {
	Text     string
	FileURI  string
	MIMEType string
}

// Turn is one role-tagged entry of the completion request.
type Turn struct {
	Role  TurnRole
	Parts []Part
}

// Request is the full payload for a single completion call. The system
// instruction is optional.
type Request struct {
	SystemInstruction string
	Turns             []Turn
}

// Client is the text-completion capability. Implementations return the
// assistant's single response text or an error; no retries, no streaming.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func FilePart(uri, mimeType string) Part {
	return Part{FileURI: uri, MIMEType: mimeType}
}
