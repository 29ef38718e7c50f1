package events

import (
	"strings"
	"time"
)

// Kind classifies an inbound event.
type Kind int

const (
	KindIgnore Kind = iota
	KindReject
	KindAccept
)

// StalenessWindow is the maximum age of an event before it is discarded.
const StalenessWindow = 2 * time.Minute

const eventMessagesUpsert = "messages.upsert"

// Result is the outcome of classifying one webhook event. Status is the
// short string echoed back in the HTTP response. Request is set only for
// KindAccept; SenderID is set whenever a sender could be identified.
type Result struct {
	Kind     Kind
	Status   string
	SenderID string
	Request  *ExtractionRequest
}

func ignored(status string) Result {
	return Result{Kind: KindIgnore, Status: status}
}

// Classify applies the intake rules in order and decides whether the event
// is silently ignored, rejected with user feedback, or accepted for
// background extraction. Only a rejected file type produces feedback; every
// other discard path is silent.
func Classify(event *WebhookEvent, now time.Time) Result {
	if event.Event != eventMessagesUpsert {
		return ignored("ignored")
	}

	remoteJID := event.Data.Key.RemoteJID
	if remoteJID == "" {
		return ignored("missing remoteJid")
	}

	// remoteJid looks like 5511999999999@s.whatsapp.net
	senderID, _, _ := strings.Cut(remoteJID, "@")

	document := event.Data.Message.DocumentMessage
	if document == nil {
		return ignored("ignored: not document")
	}

	messageTime := time.Unix(event.Data.MessageTimestamp, 0)
	if now.Sub(messageTime) > StalenessWindow {
		return ignored("Mensagem muito antiga ignorada")
	}

	fileName := document.FileName
	if fileName == "" {
		fileName = document.Title
	}

	if document.Mimetype != "application/pdf" || !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return Result{Kind: KindReject, Status: "invalid mimetype", SenderID: senderID}
	}

	if document.URL == "" {
		return ignored("missing document url")
	}

	title := document.Title
	if title == "" {
		title = fileName
	}

	return Result{
		Kind:     KindAccept,
		Status:   "PDF received, processing started",
		SenderID: senderID,
		Request: &ExtractionRequest{
			SenderID:      senderID,
			MessageID:     event.Data.Key.ID,
			DocumentTitle: title,
			DocumentURL:   document.URL,
		},
	}
}
