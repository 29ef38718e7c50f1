package events

// WebhookEvent is the raw body posted by the Evolution API for every
// instance event. Only the fields the pipeline reads are declared.
type WebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Key struct {
			RemoteJID string `json:"remoteJid"`
			ID        string `json:"id"`
		} `json:"key"`
		Message struct {
			DocumentMessage *DocumentMessage `json:"documentMessage"`
		} `json:"message"`
		MessageTimestamp int64 `json:"messageTimestamp"`
	} `json:"data"`
}

// DocumentMessage carries the attachment metadata of a document message.
type DocumentMessage struct {
	Mimetype string `json:"mimetype"`
	FileName string `json:"fileName"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// ExtractionRequest is everything the background pipeline needs to process
// one accepted document.
type ExtractionRequest struct {
	SenderID      string
	MessageID     string
	DocumentTitle string
	DocumentURL   string
}
