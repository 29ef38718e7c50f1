package tasks

import (
	"context"
	"fmt"
	"log"
)

// Fixed user-facing message templates. Only the success message carries a
// substitution (the document title).
const (
	MsgInvalidFileType  = "Só aceito arquivos PDF de nota fiscal para registro. Envie um PDF válido."
	MsgProcessingFailed = "Tive um erro ao processar sua nota fiscal. Tente novamente em alguns minutos."

	msgSuccessFmt = "Nota fiscal '%s' processada com sucesso e registrada no sistema."
)

// SuccessMessage renders the success notification for a processed document.
func SuccessMessage(documentTitle string) string {
	return fmt.Sprintf(msgSuccessFmt, documentTitle)
}

// notify delivers one outbound message. Delivery failures are logged only,
// never retried or escalated.
func (p *TaskProcessor) notify(ctx context.Context, senderID, text string) {
	if err := p.evolutionClient.SendText(ctx, senderID, text); err != nil {
		log.Printf("failed to notify %s: %v", senderID, err)
	}
}
