package evolution_test

import (
	"context"

	"github.com/matheus-feu/nf-bot-zap/internal/pkg/evolution"
	"github.com/matheus-feu/nf-bot-zap/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var client *evolution.Client

	BeforeEach(func() {
		client = evolution.New("https://evolution.example.com", "secret-key", "nf-bot")
		client.UseDefaultClient()
		testhelpers.Activate()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	Describe("GetBase64FromMediaMessage", func() {
		It("returns the base64 payload", func() {
			testhelpers.New("https://evolution.example.com").
				Post("/chat/getBase64FromMediaMessage/nf-bot").Reply(200).
				JSON(map[string]interface{}{"base64": "JVBERi0xLjQ="})

			b64, err := client.GetBase64FromMediaMessage(context.Background(), "3EB0C431C26A1916E07E")

			Expect(err).NotTo(HaveOccurred())
			Expect(b64).To(Equal("JVBERi0xLjQ="))
			Expect(testhelpers.IsDone()).To(BeTrue())
		})

		It("returns an error on non-2xx responses", func() {
			testhelpers.New("https://evolution.example.com").
				Post("/chat/getBase64FromMediaMessage/nf-bot").Reply(404).
				BodyString(`{"status": 404, "error": "Not Found"}`)

			_, err := client.GetBase64FromMediaMessage(context.Background(), "unknown")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("evolution error 404"))
		})
	})

	Describe("SendText", func() {
		It("posts the message to the instance endpoint", func() {
			testhelpers.New("https://evolution.example.com").
				Post("/message/sendText/nf-bot").Reply(201).
				JSON(map[string]interface{}{"status": "PENDING"})

			err := client.SendText(context.Background(), "5511999999999", "Olá")

			Expect(err).NotTo(HaveOccurred())
			Expect(testhelpers.IsDone()).To(BeTrue())
		})
	})
})
