package notes_test

import (
	"encoding/json"
	"time"

	"github.com/matheus-feu/nf-bot-zap/internal/notes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func rawNote(extra string) map[string]interface{} {
	body := `{
		"provider": "Acme Comercio Ltda",
		"date_of_issue": "01/05/2024",
		"total_value": "10.50"` + extra + `
	}`

	var raw map[string]interface{}
	Expect(json.Unmarshal([]byte(body), &raw)).To(Succeed())
	return raw
}

var _ = Describe("BuildNote", func() {
	It("builds a note with the required header fields", func() {
		note, err := notes.BuildNote(rawNote(""), "https://example.com/nota.pdf")

		Expect(err).NotTo(HaveOccurred())
		Expect(note.Provider).To(Equal("Acme Comercio Ltda"))
		Expect(note.DateOfIssue).To(Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
		Expect(note.TotalValue.String()).To(Equal("10.5"))
		Expect(note.PDFURL).To(Equal("https://example.com/nota.pdf"))
		Expect(note.Items).To(BeEmpty())
	})

	It("carries the optional header fields", func() {
		raw := rawNote(`,
			"note_type": "NF-e",
			"note_number": "12345",
			"series": "1",
			"access_key": "35240512345678000199550010000123451000123456",
			"issuer_cnpj": "12.345.678/0001-99",
			"issuer_city": "Sao Paulo",
			"issuer_state": "SP",
			"nature_of_operation": "Venda de mercadoria",
			"protocol_number": "135240000000001"`)

		note, err := notes.BuildNote(raw, "")

		Expect(err).NotTo(HaveOccurred())
		Expect(note.NoteType).To(Equal("NF-e"))
		Expect(note.NoteNumber).To(Equal("12345"))
		Expect(note.Series).To(Equal("1"))
		Expect(note.AccessKey).To(Equal("35240512345678000199550010000123451000123456"))
		Expect(note.IssuerCNPJ).To(Equal("12.345.678/0001-99"))
		Expect(note.IssuerState).To(Equal("SP"))
	})

	DescribeTable("required header fields",
		func(field string) {
			raw := rawNote("")
			delete(raw, field)

			_, err := notes.BuildNote(raw, "")
			Expect(err).To(MatchError(notes.ErrMissingField))
		},
		Entry("provider", "provider"),
		Entry("date_of_issue", "date_of_issue"),
		Entry("total_value", "total_value"),
	)

	Describe("date_of_issue", func() {
		It("parses DD/MM/YYYY and YYYY-MM-DD to the same date", func() {
			rawBR := rawNote("")
			rawBR["date_of_issue"] = "01/05/2024"
			rawISO := rawNote("")
			rawISO["date_of_issue"] = "2024-05-01"

			noteBR, err := notes.BuildNote(rawBR, "")
			Expect(err).NotTo(HaveOccurred())
			noteISO, err := notes.BuildNote(rawISO, "")
			Expect(err).NotTo(HaveOccurred())

			Expect(noteBR.DateOfIssue).To(Equal(noteISO.DateOfIssue))
		})

		It("rejects any other format", func() {
			raw := rawNote("")
			raw["date_of_issue"] = "2024.05.01"

			_, err := notes.BuildNote(raw, "")
			Expect(err).To(MatchError(notes.ErrBadDate))
		})
	})

	It("rounds the header total to two decimal places", func() {
		raw := rawNote("")
		raw["total_value"] = "10.505"

		note, err := notes.BuildNote(raw, "")

		Expect(err).NotTo(HaveOccurred())
		Expect(note.TotalValue.String()).To(Equal("10.51"))
	})

	It("accepts numeric total_value", func() {
		raw := rawNote("")
		raw["total_value"] = 99.9

		note, err := notes.BuildNote(raw, "")

		Expect(err).NotTo(HaveOccurred())
		Expect(note.TotalValue.String()).To(Equal("99.9"))
	})

	It("rejects an unparseable total_value", func() {
		raw := rawNote("")
		raw["total_value"] = "dez reais"

		_, err := notes.BuildNote(raw, "")
		Expect(err).To(MatchError(notes.ErrBadNumber))
	})

	Describe("line items", func() {
		It("keeps items with all required fields and rounds to four places", func() {
			raw := rawNote(`,
				"items": [
					{
						"product_name": "Parafuso 3mm",
						"product_code": "P-001",
						"ncm": "73181500",
						"cfop": "5102",
						"quantity": "10",
						"unit_of_measure": "UN",
						"unit_value": "0.33333",
						"icms_value": "0.12345"
					}
				]`)

			note, err := notes.BuildNote(raw, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(note.Items).To(HaveLen(1))

			item := note.Items[0]
			Expect(item.ProductName).To(Equal("Parafuso 3mm"))
			Expect(item.Quantity.String()).To(Equal("10"))
			Expect(item.UnitValue.String()).To(Equal("0.3333"))
			Expect(item.ICMSValue.Valid).To(BeTrue())
			Expect(item.ICMSValue.Decimal.String()).To(Equal("0.1235"))
		})

		It("drops items missing any required field, keeping the note", func() {
			raw := rawNote(`,
				"items": [
					{"product_name": "Sem quantidade", "unit_of_measure": "UN", "unit_value": "1.00"},
					{"quantity": "1", "unit_of_measure": "UN", "unit_value": "1.00"},
					{"product_name": "Sem unidade", "quantity": "1", "unit_value": "1.00"},
					{"product_name": "Sem valor", "quantity": "1", "unit_of_measure": "UN"},
					{"product_name": "Completo", "quantity": "2", "unit_of_measure": "CX", "unit_value": "5.00"}
				]`)

			note, err := notes.BuildNote(raw, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(note.Items).To(HaveLen(1))
			Expect(note.Items[0].ProductName).To(Equal("Completo"))
		})

		It("leaves optional monetary fields null when absent", func() {
			raw := rawNote(`,
				"items": [
					{"product_name": "Item", "quantity": "1", "unit_of_measure": "UN", "unit_value": "1.00"}
				]`)

			note, err := notes.BuildNote(raw, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(note.Items[0].DiscountValue.Valid).To(BeFalse())
			Expect(note.Items[0].IPIValue.Valid).To(BeFalse())
		})

		It("tolerates a missing items key", func() {
			note, err := notes.BuildNote(rawNote(""), "")

			Expect(err).NotTo(HaveOccurred())
			Expect(note.Items).To(BeEmpty())
		})
	})
})
