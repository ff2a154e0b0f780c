package mailer

import "text/template"

var (
	bidOutcomeSubject = template.Must(template.New("bid-outcome-subject").Parse(
		`Bid for {{.EquipmentName}} {{.BidStatus}}`,
	))

	bidOutcomeBody = template.Must(template.New("bid-outcome-body").Parse(
		`Hi {{.BuyerFirstName}},

{{.SellerName}} has {{.BidStatus}} your bid of {{.Amount}} for {{.EquipmentName}}.
{{if eq .BidStatus "approved"}}The equipment is reserved in your cart and is ready for checkout.{{else}}You can place a new bid from the equipment page at any time.{{end}}

Harbour Hub
`,
	))

	quoteAnswerSubject = template.Must(template.New("quote-answer-subject").Parse(
		`You received a quote for {{.EquipmentName}}`,
	))

	quoteAnswerBody = template.Must(template.New("quote-answer-body").Parse(
		`Hi {{.BuyerFirstName}},

{{.SellerName}} has answered your quote request for {{.EquipmentName}} with {{.Amount}}.
Log in to Harbour Hub to review the offer.

Harbour Hub
`,
	))
)
