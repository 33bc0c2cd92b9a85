package donate

import (
	"html/template"
	"io"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Thank You</title>
</head>
<body>
<main class="confirmation">
<h1>Thank You{{if .DonorName}}, {{.DonorName}}{{end}}!</h1>
<p>Your donation has been successfully received. We truly appreciate your generosity and support for our cause.</p>
<dl>
{{- if .HasAmount}}
<dt>Amount</dt><dd class="amount">{{.Symbol}}{{.Amount}}</dd>
{{- end}}
{{- if .PaymentID}}
<dt>Payment ID</dt><dd class="payment-id">{{.PaymentID}}</dd>
{{- end}}
{{- if .OrderID}}
<dt>Order ID</dt><dd class="order-id">{{.OrderID}}</dd>
{{- end}}
</dl>
<a href="/">Go Back to Home</a>
</main>
</body>
</html>
`))

type confirmationView struct {
	DonorName string
	HasAmount bool
	Symbol    string
	Amount    string
	PaymentID string
	OrderID   string
}

// Render пишет страницу подтверждения. Поля экранируются шаблоном.
func (c Confirmation) Render(w io.Writer) error {
	return confirmationTmpl.Execute(w, confirmationView{
		DonorName: c.DonorName,
		HasAmount: c.Amount.IsPositive(),
		Symbol:    currencySymbol(c.Currency),
		Amount:    c.Amount.StringFixed(2),
		PaymentID: c.PaymentID,
		OrderID:   c.OrderID,
	})
}

func currencySymbol(currency string) string {
	switch currency {
	case "", "INR":
		return "₹"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	default:
		return currency + " "
	}
}
