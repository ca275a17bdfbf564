package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/example/pedidos/internal/models"
)

// WhatsAppMessage builds the order summary text sent to the client.
func WhatsAppMessage(order models.Order, client models.Client) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá %s, segue o resumo do seu pedido #%s\n\n", client.Name, strings.ToUpper(order.ID.String()[:8]))
	fmt.Fprintf(&b, "Valor Total: %s\n", FormatBRL(order.TotalValue))
	fmt.Fprintf(&b, "Itens: %d\n", len(order.Items))
	fmt.Fprintf(&b, "Condição: %s\n\n", dash(order.PaymentTerms))
	b.WriteString("Obrigado pela compra!")
	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens a chat with the client's
// phone, prefilled with the order summary.
func WhatsAppLink(order models.Order, client models.Client) string {
	// QueryEscape uses '+' for spaces, which WhatsApp renders literally.
	text := strings.ReplaceAll(url.QueryEscape(WhatsAppMessage(order, client)), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(client.Phone), text)
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
