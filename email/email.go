package email

import (
	"fmt"
	"log"
	"strings"

	"heirloom/config"
	"heirloom/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendOrderConfirmation sends the order confirmation email via SendGrid.
// Delivery is best effort: the order flow never fails because of email.
func SendOrderConfirmation(user *models.User, order *models.Order) error {
	if config.SendGridAPIKey == "" {
		log.Println("SENDGRID_API_KEY not set, skipping order confirmation email for order", order.OrderNumber)
		return nil
	}

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.Email
	}

	from := mail.NewEmail("Heirloom", config.EmailFrom)
	to := mail.NewEmail(name, user.Email)
	subject := fmt.Sprintf("Order Confirmation %s", order.OrderNumber)
	message := mail.NewSingleEmail(from, subject, to, textBody(name, order), htmlBody(name, order))

	client := sendgrid.NewSendClient(config.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending order confirmation to %s: %v", user.Email, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid API Error: Status Code %d, Body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	log.Printf("Order confirmation sent to %s for order %s", user.Email, order.OrderNumber)
	return nil
}

func textBody(name string, order *models.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear %s,\n\nThank you for your order %s.\n\n", name, order.OrderNumber)
	for _, item := range order.OrderItems {
		fmt.Fprintf(&sb, "- %s x%d at $%.2f\n", item.Product.Title, item.Quantity, item.Price)
	}
	fmt.Fprintf(&sb, "\nSubtotal: $%.2f\nShipping: $%.2f\nInsurance: $%.2f\nTax: $%.2f\nTotal: $%.2f\n",
		order.Subtotal, order.Shipping, order.Insurance, order.Tax, order.Total)
	sb.WriteString("\nWe will let you know as soon as your order ships.\n")
	return sb.String()
}

func htmlBody(name string, order *models.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<p>Dear %s,</p><p>Thank you for your order <strong>%s</strong>.</p><ul>", name, order.OrderNumber)
	for _, item := range order.OrderItems {
		fmt.Fprintf(&sb, "<li>%s &times;%d at $%.2f</li>", item.Product.Title, item.Quantity, item.Price)
	}
	fmt.Fprintf(&sb, "</ul><p>Subtotal: $%.2f<br>Shipping: $%.2f<br>Insurance: $%.2f<br>Tax: $%.2f<br><strong>Total: $%.2f</strong></p>",
		order.Subtotal, order.Shipping, order.Insurance, order.Tax, order.Total)
	sb.WriteString("<p>We will let you know as soon as your order ships.</p>")
	return sb.String()
}
