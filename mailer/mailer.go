// Package mailer sends the order confirmation email. Delivery is best
// effort: callers run it in the background and only log failures, so a
// slow or broken SMTP provider never blocks order creation.
package mailer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"antojos/models"
	"antojos/utils"

	"gopkg.in/gomail.v2"
)

const operatorBCC = "pedidos@antojos.example.com"

type smtpConfig struct {
	host string
	port int
	user string
	pass string
}

func loadConfig() (smtpConfig, error) {
	cfg := smtpConfig{
		host: os.Getenv("SMTP_HOST"),
		user: os.Getenv("EMAIL_USER"),
		pass: os.Getenv("EMAIL_PASS"),
	}
	if cfg.host == "" {
		cfg.host = "smtp.gmail.com"
	}
	cfg.port = 465
	if p := os.Getenv("SMTP_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return cfg, fmt.Errorf("invalid SMTP_PORT %q: %w", p, err)
		}
		cfg.port = port
	}
	if cfg.user == "" || cfg.pass == "" {
		return cfg, fmt.Errorf("EMAIL_USER and EMAIL_PASS must be set")
	}
	return cfg, nil
}

// SendOrderConfirmation emails the buyer a summary of their order, with
// the operator address in BCC.
func SendOrderConfirmation(order models.Order) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.user, "Antojos")
	m.SetHeader("To", order.Cliente.Correo)
	m.SetHeader("Bcc", operatorBCC)
	m.SetHeader("Subject", fmt.Sprintf("¡Gracias por tu pedido %s!", order.OrderNumber))
	m.SetBody("text/html", renderOrderHTML(order))

	d := gomail.NewDialer(cfg.host, cfg.port, cfg.user, cfg.pass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send confirmation for %s: %w", order.OrderNumber, err)
	}
	return nil
}

func renderOrderHTML(order models.Order) string {
	var b strings.Builder
	b.WriteString("<div style=\"font-family: Arial, sans-serif; max-width: 600px; margin: auto;\">")
	fmt.Fprintf(&b, "<h2>Hola %s,</h2>", order.Cliente.Nombre)
	b.WriteString("<p>¡Estamos muy contentos de que hayas comprado con nosotros! Aquí tienes los detalles de tu pedido:</p>")
	fmt.Fprintf(&b, "<p><b>Número de orden:</b> %s</p>", order.OrderNumber)
	fmt.Fprintf(&b, "<p><b>Fecha:</b> %s<br/><b>Estado:</b> %s<br/><b>Método de pago:</b> %s</p>",
		order.CreatedAt.Format("2006-01-02 15:04"), order.Estado, order.MetodoPago)

	b.WriteString("<h3>Detalle de tu pedido:</h3><ul>")
	for _, item := range order.Productos {
		label := item.Nombre
		if item.Variante != "" {
			label += " (" + item.Variante + ")"
		}
		fmt.Fprintf(&b, "<li>%s, cantidad %d, %s</li>", label, item.Cantidad, utils.FormatCOP(item.PrecioFinal))
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<p>Envío: %s</p>", utils.FormatCOP(order.Shipping))
	fmt.Fprintf(&b, "<h3>Total: %s</h3>", utils.FormatCOP(order.Total))
	b.WriteString("<p>¡Nos encantaría verte de nuevo!</p></div>")
	return b.String()
}
