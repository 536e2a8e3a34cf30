package impl

import (
	"fmt"
	"html"
	"math"
	"strings"

	"marketbot/config"
	"marketbot/internal/domain/entity"
	"marketbot/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const maxFeatureBullets = 3

// notificationComposer implements the NotificationComposer interface.
type notificationComposer struct {
	baseURL string
	printer *message.Printer
}

// NotificationComposerParams holds dependencies for the composer, injected by Fx.
type NotificationComposerParams struct {
	fx.In

	Config *config.Config
}

// NewNotificationComposer builds a composer bound to the public site and locale.
func NewNotificationComposer(params NotificationComposerParams) usecase.NotificationComposer {
	site := params.Config.Site
	if site == nil {
		site = &config.SiteConfig{}
	}

	tag, err := language.Parse(site.Locale)
	if err != nil {
		tag = language.Spanish
	}

	return &notificationComposer{
		baseURL: strings.TrimRight(site.BaseURL, "/"),
		printer: message.NewPrinter(tag),
	}
}

// NewVehicle asks the admins to moderate a freshly posted listing.
func (c *notificationComposer) NewVehicle(listing *entity.ListingSummary) entity.OutboundMessage {
	var b strings.Builder
	b.WriteString("🆕 <b>Nuevo vehículo pendiente de revisión</b>\n\n")
	c.writeListingHeader(&b, listing)
	fmt.Fprintf(&b, "👤 Publicado por: %s\n", esc(listing.OwnerName))
	if listing.ReferenceNumber != nil {
		fmt.Fprintf(&b, "🔖 Referencia: %s\n", esc(*listing.ReferenceNumber))
	}
	if listing.Description != nil {
		fmt.Fprintf(&b, "\n%s\n", esc(truncate(*listing.Description, 300)))
	}

	return entity.OutboundMessage{
		Text: b.String(),
		Buttons: [][]entity.Button{
			{entity.URLButton("🛠 Revisar en el panel", c.adminListingURL(listing.ID))},
		},
	}
}

// VehicleApproved tells the owner the listing is live.
func (c *notificationComposer) VehicleApproved(listing *entity.ListingSummary) entity.OutboundMessage {
	var b strings.Builder
	b.WriteString("✅ <b>¡Tu vehículo fue aprobado!</b>\n\n")
	c.writeListingHeader(&b, listing)
	b.WriteString("\nYa es visible para todos los compradores. Te avisaremos cuando haya novedades.")

	return entity.OutboundMessage{
		Text: b.String(),
		Buttons: [][]entity.Button{
			{entity.URLButton("👀 Ver publicación", c.ListingURL(listing.ID))},
		},
	}
}

// NewListingAlert advertises an approved listing to subscribed buyers.
func (c *notificationComposer) NewListingAlert(listing *entity.ListingSummary) entity.OutboundMessage {
	var b strings.Builder
	b.WriteString("🚗 <b>Nuevo vehículo disponible</b>\n\n")
	c.writeListingHeader(&b, listing)
	b.WriteString("\n")
	for _, feature := range c.features(listing) {
		fmt.Fprintf(&b, "• %s\n", feature)
	}

	return entity.OutboundMessage{
		Text: b.String(),
		Buttons: [][]entity.Button{
			{entity.URLButton("🔎 Ver detalles", c.ListingURL(listing.ID))},
			{entity.URLButton("💬 Contactar vendedor", c.contactSellerURL(listing.ID))},
		},
	}
}

// VehicleRejected explains to the owner why the listing was not published.
func (c *notificationComposer) VehicleRejected(listing *entity.ListingSummary, reason string) entity.OutboundMessage {
	var b strings.Builder
	b.WriteString("❌ <b>Tu publicación no fue aprobada</b>\n\n")
	c.writeListingHeader(&b, listing)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "No cumple con las políticas de publicación."
	}
	fmt.Fprintf(&b, "\n<b>Motivo:</b> %s\n\nPuedes corregirla y enviarla de nuevo a revisión.", esc(reason))

	return entity.OutboundMessage{
		Text: b.String(),
		Buttons: [][]entity.Button{
			{entity.URLButton("✏️ Editar publicación", c.editListingURL(listing.ID))},
		},
	}
}

// PriceChange alerts favoriters. A negative delta is a reduction; zero and
// positive deltas are rendered as an increase.
func (c *notificationComposer) PriceChange(listing *entity.ListingSummary, oldPrice, newPrice float64) entity.OutboundMessage {
	delta := newPrice - oldPrice
	label, icon, sign := "aumento", "📈", "+"
	if delta < 0 {
		label, icon, sign = "reducción", "📉", "-"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>Cambio de precio: %s</b>\n\n", icon, label)
	fmt.Fprintf(&b, "🚗 <b>%s %s %d</b>\n", esc(listing.Brand), esc(listing.Model), listing.Year)
	fmt.Fprintf(&b, "Antes: %s\n", c.FormatPrice(oldPrice, listing.Currency))
	fmt.Fprintf(&b, "Ahora: <b>%s</b>\n", c.FormatPrice(newPrice, listing.Currency))
	fmt.Fprintf(&b, "Diferencia: %s%s\n", sign, c.FormatPrice(math.Abs(delta), listing.Currency))

	return entity.OutboundMessage{
		Text: b.String(),
		Buttons: [][]entity.Button{
			{entity.URLButton("🔎 Ver vehículo", c.ListingURL(listing.ID))},
		},
	}
}

// PaymentReceived notifies the admins of a payment.
func (c *notificationComposer) PaymentReceived(listing *entity.ListingSummary, payment *entity.Payment) entity.OutboundMessage {
	if payment == nil {
		payment = &entity.Payment{}
	}
	currency := payment.Currency
	if currency == "" && listing != nil {
		currency = listing.Currency
	}

	var b strings.Builder
	b.WriteString("💰 <b>Pago recibido</b>\n\n")
	fmt.Fprintf(&b, "Monto: <b>%s</b>\n", c.FormatPrice(payment.Amount, currency))
	if payment.Method != "" {
		fmt.Fprintf(&b, "Método: %s\n", esc(payment.Method))
	}
	if payment.PayerName != "" {
		fmt.Fprintf(&b, "Pagador: %s\n", esc(payment.PayerName))
	}
	if payment.Reference != "" {
		fmt.Fprintf(&b, "Referencia: %s\n", esc(payment.Reference))
	}

	buttons := [][]entity.Button{{entity.URLButton("🧾 Ver pagos", c.url("/admin/pagos"))}}
	if listing != nil {
		fmt.Fprintf(&b, "\nVehículo: %s %s %d\n", esc(listing.Brand), esc(listing.Model), listing.Year)
		buttons = append(buttons, []entity.Button{entity.URLButton("🚗 Ver vehículo", c.adminListingURL(listing.ID))})
	}

	return entity.OutboundMessage{Text: b.String(), Buttons: buttons}
}

// MarketSummary renders the weekly digest.
func (c *notificationComposer) MarketSummary(stats *entity.MarketStats) entity.OutboundMessage {
	if stats == nil {
		stats = &entity.MarketStats{}
	}

	var b strings.Builder
	b.WriteString("📊 <b>Resumen semanal del mercado</b>\n\n")
	b.WriteString(c.statsBody(stats))

	return entity.OutboundMessage{
		Text: b.String(),
		Buttons: [][]entity.Button{
			{entity.URLButton("🚗 Ver vehículos", c.url("/vehiculos"))},
		},
	}
}

// ContactMessage forwards a contact form submission to the admins.
func (c *notificationComposer) ContactMessage(contact *entity.ContactMessage) entity.OutboundMessage {
	if contact == nil {
		contact = &entity.ContactMessage{}
	}

	var b strings.Builder
	b.WriteString("📩 <b>Nuevo mensaje de contacto</b>\n\n")
	fmt.Fprintf(&b, "De: %s &lt;%s&gt;\n", esc(contact.Name), esc(contact.Email))
	if contact.Phone != "" {
		fmt.Fprintf(&b, "Teléfono: %s\n", esc(contact.Phone))
	}
	if contact.Subject != "" {
		fmt.Fprintf(&b, "Asunto: %s\n", esc(contact.Subject))
	}
	fmt.Fprintf(&b, "\n%s", esc(truncate(contact.Message, 1500)))

	return entity.OutboundMessage{
		Text: b.String(),
		Buttons: [][]entity.Button{
			{entity.URLButton("📬 Abrir mensajes", c.url("/admin/mensajes"))},
		},
	}
}

// SearchResultLine renders one listing of a search reply.
func (c *notificationComposer) SearchResultLine(listing *entity.ListingSummary) string {
	price := "Precio no especificado"
	if listing.Price > 0 {
		price = c.FormatPrice(listing.Price, listing.Currency)
	}
	location := "No especificada"
	if listing.Location != nil {
		location = esc(*listing.Location)
	}

	return fmt.Sprintf("🚗 <b>%s %s</b> (%d)\n💵 %s\n📍 %s\n🔗 %s",
		esc(listing.Brand), esc(listing.Model), listing.Year, price, location, c.ListingURL(listing.ID))
}

// FormatPrice renders an amount with grouping separators and no decimals.
func (c *notificationComposer) FormatPrice(amount float64, currency string) string {
	formatted := c.printer.Sprintf("%d", int64(math.Round(amount)))
	if currency == "" {
		return "$" + formatted
	}

	return fmt.Sprintf("%s %s", esc(currency), formatted)
}

// ListingURL returns the public detail page of a listing.
func (c *notificationComposer) ListingURL(listingID string) string {
	return c.url("/vehiculos/" + listingID)
}

func (c *notificationComposer) statsBody(stats *entity.MarketStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚗 Vehículos publicados: <b>%s</b>\n", c.printer.Sprintf("%d", stats.TotalListings))
	fmt.Fprintf(&b, "🆕 Nuevos esta semana: <b>%s</b>\n", c.printer.Sprintf("%d", stats.NewThisWeek))
	if stats.AveragePrice > 0 {
		fmt.Fprintf(&b, "💵 Precio promedio: <b>%s</b>\n", c.FormatPrice(stats.AveragePrice, ""))
	}
	if len(stats.TopBrands) > 0 {
		b.WriteString("\n🏆 <b>Marcas más publicadas</b>\n")
		for idx, brand := range stats.TopBrands {
			fmt.Fprintf(&b, "%d. %s (%d)\n", idx+1, esc(brand.Brand), brand.Count)
		}
	}

	return b.String()
}

func (c *notificationComposer) writeListingHeader(b *strings.Builder, listing *entity.ListingSummary) {
	fmt.Fprintf(b, "🚗 <b>%s %s %d</b>\n", esc(listing.Brand), esc(listing.Model), listing.Year)
	if listing.Price > 0 {
		fmt.Fprintf(b, "💵 %s\n", c.FormatPrice(listing.Price, listing.Currency))
	} else {
		b.WriteString("💵 Precio no especificado\n")
	}
	if listing.Location != nil {
		fmt.Fprintf(b, "📍 %s\n", esc(*listing.Location))
	}
}

// features picks up to three highlights in a fixed order.
func (c *notificationComposer) features(listing *entity.ListingSummary) []string {
	features := make([]string, 0, maxFeatureBullets)
	add := func(feature string) {
		if len(features) < maxFeatureBullets {
			features = append(features, feature)
		}
	}

	if listing.Mileage != nil {
		add(c.printer.Sprintf("%d", *listing.Mileage) + " km")
	}
	if listing.Transmission != nil {
		add("Transmisión " + esc(*listing.Transmission))
	}
	if listing.FuelType != nil {
		add("Combustible: " + esc(*listing.FuelType))
	}
	if listing.Condition != nil {
		add("Estado: " + esc(*listing.Condition))
	}
	if listing.Color != nil {
		add("Color " + esc(*listing.Color))
	}

	if len(features) == 0 {
		return []string{"Consulta todos los detalles en la publicación"}
	}

	return features
}

func (c *notificationComposer) adminListingURL(listingID string) string {
	return c.url("/admin/vehiculos/" + listingID)
}

func (c *notificationComposer) editListingURL(listingID string) string {
	return c.url("/vehiculos/" + listingID + "/editar")
}

func (c *notificationComposer) contactSellerURL(listingID string) string {
	return c.url("/vehiculos/" + listingID + "#contacto")
}

func (c *notificationComposer) url(path string) string {
	return c.baseURL + path
}

func esc(text string) string {
	return html.EscapeString(text)
}

func truncate(text string, limit int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= limit {
		return string(runes)
	}

	return string(runes[:limit]) + "…"
}
