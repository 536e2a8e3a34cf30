package impl

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"marketbot/internal/domain/entity"
)

// maxMessageLength is Telegram's text limit in UTF-16 code units. Markup is
// counted too, which keeps the estimate on the safe side.
const maxMessageLength = 4096

// Callback data posted back by inline buttons.
const (
	callbackSearchPrefix     = "search_"
	callbackContactSupport   = "contact_support"
	callbackLatest           = "latest"
	callbackBrands           = "brands"
	callbackNotificationsOn  = "notifications_on"
	callbackNotificationsOff = "notifications_off"
)

// searchCategories are offered as quick search buttons.
var searchCategories = []struct {
	Label    string
	Category string
}{
	{Label: "🚙 SUV", Category: "suv"},
	{Label: "🚗 Sedán", Category: "sedan"},
	{Label: "🛻 Pickup", Category: "pickup"},
	{Label: "🏍 Motos", Category: "moto"},
}

const helpBody = `<b>Comandos disponibles</b>

/buscar &lt;términos&gt; - Buscar vehículos
/nuevos - Ver las publicaciones más recientes
/marcas - Ver las marcas disponibles
/estado - Ver el estado de tus publicaciones
/notificaciones - Configurar tus alertas
/estadisticas - Ver el resumen del mercado
/contacto - Hablar con soporte
/web - Abrir el sitio
/help - Ver esta ayuda

También puedes escribir directamente lo que buscas, por ejemplo:
• <i>Toyota Corolla</i>
• <i>precio max 15000</i>
• <i>modelo 2018</i>`

func helpMessage(baseURL string) entity.OutboundMessage {
	return entity.OutboundMessage{
		Text:    helpBody,
		Buttons: quickSearchButtons(baseURL),
	}
}

func welcomeMessage(name, baseURL string) entity.OutboundMessage {
	greeting := "👋 <b>¡Bienvenido al marketplace de vehículos!</b>"
	if name = strings.TrimSpace(name); name != "" {
		greeting = fmt.Sprintf("👋 <b>¡Hola, %s! Bienvenido al marketplace de vehículos.</b>", esc(name))
	}

	return entity.OutboundMessage{
		Text:    greeting + "\n\nTe ayudo a encontrar tu próximo vehículo y te aviso de las novedades.\n\n" + helpBody,
		Buttons: quickSearchButtons(baseURL),
	}
}

func quickSearchButtons(baseURL string) [][]entity.Button {
	row := make([]entity.Button, 0, len(searchCategories))
	for _, category := range searchCategories {
		row = append(row, entity.CallbackButton(category.Label, callbackSearchPrefix+category.Category))
	}

	return [][]entity.Button{
		row[:2],
		row[2:],
		{
			entity.CallbackButton("🆕 Recientes", callbackLatest),
			entity.CallbackButton("🏷 Marcas", callbackBrands),
		},
		{entity.URLButton("🌐 Abrir el sitio", baseURL+"/vehiculos")},
	}
}

func profileButton(baseURL string) []entity.Button {
	return []entity.Button{entity.URLButton("👤 Ir a mi perfil", baseURL+"/perfil")}
}

func messageLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// fitLines joins header, as many lines as fit and footer into one message
// text. When lines are dropped, overflow(n) is appended before the footer
// with n the number of dropped lines.
func fitLines(header string, lines []string, footer string, overflow func(omitted int) string) string {
	budget := maxMessageLength - messageLength(header) - messageLength(footer) -
		messageLength(overflow(len(lines)))

	var b strings.Builder
	b.WriteString(header)
	kept := 0
	for _, line := range lines {
		size := messageLength(line)
		if size > budget {
			break
		}
		budget -= size
		b.WriteString(line)
		kept++
	}
	if kept < len(lines) {
		b.WriteString(overflow(len(lines) - kept))
	}
	b.WriteString(footer)

	return b.String()
}
