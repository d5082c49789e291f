package llm

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxPromptText caps how much email text goes into one reasoning call.
const MaxPromptText = 3000

// forwardMarkers mark the boundary of forwarded content. Everything before
// the first marker found is quoted-header noise; the forwarded part is what
// carries the operational data.
var forwardMarkers = []string{
	"---------- Forwarded message ---------",
	"-----Original Message-----",
	"Begin forwarded message:",
	"-------- Mensaje reenviado --------",
}

// signatureMarkers open mobile signatures; the text is cut at the first one.
var signatureMarkers = []string{
	"Enviado desde mi",
	"Sent from my",
	"Get Outlook for",
	"Descargue Outlook para",
}

// CleanEmailText strips quoted headers before forwarded content and truncates
// trailing mobile signatures. This is load-bearing for extraction quality,
// not cosmetics.
func CleanEmailText(text string) string {
	for _, marker := range forwardMarkers {
		if _, after, found := strings.Cut(text, marker); found {
			text = after
			break
		}
	}
	for _, marker := range signatureMarkers {
		if before, _, found := strings.Cut(text, marker); found {
			text = before
			break
		}
	}
	return strings.TrimSpace(text)
}

const promptTemplate = `Eres un experto en extraer información de emails operacionales del sector agrícola chileno.

**CONTEXTO:**
Este es un email sobre cobertores, mallas, o trabajos agrícolas. Puede contener:
- Solicitudes de producción
- Confirmaciones de pedidos
- Reportes de trabajos realizados
- Cotizaciones o proformas

**ASUNTO:**
%s

**CONTENIDO DEL EMAIL:**
%s

**TU TAREA:**
Extrae TODA la información operacional relevante que encuentres.

**CAMPOS A BUSCAR:**
1. **codigo_cobertor**: Cualquier código alfanumérico (COB-XXX, C00000XXX, pedido #XXX, OC-XXX)
2. **cuartel**: Número o nombre de cuartel/sector/campo (ej: "15", "Cuartel 22", "Manantiales")
3. **hileras**: Cantidad de hileras/filas (número entero)
4. **largo_metros**: Largo en metros (número decimal, puede estar como "120m", "120 metros", "120 mts")
5. **prioridad**:
   - "alta" si ves: URGENTE, CRÍTICO, PRIORITARIO, INMEDIATO, ALTA
   - "baja" si ves: BAJA, NO URGENTE
   - "normal" en cualquier otro caso
6. **descripcion**: Resumen de QUÉ se está solicitando/reportando (máx 100 chars)
7. **notas**: Información adicional relevante (empresa, contacto, observaciones)

**REGLAS IMPORTANTES:**
- Si NO encuentras un dato específico, usa null (no inventes)
- Si encuentras información parcial, úsala (es mejor que null)
- Para emails sobre "trabajos realizados" o "confirmaciones", también extrae los datos
- Si el email menciona múltiples items, extrae datos del primero o más importante
- Números sin unidad cerca de "metro" son metros
- Busca en TODO el texto, no solo al inicio

**EJEMPLOS DE CÓDIGOS VÁLIDOS:**
- "COB-001", "C0000019127", "OC-2025-001", "Pedido #12345"

**FORMATO DE SALIDA (SOLO JSON, SIN bloques de código ni explicaciones):**
{
  "codigo_cobertor": "código encontrado o null",
  "cuartel": "nombre o número de cuartel",
  "hileras": número_entero_o_null,
  "largo_metros": número_decimal_o_null,
  "prioridad": "alta|normal|baja",
  "descripcion": "Breve resumen de la solicitud/reporte",
  "notas": "Información adicional relevante"
}

Responde ÚNICAMENTE con el objeto JSON, sin bloques de código ni explicaciones.`

// BuildPrompt assembles the instruction template around the cleaned and
// length-capped email text.
func BuildPrompt(subject, cleanedText string) string {
	cleanedText = capBytes(cleanedText, MaxPromptText)
	return fmt.Sprintf(promptTemplate, subject, cleanedText)
}

// capBytes limits s to max bytes on a rune boundary.
func capBytes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
