package impl

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"marketbot/internal/domain/entity"
)

// textIntent classifies a free text chat message.
type textIntent int

const (
	intentSearch textIntent = iota
	intentGreeting
	intentPricing
	intentSelling
)

// parsedText is the outcome of classifying free text. Filter is only
// meaningful for intentSearch.
type parsedText struct {
	Intent textIntent
	Filter entity.SearchFilter
}

var (
	// A price marker directly followed by an amount, e.g. "precio max 15000",
	// "hasta 15.000" or "menos de 10 mil". Only spaces, a colon, "$" and the
	// words max/máximo/de may sit between them.
	maxPricePattern = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:precio|m[aá]x(?:imo)?|hasta|menos de|bajo)(?:[\s:]+(?:m[aá]x(?:imo)?|de))*[\s:]*\$?\s*(\d{1,3}(?:[.,]\d{3})+|\d+)(?:\s*(mil|k)(?:[^\p{L}]|$))?`)

	// A year marker directly followed by four digits, e.g. "modelo 2018" or "del 2015".
	yearPattern = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:a[ñn]o|modelo|del)[\s:]*(\d{4})(?:\D|$)`)

	greetingWords = wordSet("hola", "buenas", "buenos", "saludos", "hey", "hi", "hello", "ola", "qué tal", "que tal")
	pricingWords  = wordSet("precio", "precios", "costo", "costos", "cuesta", "cuestan", "cuánto", "cuanto", "valor", "vale", "tarifa")
	sellingWords  = wordSet("vender", "vendo", "venta", "publicar", "publico", "publicación", "publicacion", "anunciar", "anuncio", "anuncios")
)

// parseFreeText classifies a non-command message. Explicit price and year
// filters win over the keyword intents; anything else becomes a text search.
func parseFreeText(text string) parsedText {
	text = strings.TrimSpace(text)

	if match := maxPricePattern.FindStringSubmatch(text); match != nil {
		if amount, ok := parseAmount(match[1]); ok {
			if match[2] != "" {
				amount *= 1000
			}

			return parsedText{Intent: intentSearch, Filter: entity.SearchFilter{MaxPrice: &amount}}
		}
	}

	if match := yearPattern.FindStringSubmatch(text); match != nil {
		if year, err := strconv.Atoi(match[1]); err == nil {
			return parsedText{Intent: intentSearch, Filter: entity.SearchFilter{Year: &year}}
		}
	}

	lowered := strings.ToLower(text)
	words := splitWords(lowered)

	switch {
	case greetingWords.matches(lowered, words):
		return parsedText{Intent: intentGreeting}
	case pricingWords.matches(lowered, words):
		return parsedText{Intent: intentPricing}
	case sellingWords.matches(lowered, words):
		return parsedText{Intent: intentSelling}
	}

	return parsedText{Intent: intentSearch, Filter: entity.SearchFilter{Query: &lowered}}
}

// parseAmount accepts plain digits and "." or "," thousands separators.
func parseAmount(raw string) (float64, bool) {
	digits := strings.NewReplacer(".", "", ",", "").Replace(raw)
	amount, err := strconv.ParseFloat(digits, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}

	return amount, true
}

type keywordSet struct {
	single  map[string]struct{}
	phrases []string
}

func wordSet(words ...string) keywordSet {
	set := keywordSet{single: make(map[string]struct{}, len(words))}
	for _, word := range words {
		if strings.Contains(word, " ") {
			set.phrases = append(set.phrases, word)

			continue
		}
		set.single[word] = struct{}{}
	}

	return set
}

func (s keywordSet) matches(lowered string, words []string) bool {
	for _, word := range words {
		if _, ok := s.single[word]; ok {
			return true
		}
	}
	for _, phrase := range s.phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}

	return false
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
