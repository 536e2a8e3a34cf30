package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFreeText_MaxPrice(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "precio max 15000", want: 15000},
		{input: "Precio máximo 15.000", want: 15000},
		{input: "carros hasta 8,500", want: 8500},
		{input: "algo por menos de 12000 dólares", want: 12000},
		{input: "bajo 5000", want: 5000},
		{input: "max: 20000", want: 20000},
		{input: "hasta 1.250.000", want: 1250000},
		{input: "carro de menos de 10 mil", want: 10000},
		{input: "precio máximo $ 20k", want: 20000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed := parseFreeText(tt.input)

			assert.Equal(t, intentSearch, parsed.Intent)
			require.NotNil(t, parsed.Filter.MaxPrice)
			assert.InDelta(t, tt.want, *parsed.Filter.MaxPrice, 0.001)
			assert.Nil(t, parsed.Filter.Year)
			assert.Nil(t, parsed.Filter.Query)
		})
	}
}

func TestParseFreeText_Year(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "año 2018", want: 2018},
		{input: "ano 2015", want: 2015},
		{input: "Toyota modelo 2020", want: 2020},
		{input: "un carro del 2012", want: 2012},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed := parseFreeText(tt.input)

			assert.Equal(t, intentSearch, parsed.Intent)
			require.NotNil(t, parsed.Filter.Year)
			assert.Equal(t, tt.want, *parsed.Filter.Year)
			assert.Nil(t, parsed.Filter.MaxPrice)
		})
	}
}

func TestParseFreeText_PriceWinsOverYear(t *testing.T) {
	parsed := parseFreeText("modelo 2018 hasta 9000")

	require.NotNil(t, parsed.Filter.MaxPrice)
	assert.InDelta(t, 9000.0, *parsed.Filter.MaxPrice, 0.001)
	assert.Nil(t, parsed.Filter.Year)
}

func TestParseFreeText_Intents(t *testing.T) {
	tests := []struct {
		input string
		want  textIntent
	}{
		{input: "Hola", want: intentGreeting},
		{input: "buenas noches", want: intentGreeting},
		{input: "qué tal?", want: intentGreeting},
		{input: "hola, cuánto cuesta publicar?", want: intentGreeting},
		{input: "¿Cuánto cuesta?", want: intentPricing},
		{input: "precios", want: intentPricing},
		{input: "quiero vender mi carro", want: intentSelling},
		{input: "como publico un anuncio", want: intentSelling},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFreeText(tt.input).Intent)
		})
	}
}

func TestParseFreeText_FallsBackToQuery(t *testing.T) {
	parsed := parseFreeText("  Toyota Corolla  ")

	assert.Equal(t, intentSearch, parsed.Intent)
	require.NotNil(t, parsed.Filter.Query)
	assert.Equal(t, "toyota corolla", *parsed.Filter.Query)
	assert.Nil(t, parsed.Filter.MaxPrice)
	assert.Nil(t, parsed.Filter.Year)
}

func TestParseFreeText_MarkerInsideWordIsIgnored(t *testing.T) {
	parsed := parseFreeText("maxima 300")

	require.NotNil(t, parsed.Filter.Query)
	assert.Equal(t, "maxima 300", *parsed.Filter.Query)
}

func TestParseFreeText_MarkerNeedsAdjacentAmount(t *testing.T) {
	tests := []string{
		"toyota bajo kilometraje 2015",
		"precio negociable, tengo 3 carros",
		"hasta mañana, vi 2 anuncios",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			parsed := parseFreeText(input)

			assert.Nil(t, parsed.Filter.MaxPrice)
			assert.Nil(t, parsed.Filter.Year)
		})
	}
}
