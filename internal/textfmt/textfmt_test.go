package textfmt

import (
	"math"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Orçamento", "orcamento"},
		{"  LOGÍSTICA  ", "logistica"},
		{"Concluída", "concluida"},
		{"Em execução", "em execucao"},
		{"Paralização", "paralizacao"},
		{"", ""},
		{"abc123", "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	samples := []string{
		"Orçamento Pé-direito", "  ÁÉÍÓÚ àèìòù ÂÊÔ ãõ ç  ", "Ñandú", "tubo PVC 100mm",
		"", "   ", "São Paulo\tSP", "é", "ﬁ ligature",
	}
	for _, s := range samples {
		once := NormalizeText(s)
		assert.Equal(t, once, NormalizeText(once), "input %q", s)
	}
}

func TestNormalizeText_ConcurrentCallers(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "orcamento", NormalizeText("Orçamento"))
			}
		}()
	}
	wg.Wait()
}

func TestContainsNormalized(t *testing.T) {
	assert.True(t, ContainsNormalized("Cimento CP-II Votorán", "votoran"))
	assert.True(t, ContainsNormalized("Fornecedor São João", "SAO JOAO"))
	assert.True(t, ContainsNormalized("qualquer", ""))
	assert.False(t, ContainsNormalized("Areia média", "brita"))
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"acronym", "disco corte aco", "Disco Corte ACO"},
		{"welding", "arame solda mig", "Arame Solda MIG"},
		{"gas", "botijão glp 13kg", "Botijão GLP 13KG"},
		{"mixed digits", "vergalhao ca50 10mm", "Vergalhao CA50 10MM"},
		{"numeric untouched", "tubo 100 metros", "Tubo 100 Metros"},
		{"rest untouched", "cIMENTO pORTLAND", "CIMENTO PORTLAND"},
		{"keeps inner case", "mcDonald", "McDonald"},
		{"accented first rune", "érica", "Érica"},
		{"double space kept", "tubo  pvc", "Tubo  PVC"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTitleCase(tt.in))
		})
	}
}

func TestAcronymSet_ReturnsCopy(t *testing.T) {
	set := AcronymSet()
	sort.Strings(set)
	assert.Contains(t, set, "MIG")
	assert.Contains(t, set, "GLP")

	set[0] = "ZZZ"
	assert.False(t, IsAcronym("ZZZ"))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		c    Currency
		want string
	}{
		{"brl", 1234.56, BRL, "R$\u00a01.234,56"},
		{"usd", 1234.56, USD, "US$\u00a01.234,56"},
		{"zero", 0, BRL, "R$\u00a00,00"},
		{"millions", 1234567.891, BRL, "R$\u00a01.234.567,89"},
		{"negative", -10.5, BRL, "-R$\u00a010,50"},
		{"unknown falls back to BRL", 5, Currency("EUR"), "R$\u00a05,00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.v, tt.c))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"R$\u00a01.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"US$\u00a099,90", 99.90},
		{"-R$\u00a010,50", -10.50},
		{"1.000", 1000},
		{"", 0},
		{"abc", 0},
		{"1,2,3", 1.2},
		{"10-5", 10},
		{"R$ - 7,25", -7.25},
		{",5", 0.5},
		{"-", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseCurrency(tt.in), 1e-9)
		})
	}
}

func TestCurrency_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.01, 1234.56, 987654.32, -42.42} {
		for _, c := range []Currency{BRL, USD} {
			assert.InDelta(t, v, ParseCurrency(FormatCurrency(v, c)), 0.005, "value %v %s", v, c)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "45.7%", FormatPercentage(45.67, 1))
	assert.Equal(t, "50%", FormatPercentage(50, 0))
	assert.Equal(t, "12.50%", FormatPercentage(12.5, 2))
	assert.Equal(t, "3%", FormatPercentage(3.2, -1))
}

func TestParseCurrencyCode(t *testing.T) {
	c, err := ParseCurrencyCode("usd")
	require.NoError(t, err)
	assert.Equal(t, USD, c)

	c, err = ParseCurrencyCode("")
	require.NoError(t, err)
	assert.Equal(t, BRL, c)

	_, err = ParseCurrencyCode("EUR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported currency")
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{40, "40"},
		{2.5, "2,5"},
		{1250, "1.250"},
		{0.126, "0,13"},
		{0, "0"},
		{math.NaN(), "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatQuantity(tt.in), "FormatQuantity(%v)", tt.in)
	}
}
