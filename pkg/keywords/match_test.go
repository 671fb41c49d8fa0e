package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type candidate struct {
	name     string
	keywords []string
}

func (c candidate) KeywordList() []string { return c.keywords }

func names(cs []candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.name)
	}
	return out
}

var seeded = []candidate{
	{name: "Vendas", keywords: []string{"comprar", "preço", "valor", "orçamento"}},
	{name: "Suporte", keywords: []string{"problema", "erro", "ajuda", "não funciona"}},
	{name: "Urgente", keywords: []string{"urgente", "emergência", "agora", "rápido"}},
	{name: "Pessoal", keywords: nil},
}

func TestMatch_EmptyTextMatchesNothing(t *testing.T) {
	assert.Empty(t, Match("", seeded))
	assert.Empty(t, Match("   \n", seeded))
}

func TestMatch_CaseInsensitive(t *testing.T) {
	got := Match("URGENTE pedido", []candidate{{name: "u", keywords: []string{"urgente"}}})

	assert.Equal(t, []string{"u"}, names(got))
}

func TestMatch_UppercaseKeyword(t *testing.T) {
	got := Match("reunião amanhã", []candidate{{name: "m", keywords: []string{"REUNIÃO"}}})

	assert.Equal(t, []string{"m"}, names(got))
}

func TestMatch_ReturnsAllMatchesInInputOrder(t *testing.T) {
	got := Match("Urgente: Preciso de ajuda com o preço agora!", seeded)

	assert.Equal(t, []string{"Vendas", "Suporte", "Urgente"}, names(got))
}

func TestMatch_EmptyKeywordListNeverMatches(t *testing.T) {
	got := Match("qualquer coisa", []candidate{
		{name: "nil"},
		{name: "empty", keywords: []string{}},
		{name: "blank", keywords: []string{"", "  "}},
	})

	assert.Empty(t, got)
}

func TestMatch_SubstringNotWord(t *testing.T) {
	got := Match("Problemas no sistema", seeded)

	assert.Equal(t, []string{"Suporte"}, names(got))
}

func TestMatch_NoCandidates(t *testing.T) {
	assert.Empty(t, Match("hello", []candidate(nil)))
}
