package llm

import (
	"fmt"
	"strings"
)

// Model is the chat-completion model used for every request.
const Model = "gpt-4.1-mini"

const DefaultContactName = "Cliente"

const classifySystemPrompt = `Você é um assistente especializado em classificar mensagens de WhatsApp para profissionais.
Analise a mensagem e classifique em:

PRIORIDADE: LOW, NORMAL, HIGH, URGENT
CATEGORIA: PERSONAL, PROFESSIONAL, SALES, SUPPORT, MARKETING, OTHER

Critérios para PRIORIDADE:
- URGENT: palavras como "urgente", "emergência", "agora", "rápido", "socorro"
- HIGH: palavras como "importante", "prioridade", "preciso", "deadline"
- NORMAL: maioria das mensagens profissionais
- LOW: cumprimentos simples, agradecimentos

Critérios para CATEGORIA:
- SALES: palavras como "comprar", "preço", "valor", "orçamento", "produto"
- SUPPORT: palavras como "problema", "erro", "ajuda", "dúvida", "não funciona"
- MARKETING: palavras como "promoção", "desconto", "oferta", "campanha"
- PERSONAL: cumprimentos pessoais, família, amigos
- PROFESSIONAL: reuniões, projetos, trabalho
- OTHER: não se encaixa nas outras

Responda APENAS no formato JSON:
{"priority": "PRIORITY_VALUE", "category": "CATEGORY_VALUE", "tags": ["tag1", "tag2"]}

Inclua também sugestões de tags relevantes baseadas no conteúdo.`

const suggestSystemPrompt = `Você é um assistente especializado em sugerir respostas profissionais para mensagens de WhatsApp.

Contexto:
- Esta é uma conversa de WhatsApp de um profissional
- O contato se chama: %s
- Mantenha um tom profissional, mas amigável
- Seja conciso e direto
- Use saudações adequadas ao horário se necessário

Baseado na mensagem recebida, sugira 2-3 respostas diferentes:
1. Uma resposta direta e objetiva
2. Uma resposta mais elaborada com detalhes
3. Uma resposta para agendar um contato posterior (se aplicável)

Responda APENAS no formato JSON:
{
  "suggestions": [
    {"type": "direct", "content": "resposta direta", "title": "Resposta Direta"},
    {"type": "detailed", "content": "resposta detalhada", "title": "Resposta Detalhada"},
    {"type": "schedule", "content": "resposta para agendar", "title": "Agendar Contato"}
  ]
}`

// historyLimit caps how many earlier messages are quoted in the suggestion
// prompt.
const historyLimit = 10

func ClassifyPrompts(content string) (system, user string) {
	return classifySystemPrompt, fmt.Sprintf("Classifique esta mensagem: %q", content)
}

func SuggestPrompts(content, contactName string, history []string) (system, user string) {
	if contactName == "" {
		contactName = DefaultContactName
	}
	system = fmt.Sprintf(suggestSystemPrompt, contactName)

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	var b strings.Builder
	if len(history) > 0 {
		b.WriteString("Histórico recente:\n")
		for _, line := range history {
			b.WriteString("- " + line + "\n")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Mensagem recebida: %q", content)
	return system, b.String()
}
