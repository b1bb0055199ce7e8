// Package prompt asks Gemini for reflection questions and the sentiment of
// journal entries.
//
// Every call degrades to a fixed text when the model is not available, so
// callers can always display something.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	journal "github.com/etnz/fieldjournal"
)

const model = "gemini-2.5-flash"

// Texts displayed instead of the model answer.
const (
	Unavailable = "La funcionalidad de IA no está disponible. Configure la GEMINI_API_KEY."
	Failed      = "Hubo un error al generar las sugerencias. Por favor, inténtalo de nuevo más tarde."
)

// Sentiment tags.
const (
	Positive = "positivo"
	Neutral  = "neutral"
	Negative = "negativo"
)

// ErrUnavailable is returned when no model is configured.
var ErrUnavailable = errors.New("text generation is not configured")

// Generator generates content, it is implemented by genai.Models.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Assistant asks a model about journal entries.
type Assistant struct {
	Models Generator // nil when unavailable
	Model  string    // default model when empty
}

// New creates an assistant backed by Gemini. The API key is read from the
// environment by the genai client; without key the assistant is unavailable
// and the error says why.
func New(ctx context.Context) (*Assistant, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return &Assistant{}, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	return &Assistant{Models: client.Models}, nil
}

// Available reports whether a model is configured.
func (a *Assistant) Available() bool { return a != nil && a.Models != nil }

// ask sends a single text prompt and returns the answer text.
func (a *Assistant) ask(ctx context.Context, text string) (string, error) {
	if !a.Available() {
		return "", ErrUnavailable
	}
	name := a.Model
	if name == "" {
		name = model
	}
	resp, err := a.Models.GenerateContent(ctx, name, genai.Text(text), nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from %s", name)
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	answer := strings.TrimSpace(b.String())
	if answer == "" {
		return "", fmt.Errorf("empty response from %s", name)
	}
	return answer, nil
}

// Reflect returns three or four open questions to deepen the reflection of an
// entry. On failure it returns a fallback text together with the error.
func (a *Assistant) Reflect(ctx context.Context, e journal.Entry) (string, error) {
	if !a.Available() {
		return Unavailable, ErrUnavailable
	}
	answer, err := a.ask(ctx, ReflectionPrompt(e))
	if err != nil {
		return Failed, fmt.Errorf("cannot generate reflection prompts for entry %q: %w", e.ID, err)
	}
	return answer, nil
}

// Sentiment returns the sentiment tag of an entry: Positive, Neutral or
// Negative. On failure it returns "" together with the error.
func (a *Assistant) Sentiment(ctx context.Context, e journal.Entry) (string, error) {
	answer, err := a.ask(ctx, SentimentPrompt(e))
	if err != nil {
		return "", fmt.Errorf("cannot analyze sentiment of entry %q: %w", e.ID, err)
	}
	tag := parseSentiment(answer)
	if tag == "" {
		return "", fmt.Errorf("unexpected sentiment %q for entry %q", answer, e.ID)
	}
	return tag, nil
}

// parseSentiment finds the sentiment tag in a model answer.
func parseSentiment(answer string) string {
	answer = strings.ToLower(answer)
	for _, tag := range []string{Negative, Positive, Neutral} {
		if strings.Contains(answer, tag) {
			return tag
		}
	}
	return ""
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "No especificado"
	}
	return s
}

func orNone(list []string) string {
	if len(list) == 0 {
		return "Ninguna"
	}
	return strings.Join(list, ", ")
}

// ReflectionPrompt returns the prompt asking for reflection questions.
func ReflectionPrompt(e journal.Entry) string {
	var b strings.Builder
	b.WriteString("Basado en la siguiente entrada de diario de campo de un futuro docente de educación física, genera 3 o 4 preguntas abiertas y profundas para guiar su reflexión.\n\n")
	fmt.Fprintf(&b, "- Título: \"%s\"\n", e.Title)
	fmt.Fprintf(&b, "- Fecha: %s\n", e.Date.Format("2/1/2006"))
	fmt.Fprintf(&b, "- Reflexión Principal: \"%s\"\n", e.Reflection)
	fmt.Fprintf(&b, "- Habilidades Desarrolladas/Observadas: \"%s\"\n", orUnspecified(e.Skills))
	fmt.Fprintf(&b, "- Elementos de Deontología/Ethos: \"%s\"\n", orUnspecified(e.Deontology))
	fmt.Fprintf(&b, "- Dimensiones Pedagógicas Involucradas: \"%s\"\n", orUnspecified(e.Dimensions))
	fmt.Fprintf(&b, "- Etiquetas: %s\n", orNone(e.Tags))
	fmt.Fprintf(&b, "- Competencias Vinculadas: %s\n\n", orNone(e.Competencies))
	b.WriteString("Las preguntas deben ser alentadoras, pedagógicas y ayudar a conectar la práctica con la teoría de la formación docente, considerando los elementos proporcionados. Responde en español y formatea las preguntas como una lista con viñetas.")
	return b.String()
}

// SentimentPrompt returns the prompt asking for the sentiment of an entry.
func SentimentPrompt(e journal.Entry) string {
	return fmt.Sprintf("Clasifica el sentimiento general de la siguiente reflexión de un futuro docente de educación física. Responde con una sola palabra: %s, %s o %s.\n\nTítulo: \"%s\"\nReflexión: \"%s\"",
		Positive, Neutral, Negative, e.Title, e.Reflection)
}
