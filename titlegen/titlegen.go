// Package titlegen produces a movie title for a plot description, either
// through a generative text service or a local template synthesizer.
package titlegen

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"cineseek/errs"
)

var ErrDescriptionRequired = errs.Errorf(errs.EINVALID, "Description is required")

// Sources tag which path produced a title.
const (
	SourceAI               = "ai"
	SourceCreative         = "creative"
	SourceCreativeFallback = "creative_fallback"
)

type Title struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

type Service interface {
	Generate(ctx context.Context, description string) (Title, error)
}

// TextGenerator is the remote generative service. A nil generator means
// no credential is configured and synthesis is always local.
type TextGenerator interface {
	GenerateTitle(ctx context.Context, description string) (string, error)
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true,
	"that": true, "this": true, "from": true,
}

var (
	prefixes = []string{"The", "Echoes of", "Shadow", "Digital", "Final", "Lost", "Hidden", "Ancient", "Future"}
	suffixes = []string{"Quest", "Legacy", "Dreams", "Secret", "Journey", "Prophet", "Code", "Protocol", "Whisper"}
	middles  = []string{"the", "of", "in", "and", ""}

	fallbackTitles = []string{
		"The Last Echo", "Digital Ghosts", "Shadow Protocol",
		"Eternal Dreams", "The Final Stand", "Lost Horizon",
		"Beyond the Veil", "Whispers of Time", "The Hidden Code",
		"Ancient Mysteries", "Future Echoes", "The Silent Prophet",
		"Digital Frontier", "The Last Memory", "Echoes of Tomorrow",
		"The Forgotten Quest", "Shadow Dreams", "The Final Whisper",
		"Beyond Reality", "The Lost Legacy", "Digital Mysteries",
	}

	promptEcho = regexp.MustCompile(`(?i)Movie title for:.*?Title:\s*`)
	spaces     = regexp.MustCompile(`\s+`)
)

type Usecase struct {
	gen TextGenerator
	rng *rand.Rand
}

// NewUsecase builds the generator. gen may be nil when no generative
// credential is configured; rng drives the creative synthesizer so tests
// can seed it.
func NewUsecase(gen TextGenerator, rng *rand.Rand) *Usecase {
	return &Usecase{gen: gen, rng: rng}
}

// Generate never fails past input validation: any remote problem falls
// back to the local synthesizer. An upstream rejection (non-2xx status,
// empty candidate list) counts as an unusable result and keeps the
// creative tag; only a transport-level failure is tagged as a fallback.
func (uc *Usecase) Generate(ctx context.Context, description string) (Title, error) {
	if strings.TrimSpace(description) == "" {
		return Title{}, ErrDescriptionRequired
	}

	if uc.gen != nil {
		raw, err := uc.gen.GenerateTitle(ctx, description)
		if err != nil && errs.ErrorCode(err) != errs.EUPSTREAM {
			return Title{Title: uc.creative(description), Source: SourceCreativeFallback}, nil
		}
		if err == nil {
			if title := cleanGenerated(raw); len(title) > 2 {
				return Title{Title: title, Source: SourceAI}, nil
			}
		}
	}

	return Title{Title: uc.creative(description), Source: SourceCreative}, nil
}

// cleanGenerated strips the prompt echo and keeps the first line.
func cleanGenerated(raw string) string {
	title := promptEcho.ReplaceAllString(raw, "")
	title, _, _ = strings.Cut(title, "\n")
	return strings.TrimSpace(title)
}

// creative synthesizes a title from a keyword of the description, or from
// the fixed fallback list when no word qualifies.
func (uc *Usecase) creative(description string) string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(description)) {
		if len(word) > 3 && !stopWords[word] {
			keywords = append(keywords, word)
		}
	}

	if len(keywords) == 0 {
		return fallbackTitles[uc.rng.Intn(len(fallbackTitles))]
	}

	word := keywords[uc.rng.Intn(len(keywords))]
	first, size := utf8.DecodeRuneInString(word)
	word = string(unicode.ToUpper(first)) + word[size:]

	patterns := []string{
		prefixes[uc.rng.Intn(len(prefixes))] + " " + word,
		word + "'s " + suffixes[uc.rng.Intn(len(suffixes))],
		"The " + word + " " + suffixes[uc.rng.Intn(len(suffixes))],
		word + " " + middles[uc.rng.Intn(len(middles))] + " " + suffixes[uc.rng.Intn(len(suffixes))],
	}

	title := patterns[uc.rng.Intn(len(patterns))]
	return strings.TrimSpace(spaces.ReplaceAllString(title, " "))
}
