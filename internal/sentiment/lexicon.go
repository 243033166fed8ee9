package sentiment

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// LexiconClassifier is a deterministic word-list scorer used when no
// inference endpoint is configured. It keeps the system runnable without a
// model server; its output vocabulary matches the binary LABEL_0/LABEL_1
// convention of the default model.
type LexiconClassifier struct {
	positive map[string]struct{}
	negative map[string]struct{}
	log      *zap.Logger
}

const (
	labelPositive = "LABEL_1"
	labelNegative = "LABEL_0"
)

var positiveWords = []string{
	"amazing", "awesome", "beautiful", "best", "brilliant", "captivating",
	"enjoyable", "excellent", "fantastic", "favorite", "good", "great",
	"incredible", "love", "loved", "masterpiece", "moving", "outstanding",
	"perfect", "powerful", "stunning", "superb", "wonderful",
}

var negativeWords = []string{
	"awful", "bad", "boring", "disappointing", "dreadful", "dull", "hate",
	"hated", "horrible", "lame", "mediocre", "mess", "poor", "predictable",
	"terrible", "waste", "weak", "worst",
}

func NewLexiconClassifier(log *zap.Logger) *LexiconClassifier {
	c := &LexiconClassifier{
		positive: make(map[string]struct{}, len(positiveWords)),
		negative: make(map[string]struct{}, len(negativeWords)),
		log:      log.With(zap.String("classifier", "lexicon")),
	}
	for _, w := range positiveWords {
		c.positive[w] = struct{}{}
	}
	for _, w := range negativeWords {
		c.negative[w] = struct{}{}
	}
	return c
}

func (c *LexiconClassifier) Classify(_ context.Context, text string) (*Prediction, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	var pos, neg int
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, token := range tokens {
		if _, ok := c.positive[token]; ok {
			pos++
		}
		if _, ok := c.negative[token]; ok {
			neg++
		}
	}

	// No sentiment-bearing words collapses to negative at even confidence.
	if pos == 0 && neg == 0 {
		return &Prediction{Label: labelNegative, Score: 0.5}, nil
	}

	if pos >= neg {
		return &Prediction{Label: labelPositive, Score: float64(pos) / float64(pos+neg)}, nil
	}
	return &Prediction{Label: labelNegative, Score: float64(neg) / float64(pos+neg)}, nil
}
