package classify

import (
	"log/slog"

	"reltag/internal/config"
	"reltag/internal/logging"
	"reltag/internal/token"
)

// Classifier holds the immutable lookup state used during classification.
type Classifier struct {
	groups     Groups
	videoExts  map[string]struct{}
	randomTags bool
	logger     *slog.Logger
}

// Option customizes a Classifier at construction time.
type Option func(*Classifier)

// WithGroups replaces the known group set.
func WithGroups(groups Groups) Option {
	return func(c *Classifier) {
		if groups.names != nil {
			c.groups = groups
		}
	}
}

// WithLogger routes classification diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logging.NewComponentLogger(logger, "classify")
	}
}

// WithRandomTags makes unclassified tags surface as RandomTag tokens in
// addition to being reported as failures.
func WithRandomTags(keep bool) Option {
	return func(c *Classifier) {
		c.randomTags = keep
	}
}

// WithVideoExtensions marks additional extensions as video for Skip.
func WithVideoExtensions(exts ...string) Option {
	return func(c *Classifier) {
		for _, ext := range exts {
			if normalized := config.NormalizeExtension(ext); normalized != "" {
				c.videoExts[normalized] = struct{}{}
			}
		}
	}
}

// New builds a Classifier. Without options it uses DefaultGroups and discards
// diagnostics.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		groups:    DefaultGroups,
		videoExts: map[string]struct{}{},
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a Classifier from the [classify] configuration section.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) *Classifier {
	if cfg == nil {
		return New(WithLogger(logger))
	}
	return New(
		WithGroups(NewGroups(cfg.Classify.ExtraGroups...)),
		WithVideoExtensions(cfg.Classify.ExtraVideoExtensions...),
		WithRandomTags(cfg.Classify.KeepRandomTags),
		WithLogger(logger),
	)
}

// Groups returns the known group set in use.
func (c *Classifier) Groups() Groups {
	return c.groups
}

var defaultClassifier = New()

// Tokenize classifies name (without extension) using the default classifier.
func Tokenize(name string) Result {
	return defaultClassifier.Tokenize(name)
}

// TokenizeFile classifies a filename with extension using the default classifier.
func TokenizeFile(filename string) Result {
	return defaultClassifier.TokenizeFile(filename)
}

// Skip reports whether filename should be ignored, using the default classifier.
func Skip(filename string) bool {
	return defaultClassifier.Skip(filename)
}

// IsAnime reports whether filename has the bracket-tag release shape.
func IsAnime(filename string) bool {
	return defaultClassifier.IsAnime(filename)
}

// ClassifyTag classifies one bracket tag content using the default classifier.
func ClassifyTag(content string) ([]token.Token, *Failure) {
	return defaultClassifier.ClassifyTag(content)
}
