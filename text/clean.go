// Package text provides input cleaning and tokenization for language detection.
package text

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/longbridgeapp/opencc"
	"golang.org/x/text/unicode/norm"

	"github.com/glossa-tools/glossa/utils"
)

var logger = utils.Logger

var (
	urlPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern  = regexp.MustCompile(`\S+@\S+`)
	htmlPattern   = regexp.MustCompile(`<.*?>`)
	digitPattern  = regexp.MustCompile(`\d+`)
	asciiPattern  = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	spacesPattern = regexp.MustCompile(`\s+`)
)

// CleaningOptions controls how text is prepared before detection.
type CleaningOptions struct {
	// Advanced enables NFKC normalization, lower-casing, HTML stripping
	// and the conditional removals below.
	Advanced      bool
	RemovePunct   bool
	RemoveNumbers bool
	RemoveSpecial bool
	// SimplifyCJK converts Traditional Chinese Kanji to Simplified before
	// the rest of the cleaning steps.
	SimplifyCJK bool
}

// Cleaner normalizes raw input text. Clean is a pure function of
// (text, options) and is idempotent for any fixed options.
type Cleaner struct {
	t2s *opencc.OpenCC
}

// NewCleaner creates a cleaner. The Traditional->Simplified converter is
// loaded eagerly so SimplifyCJK is always available.
func NewCleaner() (*Cleaner, error) {
	t2s, err := opencc.New("t2s")
	if err != nil {
		return nil, err
	}
	return &Cleaner{t2s: t2s}, nil
}

// Clean normalizes text per the given options. Empty input returns "".
// Cleaning never fails: conversion errors are absorbed and the text passes
// through unconverted.
func (c *Cleaner) Clean(text string, opts CleaningOptions) string {
	if text == "" {
		return ""
	}
	if opts.SimplifyCJK && c.t2s != nil {
		converted, err := c.t2s.Convert(text)
		if err != nil {
			logger.WithError(err).Warn("t2s conversion failed, keeping original text")
		} else {
			text = converted
		}
	}
	if opts.Advanced {
		return advancedClean(text, opts)
	}
	return basicClean(text)
}

// basicClean strips URLs and email addresses and normalizes whitespace.
func basicClean(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = spacesPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func advancedClean(text string, opts CleaningOptions) string {
	text = norm.NFKC.String(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = htmlPattern.ReplaceAllString(text, "")
	text = strings.ToLower(text)
	if opts.RemovePunct {
		text = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				return -1
			}
			return r
		}, text)
	}
	if opts.RemoveNumbers {
		text = digitPattern.ReplaceAllString(text, "")
	}
	if opts.RemoveSpecial {
		text = asciiPattern.ReplaceAllString(text, "")
	}
	text = spacesPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
