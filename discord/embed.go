package discord

import (
	"errors"
	"time"
	"unicode/utf8"
)

// embed.go contains all structures for constructing embeds

type EmbedType string

const (
	EmbedTypeRich EmbedType = "rich"
)

// Embed limits.
const (
	EmbedTitleLimit       = 256
	EmbedDescriptionLimit = 4096
	EmbedFieldLimit       = 25
	EmbedFieldNameLimit   = 256
	EmbedFieldValueLimit  = 1024
	EmbedFooterLimit      = 2048
	EmbedAuthorLimit      = 256
	EmbedTotalLimit       = 6000
)

// Embed represents a message embed.
type Embed struct {
	Timestamp   *Timestamp      `json:"timestamp,omitempty"`
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Image       *EmbedImage     `json:"image,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Type        EmbedType       `json:"type,omitempty"`
	Description string          `json:"description,omitempty"`
	URL         string          `json:"url,omitempty"`
	Title       string          `json:"title,omitempty"`
	Fields      []EmbedField    `json:"fields,omitempty"`
	Color       int32           `json:"color,omitempty"`
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// EmbedImage represents an image in an embed.
type EmbedImage struct {
	URL string `json:"url"`
}

// EmbedThumbnail represents the thumbnail of an embed.
type EmbedThumbnail struct {
	URL string `json:"url"`
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

// EmbedField represents a field in an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedBuilder assembles an Embed. Limits are checked by Build.
type EmbedBuilder struct {
	embed Embed
}

func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{embed: Embed{Type: EmbedTypeRich}}
}

func (e *EmbedBuilder) SetTitle(title string) *EmbedBuilder {
	e.embed.Title = title

	return e
}

func (e *EmbedBuilder) SetDescription(description string) *EmbedBuilder {
	e.embed.Description = description

	return e
}

func (e *EmbedBuilder) SetURL(url string) *EmbedBuilder {
	e.embed.URL = url

	return e
}

func (e *EmbedBuilder) SetTimestamp(t time.Time) *EmbedBuilder {
	timestamp := NewTimestamp(t)
	e.embed.Timestamp = &timestamp

	return e
}

func (e *EmbedBuilder) SetColor(color int32) *EmbedBuilder {
	e.embed.Color = color

	return e
}

func (e *EmbedBuilder) SetFooter(text, iconURL string) *EmbedBuilder {
	e.embed.Footer = &EmbedFooter{Text: text, IconURL: iconURL}

	return e
}

func (e *EmbedBuilder) SetImage(url string) *EmbedBuilder {
	e.embed.Image = &EmbedImage{URL: url}

	return e
}

func (e *EmbedBuilder) SetThumbnail(url string) *EmbedBuilder {
	e.embed.Thumbnail = &EmbedThumbnail{URL: url}

	return e
}

func (e *EmbedBuilder) SetAuthor(name, url, iconURL string) *EmbedBuilder {
	e.embed.Author = &EmbedAuthor{Name: name, URL: url, IconURL: iconURL}

	return e
}

func (e *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	e.embed.Fields = append(e.embed.Fields, EmbedField{Name: name, Value: value, Inline: inline})

	return e
}

// Build validates the embed against discord's limits.
func (e *EmbedBuilder) Build() (Embed, error) {
	var errs builderErrors

	total := utf8.RuneCountInString(e.embed.Title) + utf8.RuneCountInString(e.embed.Description)

	errs.check(utf8.RuneCountInString(e.embed.Title) <= EmbedTitleLimit, "title", "must be at most 256 characters")
	errs.check(utf8.RuneCountInString(e.embed.Description) <= EmbedDescriptionLimit, "description", "must be at most 4096 characters")
	errs.check(len(e.embed.Fields) <= EmbedFieldLimit, "fields", "must have at most 25 fields")

	for _, field := range e.embed.Fields {
		errs.check(field.Name != "" && field.Value != "", "fields", "name and value are required")
		errs.check(utf8.RuneCountInString(field.Name) <= EmbedFieldNameLimit, "fields", "name must be at most 256 characters")
		errs.check(utf8.RuneCountInString(field.Value) <= EmbedFieldValueLimit, "fields", "value must be at most 1024 characters")

		total += utf8.RuneCountInString(field.Name) + utf8.RuneCountInString(field.Value)
	}

	if e.embed.Footer != nil {
		errs.check(utf8.RuneCountInString(e.embed.Footer.Text) <= EmbedFooterLimit, "footer", "must be at most 2048 characters")
		total += utf8.RuneCountInString(e.embed.Footer.Text)
	}

	if e.embed.Author != nil {
		errs.check(utf8.RuneCountInString(e.embed.Author.Name) <= EmbedAuthorLimit, "author", "must be at most 256 characters")
		total += utf8.RuneCountInString(e.embed.Author.Name)
	}

	errs.check(total <= EmbedTotalLimit, "embed", "total length must be at most 6000 characters")

	if err := errs.err(); err != nil {
		return Embed{}, err
	}

	embed := e.embed
	embed.Fields = append([]EmbedField(nil), e.embed.Fields...)

	return embed, nil
}

// builderErrors accumulates argument errors raised while assembling a value.
type builderErrors []error

func (b *builderErrors) add(argument, reason string) {
	*b = append(*b, NewArgumentError(argument, reason))
}

func (b *builderErrors) check(ok bool, argument, reason string) {
	if !ok {
		b.add(argument, reason)
	}
}

func (b *builderErrors) merge(err error) {
	if err != nil {
		*b = append(*b, err)
	}
}

// err returns nil, the single error, or every error joined.
func (b builderErrors) err() error {
	switch len(b) {
	case 0:
		return nil
	case 1:
		return b[0]
	default:
		return errors.Join(b...)
	}
}
