package discord

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var customEmojiRegex = regexp.MustCompile(`^<(a)?:(\w+):(\d+)>$`)

// MaxActionRowComponents is the number of components an action row can hold.
const MaxActionRowComponents = 5

// ParseButtonStyle converts primary, secondary, success, danger or link into a
// component style. Matching is case-insensitive.
func ParseButtonStyle(style string) (InteractionComponentStyle, bool) {
	switch cases.Fold().String(strings.TrimSpace(style)) {
	case "primary":
		return InteractionComponentStylePrimary, true
	case "secondary":
		return InteractionComponentStyleSecondary, true
	case "success":
		return InteractionComponentStyleSuccess, true
	case "danger":
		return InteractionComponentStyleDanger, true
	case "link":
		return InteractionComponentStyleLink, true
	default:
		return 0, false
	}
}

// ParseEmoji turns either a unicode emoji or a custom emoji in its <a:name:id>
// message form into an Emoji.
func ParseEmoji(emoji string) (*Emoji, error) {
	if emoji == "" {
		return nil, NewArgumentError("emoji", "must not be empty")
	}

	if match := customEmojiRegex.FindStringSubmatch(emoji); match != nil {
		id, err := ParseSnowflake(match[3])
		if err != nil {
			return nil, NewArgumentError("emoji", err.Error())
		}

		return &Emoji{Name: match[2], ID: id, Animated: match[1] == "a"}, nil
	}

	if strings.ContainsAny(emoji, "<>: ") {
		return nil, NewArgumentError("emoji", "must be a unicode emoji or <:name:id>")
	}

	return &Emoji{Name: emoji}, nil
}

// ButtonBuilder assembles a button component.
type ButtonBuilder struct {
	errs      builderErrors
	component InteractionComponent
}

func NewButtonBuilder() *ButtonBuilder {
	return &ButtonBuilder{component: InteractionComponent{
		Type:  InteractionComponentTypeButton,
		Style: InteractionComponentStylePrimary,
	}}
}

// SetStyle accepts primary, secondary, success or danger. Link is implied by SetURL.
func (b *ButtonBuilder) SetStyle(style string) *ButtonBuilder {
	parsed, ok := ParseButtonStyle(style)
	if !ok || parsed == InteractionComponentStyleLink {
		b.errs.add("style", "must be one of primary, secondary, success, danger")

		return b
	}

	b.component.Style = parsed

	return b
}

func (b *ButtonBuilder) SetLabel(label string) *ButtonBuilder {
	b.component.Label = label

	return b
}

func (b *ButtonBuilder) SetEmoji(emoji string) *ButtonBuilder {
	parsed, err := ParseEmoji(emoji)
	if err != nil {
		b.errs.merge(err)

		return b
	}

	b.component.Emoji = parsed

	return b
}

func (b *ButtonBuilder) SetCustomID(customID string) *ButtonBuilder {
	b.component.CustomID = customID

	return b
}

// SetURL turns the button into a link button.
func (b *ButtonBuilder) SetURL(url string) *ButtonBuilder {
	b.component.URL = url
	b.component.Style = InteractionComponentStyleLink

	return b
}

func (b *ButtonBuilder) SetDisabled(disabled bool) *ButtonBuilder {
	b.component.Disabled = disabled

	return b
}

func (b *ButtonBuilder) Build() (InteractionComponent, error) {
	errs := append(builderErrors(nil), b.errs...)

	errs.check(b.component.Label != "" || b.component.Emoji != nil, "label", "a label or emoji is required")
	errs.check(len(b.component.Label) <= 80, "label", "must be at most 80 characters")
	errs.check((b.component.CustomID == "") != (b.component.URL == ""), "custom_id", "exactly one of custom id or url is required")
	errs.check(len(b.component.CustomID) <= 100, "custom_id", "must be at most 100 characters")

	if err := errs.err(); err != nil {
		return InteractionComponent{}, err
	}

	return b.component, nil
}

// SelectMenuBuilder assembles a string select menu.
type SelectMenuBuilder struct {
	errs      builderErrors
	component InteractionComponent
}

func NewSelectMenuBuilder() *SelectMenuBuilder {
	minValues, maxValues := int32(1), int32(1)

	return &SelectMenuBuilder{component: InteractionComponent{
		Type:      InteractionComponentTypeStringSelect,
		MinValues: &minValues,
		MaxValues: &maxValues,
	}}
}

func (s *SelectMenuBuilder) SetCustomID(customID string) *SelectMenuBuilder {
	s.component.CustomID = customID

	return s
}

func (s *SelectMenuBuilder) SetPlaceholder(placeholder string) *SelectMenuBuilder {
	s.component.Placeholder = placeholder

	return s
}

func (s *SelectMenuBuilder) SetMinValues(minValues int32) *SelectMenuBuilder {
	s.component.MinValues = &minValues

	return s
}

func (s *SelectMenuBuilder) SetMaxValues(maxValues int32) *SelectMenuBuilder {
	s.component.MaxValues = &maxValues

	return s
}

// AddOption adds an option. Label, value and description are all required.
func (s *SelectMenuBuilder) AddOption(option ApplicationSelectOption) *SelectMenuBuilder {
	if option.Label == "" || option.Value == "" || option.Description == "" {
		s.errs.add("option", "label, value and description are required")

		return s
	}

	s.component.Options = append(s.component.Options, option)

	return s
}

func (s *SelectMenuBuilder) Build() (InteractionComponent, error) {
	errs := append(builderErrors(nil), s.errs...)

	minValues, maxValues := *s.component.MinValues, *s.component.MaxValues

	errs.check(s.component.CustomID != "", "custom_id", "is required")
	errs.check(len(s.component.Options) > 0, "options", "at least one option is required")
	errs.check(len(s.component.Options) <= 25, "options", "must have at most 25 options")
	errs.check(minValues >= 0 && minValues <= maxValues, "min_values", "must be between 0 and max values")
	errs.check(maxValues >= 1 && int(maxValues) <= max(len(s.component.Options), 1), "max_values", "must be between 1 and the number of options")

	if err := errs.err(); err != nil {
		return InteractionComponent{}, err
	}

	component := s.component
	component.Options = append([]ApplicationSelectOption(nil), s.component.Options...)

	return component, nil
}

// TextInputBuilder assembles a text input. Text inputs are only valid in modals.
type TextInputBuilder struct {
	errs      builderErrors
	component InteractionComponent
}

func NewTextInputBuilder() *TextInputBuilder {
	return &TextInputBuilder{component: InteractionComponent{
		Type:  InteractionComponentTypeTextInput,
		Style: InteractionComponentStyleShort,
	}}
}

func (t *TextInputBuilder) SetCustomID(customID string) *TextInputBuilder {
	t.component.CustomID = customID

	return t
}

func (t *TextInputBuilder) SetLabel(label string) *TextInputBuilder {
	t.component.Label = label

	return t
}

// SetStyle accepts short or paragraph.
func (t *TextInputBuilder) SetStyle(style string) *TextInputBuilder {
	switch cases.Fold().String(strings.TrimSpace(style)) {
	case "short":
		t.component.Style = InteractionComponentStyleShort
	case "paragraph", "long":
		t.component.Style = InteractionComponentStyleParagraph
	default:
		t.errs.add("style", "must be short or paragraph")
	}

	return t
}

func (t *TextInputBuilder) SetPlaceholder(placeholder string) *TextInputBuilder {
	t.component.Placeholder = placeholder

	return t
}

func (t *TextInputBuilder) SetValue(value string) *TextInputBuilder {
	t.component.Value = value

	return t
}

func (t *TextInputBuilder) SetMinLength(minLength int32) *TextInputBuilder {
	t.component.MinLength = &minLength

	return t
}

func (t *TextInputBuilder) SetMaxLength(maxLength int32) *TextInputBuilder {
	t.component.MaxLength = &maxLength

	return t
}

func (t *TextInputBuilder) SetRequired(required bool) *TextInputBuilder {
	t.component.Required = &required

	return t
}

func (t *TextInputBuilder) Build() (InteractionComponent, error) {
	errs := append(builderErrors(nil), t.errs...)

	errs.check(t.component.CustomID != "", "custom_id", "is required")
	errs.check(t.component.Label != "", "label", "is required")

	if t.component.MinLength != nil {
		errs.check(*t.component.MinLength >= 0 && *t.component.MinLength <= 4000, "min_length", "must be between 0 and 4000")
	}

	if t.component.MaxLength != nil {
		errs.check(*t.component.MaxLength >= 1 && *t.component.MaxLength <= 4000, "max_length", "must be between 1 and 4000")
	}

	if t.component.MinLength != nil && t.component.MaxLength != nil {
		errs.check(*t.component.MinLength <= *t.component.MaxLength, "min_length", "must not exceed max length")
	}

	if err := errs.err(); err != nil {
		return InteractionComponent{}, err
	}

	return t.component, nil
}

// ActionRowBuilder assembles an action row holding up to 5 components.
type ActionRowBuilder struct {
	components []InteractionComponent
}

func NewActionRowBuilder() *ActionRowBuilder {
	return &ActionRowBuilder{}
}

func (a *ActionRowBuilder) AddComponent(component InteractionComponent) *ActionRowBuilder {
	a.components = append(a.components, component)

	return a
}

func (a *ActionRowBuilder) Build() (InteractionComponent, error) {
	var errs builderErrors

	errs.check(len(a.components) > 0, "components", "at least one component is required")
	errs.check(len(a.components) <= MaxActionRowComponents, "components", "must have at most 5 components")

	for _, component := range a.components {
		errs.check(component.Type != InteractionComponentTypeActionRow, "components", "action rows cannot be nested")
	}

	if err := errs.err(); err != nil {
		return InteractionComponent{}, err
	}

	return InteractionComponent{
		Type:       InteractionComponentTypeActionRow,
		Components: append([]InteractionComponent(nil), a.components...),
	}, nil
}

// ModalBuilder assembles a modal response. Each text input is placed in its own action row.
type ModalBuilder struct {
	customID string
	title    string
	rows     []InteractionComponent
}

func NewModalBuilder() *ModalBuilder {
	return &ModalBuilder{}
}

func (m *ModalBuilder) SetCustomID(customID string) *ModalBuilder {
	m.customID = customID

	return m
}

func (m *ModalBuilder) SetTitle(title string) *ModalBuilder {
	m.title = title

	return m
}

// AddComponent adds a text input or an action row containing text inputs.
func (m *ModalBuilder) AddComponent(component InteractionComponent) *ModalBuilder {
	if component.Type != InteractionComponentTypeActionRow {
		component = InteractionComponent{
			Type:       InteractionComponentTypeActionRow,
			Components: []InteractionComponent{component},
		}
	}

	m.rows = append(m.rows, component)

	return m
}

// Build returns the interaction response that shows the modal.
func (m *ModalBuilder) Build() (InteractionResponse, error) {
	var errs builderErrors

	errs.check(m.customID != "", "custom_id", "is required")
	errs.check(m.title != "", "title", "is required")
	errs.check(len(m.title) <= 45, "title", "must be at most 45 characters")
	errs.check(len(m.rows) > 0, "components", "at least one text input is required")
	errs.check(len(m.rows) <= MaxActionRowComponents, "components", "must have at most 5 rows")

	for _, row := range m.rows {
		for _, component := range row.Components {
			errs.check(component.Type == InteractionComponentTypeTextInput, "components", "modals only accept text inputs")
		}
	}

	if err := errs.err(); err != nil {
		return InteractionResponse{}, err
	}

	return InteractionResponse{
		Type: InteractionCallbackTypeModal,
		Data: &InteractionCallbackData{
			CustomID:   m.customID,
			Title:      m.title,
			Components: append([]InteractionComponent(nil), m.rows...),
		},
	}, nil
}
