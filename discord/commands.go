package discord

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/WelcomerTeam/Swyft/swyftjson"
)

var commandNameRegex = regexp.MustCompile(`^[-_\p{L}\p{N}]{1,32}$`)

// SlashCommandBuilder assembles an application command.
type SlashCommandBuilder struct {
	errs    builderErrors
	command ApplicationCommand
	kind    ApplicationCommandType
}

// NewSlashCommandBuilder returns a builder for a chat input command.
func NewSlashCommandBuilder() *SlashCommandBuilder {
	return &SlashCommandBuilder{kind: ApplicationCommandTypeChatInput}
}

// NewContextMenuBuilder returns a builder for a user or message context menu command.
func NewContextMenuBuilder(kind ApplicationCommandType) *SlashCommandBuilder {
	builder := &SlashCommandBuilder{kind: kind}

	if kind != ApplicationCommandTypeUser && kind != ApplicationCommandTypeMessage {
		builder.errs.add("type", "context menus must be user or message commands")
	}

	return builder
}

func (s *SlashCommandBuilder) SetName(name string) *SlashCommandBuilder {
	s.command.Name = name

	return s
}

func (s *SlashCommandBuilder) SetDescription(description string) *SlashCommandBuilder {
	s.command.Description = description

	return s
}

func (s *SlashCommandBuilder) SetDMPermission(allowed bool) *SlashCommandBuilder {
	s.command.DMPermission = &allowed

	return s
}

func (s *SlashCommandBuilder) SetDefaultMemberPermissions(permissions Int64) *SlashCommandBuilder {
	s.command.DefaultMemberPermission = &permissions

	return s
}

// AddOption adds an option. Options are validated by Build.
func (s *SlashCommandBuilder) AddOption(option ApplicationCommandOption) *SlashCommandBuilder {
	s.command.Options = append(s.command.Options, option)

	return s
}

// AddStringOption adds a string option, optionally limited to the given choices.
func (s *SlashCommandBuilder) AddStringOption(name, description string, required bool, choices ...string) *SlashCommandBuilder {
	option := ApplicationCommandOption{
		Type:        ApplicationCommandOptionTypeString,
		Name:        name,
		Description: description,
		Required:    required,
	}

	for _, choice := range choices {
		value, err := swyftjson.Marshal(choice)
		if err != nil {
			s.errs.merge(err)

			continue
		}

		option.Choices = append(option.Choices, ApplicationCommandOptionChoice{Name: choice, Value: value})
	}

	return s.AddOption(option)
}

func (s *SlashCommandBuilder) AddIntegerOption(name, description string, required bool) *SlashCommandBuilder {
	return s.AddOption(ApplicationCommandOption{
		Type:        ApplicationCommandOptionTypeInteger,
		Name:        name,
		Description: description,
		Required:    required,
	})
}

func (s *SlashCommandBuilder) AddBooleanOption(name, description string, required bool) *SlashCommandBuilder {
	return s.AddOption(ApplicationCommandOption{
		Type:        ApplicationCommandOptionTypeBoolean,
		Name:        name,
		Description: description,
		Required:    required,
	})
}

func (s *SlashCommandBuilder) AddUserOption(name, description string, required bool) *SlashCommandBuilder {
	return s.AddOption(ApplicationCommandOption{
		Type:        ApplicationCommandOptionTypeUser,
		Name:        name,
		Description: description,
		Required:    required,
	})
}

func (s *SlashCommandBuilder) AddChannelOption(name, description string, required bool, channelTypes ...ChannelType) *SlashCommandBuilder {
	return s.AddOption(ApplicationCommandOption{
		Type:         ApplicationCommandOptionTypeChannel,
		Name:         name,
		Description:  description,
		Required:     required,
		ChannelTypes: channelTypes,
	})
}

func (s *SlashCommandBuilder) AddRoleOption(name, description string, required bool) *SlashCommandBuilder {
	return s.AddOption(ApplicationCommandOption{
		Type:        ApplicationCommandOptionTypeRole,
		Name:        name,
		Description: description,
		Required:    required,
	})
}

func (s *SlashCommandBuilder) Build() (ApplicationCommand, error) {
	errs := append(builderErrors(nil), s.errs...)

	if s.kind == ApplicationCommandTypeChatInput {
		errs.check(commandNameRegex.MatchString(s.command.Name) && strings.ToLower(s.command.Name) == s.command.Name,
			"name", "must be 1-32 lowercase characters")
		errs.check(s.command.Description != "" && utf8.RuneCountInString(s.command.Description) <= 100,
			"description", "must be 1-100 characters")
		errs.check(len(s.command.Options) <= 25, "options", "must have at most 25 options")

		requiredAllowed := true

		for _, option := range s.command.Options {
			errs.merge(validateCommandOption(option))

			if option.Required {
				errs.check(requiredAllowed, "options", "required options must come before optional ones")
			} else {
				requiredAllowed = false
			}
		}
	} else {
		errs.check(s.command.Name != "" && utf8.RuneCountInString(s.command.Name) <= 32, "name", "must be 1-32 characters")
		errs.check(s.command.Description == "", "description", "context menus cannot have a description")
		errs.check(len(s.command.Options) == 0, "options", "context menus cannot have options")
	}

	if err := errs.err(); err != nil {
		return ApplicationCommand{}, err
	}

	command := s.command
	kind := s.kind
	command.Type = &kind
	command.Options = append([]ApplicationCommandOption(nil), s.command.Options...)

	return command, nil
}

func validateCommandOption(option ApplicationCommandOption) error {
	var errs builderErrors

	errs.check(option.Type >= ApplicationCommandOptionTypeSubCommand && option.Type <= ApplicationCommandOptionTypeAttachment,
		"option", "unknown option type")
	errs.check(commandNameRegex.MatchString(option.Name) && strings.ToLower(option.Name) == option.Name,
		"option", "name must be 1-32 lowercase characters")
	errs.check(option.Description != "" && utf8.RuneCountInString(option.Description) <= 100,
		"option", "description must be 1-100 characters")
	errs.check(len(option.Choices) <= 25, "option", "must have at most 25 choices")

	return errs.err()
}
