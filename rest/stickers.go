package rest

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

func (c *Client) GetSticker(ctx context.Context, stickerID discord.Snowflake) (*discord.Sticker, error) {
	if err := validate().id("sticker_id", stickerID).Err(); err != nil {
		return nil, err
	}

	sticker := &discord.Sticker{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointSticker(stickerID), nil, nil, sticker); err != nil {
		return nil, err
	}

	return sticker, nil
}

func (c *Client) ListStickerPacks(ctx context.Context) ([]discord.StickerPack, error) {
	packs := &discord.StickerPackList{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointStickerPacks, nil, nil, packs); err != nil {
		return nil, err
	}

	return packs.StickerPacks, nil
}

func (c *Client) ListGuildStickers(ctx context.Context, guildID discord.Snowflake) ([]discord.Sticker, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var stickers []discord.Sticker

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildStickers(guildID), nil, nil, &stickers); err != nil {
		return nil, err
	}

	return stickers, nil
}

func (c *Client) GetGuildSticker(ctx context.Context, guildID, stickerID discord.Snowflake) (*discord.Sticker, error) {
	if err := validate().id("guild_id", guildID).id("sticker_id", stickerID).Err(); err != nil {
		return nil, err
	}

	sticker := &discord.Sticker{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildSticker(guildID, stickerID), nil, nil, sticker); err != nil {
		return nil, err
	}

	return sticker, nil
}

// CreateGuildSticker uploads a sticker. The route only accepts form data so the fields are
// sent as plain parts rather than payload_json.
func (c *Client) CreateGuildSticker(ctx context.Context, guildID discord.Snowflake, params discord.CreateStickerParams, reason string) (*discord.Sticker, error) {
	if err := validate().
		id("guild_id", guildID).
		between("name", len(params.Name), 2, 30, false).
		between("tags", len(params.Tags), 1, 200, false).
		check(params.Description == "" || (len(params.Description) >= 2 && len(params.Description) <= 100), "description", "must be 2-100 characters").
		check(params.File != nil, "file", "is required").
		Err(); err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for field, value := range map[string]string{
		"name":        params.Name,
		"description": params.Description,
		"tags":        params.Tags,
	} {
		if err := writer.WriteField(field, value); err != nil {
			return nil, fmt.Errorf("failed to write %s field: %w", field, err)
		}
	}

	if err := writeFilePart(writer, "file", *params.File); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	sticker := &discord.Sticker{}

	if err := c.FetchBJ(ctx, http.MethodPost, EndpointGuildStickers(guildID), writer.FormDataContentType(), body.Bytes(), withReason(reason), sticker); err != nil {
		return nil, err
	}

	return sticker, nil
}

func (c *Client) ModifyGuildSticker(ctx context.Context, guildID, stickerID discord.Snowflake, params discord.ModifyStickerParams, reason string) (*discord.Sticker, error) {
	v := validate().id("guild_id", guildID).id("sticker_id", stickerID)
	if params.Name != nil {
		v.between("name", len(*params.Name), 2, 30, false)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	sticker := &discord.Sticker{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildSticker(guildID, stickerID), params, withReason(reason), sticker); err != nil {
		return nil, err
	}

	return sticker, nil
}

func (c *Client) DeleteGuildSticker(ctx context.Context, guildID, stickerID discord.Snowflake, reason string) error {
	if err := validate().id("guild_id", guildID).id("sticker_id", stickerID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointGuildSticker(guildID, stickerID), nil, withReason(reason), nil)
}
