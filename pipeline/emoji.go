package pipeline

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"stegocore/emoj"
	"stegocore/emojicodec"
	"stegocore/internal/containererr"
	"stegocore/internal/cryptoprim"
)

// EmojiOptions configures hide_emoji and reveal_emoji. The EMOJ header
// (spec §3) stores no iterations field, unlike STEGFILE's — so hide and
// reveal must agree on Iterations out of band (typically both drawn from
// the same config.Defaults.PBKDF2Iterations).
type EmojiOptions struct {
	Encrypt    bool
	Theme      emojicodec.Theme
	Custom     []string // cover graphemes, used when Theme == ThemeCustom
	Iterations uint32   // 0 means cryptoprim.DefaultIterations
}

// HideEmoji runs the emoji hide pipeline of spec §4.G: frame, then
// encode into invisible characters scaffolded by cover graphemes. There
// is no compression step and no depth/channel ambiguity in this mode.
func HideEmoji(ctx context.Context, message string, password string, opts EmojiOptions) (string, error) {
	const op = "pipeline.HideEmoji"

	body := []byte(message)
	var crypto *emoj.CryptoParams

	if opts.Encrypt {
		if err := checkCancel(ctx); err != nil {
			return "", err
		}
		salt, err := cryptoprim.Salt()
		if err != nil {
			return "", pkgerrors.Wrap(err, op)
		}
		iv, err := cryptoprim.IV(cryptoprim.IVSize)
		if err != nil {
			return "", pkgerrors.Wrap(err, op)
		}
		if err := checkCancel(ctx); err != nil {
			return "", err
		}
		iterations := opts.Iterations
		if iterations == 0 {
			iterations = cryptoprim.DefaultIterations
		}
		key := cryptoprim.DeriveKey([]byte(password), salt, iterations)
		sealed, err := cryptoprim.Seal(key, iv, body)
		if err != nil {
			return "", pkgerrors.Wrap(err, op)
		}
		body = sealed
		crypto = &emoj.CryptoParams{Salt: salt, IV: iv}
	}

	blob, err := emoj.Build(opts.Encrypt, crypto, body)
	if err != nil {
		return "", pkgerrors.Wrap(err, op)
	}

	if err := checkCancel(ctx); err != nil {
		return "", err
	}
	encoded, err := emojicodec.Encode(blob, opts.Theme, opts.Custom)
	if err != nil {
		return "", pkgerrors.Wrap(err, op)
	}
	return encoded, nil
}

// RevealEmoji runs the emoji reveal pipeline: decode the invisible
// bitstream, validate the frame, then decrypt. Auto-detection is not
// required in this mode — there is only one way to read an EMOJ carrier.
// iterations must match whatever HideEmoji used to produce text (the
// EMOJ wire format has no iterations field to recover it from); 0 means
// cryptoprim.DefaultIterations.
func RevealEmoji(ctx context.Context, text string, password string, iterations uint32) (*RevealedText, error) {
	const op = "pipeline.RevealEmoji"

	if err := checkCancel(ctx); err != nil {
		return nil, err
	}
	blob, err := emojicodec.Decode(text)
	if err != nil {
		return nil, pkgerrors.Wrap(err, op)
	}

	header, err := emoj.Parse(blob)
	if err != nil {
		return nil, pkgerrors.Wrap(err, op)
	}

	body := header.Body
	if header.Encrypted() {
		if password == "" {
			return nil, containererr.New(containererr.KindMissingPassword, op, nil)
		}
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		if iterations == 0 {
			iterations = cryptoprim.DefaultIterations
		}
		key := cryptoprim.DeriveKey([]byte(password), header.Crypto.Salt, iterations)
		plain, err := cryptoprim.Open(key, header.Crypto.IV, body)
		if err != nil {
			return nil, containererr.New(containererr.KindAuthFailed, op, err)
		}
		body = plain
	}

	return &RevealedText{Text: string(body), WasEncrypted: header.Encrypted()}, nil
}
