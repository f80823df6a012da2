package pipeline

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"stegocore/imgcodec"
	"stegocore/internal/containererr"
	"stegocore/internal/cryptoprim"
	"stegocore/stegfile"
)

// HideImage runs the image hide pipeline of spec §4.G: compress →
// encrypt → frame → embed.
func HideImage(ctx context.Context, carrier *imgcodec.Image, payload PayloadDescriptor, opts HideImageOptions) (*imgcodec.Image, error) {
	const op = "pipeline.HideImage"

	flags := mimeFlags(payload.Mime)
	raw := payload.Bytes
	originalSize := uint64(len(raw))
	current := raw

	if opts.Compress {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		if compressed, ok, err := cryptoprim.CompressOpportunistic(current); err != nil {
			return nil, pkgerrors.Wrap(err, op)
		} else if ok {
			current = compressed
			flags |= stegfile.FlagCompressed
		}
	}

	var crypto *stegfile.CryptoParams
	if opts.Encrypt {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		salt, err := cryptoprim.Salt()
		if err != nil {
			return nil, pkgerrors.Wrap(err, op)
		}
		iv, err := cryptoprim.IV(cryptoprim.IVSize)
		if err != nil {
			return nil, pkgerrors.Wrap(err, op)
		}
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		iterations := opts.Iterations
		if iterations == 0 {
			iterations = cryptoprim.DefaultIterations
		}
		key := cryptoprim.DeriveKey([]byte(opts.Password), salt, iterations)
		sealed, err := cryptoprim.Seal(key, iv, current)
		if err != nil {
			return nil, pkgerrors.Wrap(err, op)
		}
		current = sealed
		flags |= stegfile.FlagEncrypted
		crypto = &stegfile.CryptoParams{Salt: salt, Iterations: iterations, IV: iv}
	}

	blob, err := stegfile.Build(
		stegfile.Descriptor{Name: payload.Name, Mime: payload.Mime},
		originalSize, flags, crypto, current,
	)
	if err != nil {
		return nil, pkgerrors.Wrap(err, op)
	}

	if err := checkCancel(ctx); err != nil {
		return nil, err
	}
	out, err := imgcodec.Embed(carrier, blob, opts.Depth, opts.UseAlpha)
	if err != nil {
		return nil, pkgerrors.Wrap(err, op)
	}
	return out, nil
}

// attempt is one (depth, use_alpha) configuration the reveal
// auto-detection loop tries.
type attempt struct {
	Depth    int
	UseAlpha bool
}

// attemptOrder is the canonical trial order — (d=1,α=false), (d=1,α=true),
// (d=2,α=false), ..., (d=4,α=true) — per spec §4.G/§9.
func attemptOrder() []attempt {
	order := make([]attempt, 0, 8)
	for d := 1; d <= 4; d++ {
		order = append(order, attempt{d, false}, attempt{d, true})
	}
	return order
}

// RevealImage runs the image reveal pipeline: auto-detect depth/alpha,
// validate the frame, then decrypt/decompress, per spec §4.G.
func RevealImage(ctx context.Context, carrier *imgcodec.Image, password string) (*RevealedPayload, error) {
	const op = "pipeline.RevealImage"

	var header *stegfile.Header
	var extracted []byte

	for _, a := range attemptOrder() {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		stream := imgcodec.ExtractByteStream(carrier, a.Depth, a.UseAlpha)
		if stegfile.LooksLegacy(stream) {
			return nil, containererr.New(containererr.KindLegacyFormat, op, nil)
		}

		h, err := stegfile.Parse(stream)
		if err != nil {
			if errors.Is(err, containererr.ErrBadMagic) {
				continue
			}
			return nil, pkgerrors.Wrap(err, op)
		}
		header, extracted = h, stream
		break
	}
	if header == nil {
		return nil, containererr.New(containererr.KindBadMagic, op, nil)
	}

	body := header.Body(extracted)

	if header.Flags.Has(stegfile.FlagEncrypted) {
		if password == "" {
			return nil, containererr.New(containererr.KindMissingPassword, op, nil)
		}
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		key := cryptoprim.DeriveKey([]byte(password), header.Crypto.Salt, header.Crypto.Iterations)
		plain, err := cryptoprim.Open(key, header.Crypto.IV, body)
		if err != nil {
			return nil, containererr.New(containererr.KindAuthFailed, op, err)
		}
		body = plain
	}

	wasCompressed := header.Flags.Has(stegfile.FlagCompressed)
	if wasCompressed {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		plain, err := cryptoprim.Decompress(body)
		if err != nil {
			return nil, pkgerrors.Wrap(err, op)
		}
		body = plain
	}

	return &RevealedPayload{
		Name:          header.Descriptor.Name,
		Mime:          header.Descriptor.Mime,
		Bytes:         body,
		OriginalSize:  header.OriginalSize,
		WasEncrypted:  header.Flags.Has(stegfile.FlagEncrypted),
		WasCompressed: wasCompressed,
	}, nil
}
