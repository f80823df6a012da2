package pipeline

import "context"

// checkCancel is called at each suspension point spec §5 names (salt/IV
// generation, key derivation, AEAD seal/open, gzip, carrier I/O) so a
// caller that cancelled ctx gets an immediate, clean abort instead of
// paying for the rest of the pipeline first.
func checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
