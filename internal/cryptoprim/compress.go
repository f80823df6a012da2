package cryptoprim

import (
	"bytes"
	"compress/gzip"
	"io"
)

// Compress gzips data. Callers wanting the opportunistic-compression
// behavior from spec §4.B/§4.G should use CompressOpportunistic instead;
// this is the raw primitive.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, gz); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// CompressOpportunistic gzips data and reports whether the result was kept.
// If the compressed form is not strictly smaller than data, it is
// discarded and the original bytes are returned with ok == false — the
// orchestrator clears the COMPRESSED flag in that case.
func CompressOpportunistic(data []byte) (out []byte, ok bool, err error) {
	compressed, err := Compress(data)
	if err != nil {
		return nil, false, err
	}
	if len(compressed) < len(data) {
		return compressed, true, nil
	}
	return data, false, nil
}
