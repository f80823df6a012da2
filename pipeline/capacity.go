package pipeline

import (
	"stegocore/imgcodec"
	"stegocore/internal/cryptoprim"
	"stegocore/stegfile"
)

// EstimateCapacity answers estimate_capacity(w, h, depth, use_alpha,
// encrypt, name, mime) per spec §6: how many header bytes a STEGFILE
// container for this descriptor/encryption mode needs, and how many
// raw payload bytes the remaining carrier space can hold.
func EstimateCapacity(width, height, depth int, useAlpha, encrypt bool, name, mime string) (CapacityReport, error) {
	headerSize, err := stegfile.HeaderSize(stegfile.Descriptor{Name: name, Mime: mime}, encrypt)
	if err != nil {
		return CapacityReport{}, err
	}

	bytesAvailable := imgcodec.BytesAvailable(width, height, depth, useAlpha)
	tagCharge := 0
	if encrypt {
		tagCharge = cryptoprim.TagSize
	}
	capacity := bytesAvailable - headerSize - tagCharge
	if capacity < 0 {
		capacity = 0
	}

	withAlpha := imgcodec.BytesAvailable(width, height, depth, true)
	withoutAlpha := imgcodec.BytesAvailable(width, height, depth, false)

	return CapacityReport{
		HeaderSize:        headerSize,
		PayloadCapacity:   capacity,
		AlphaCapacityGain: withAlpha - withoutAlpha,
	}, nil
}
