package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// decodeSSHFP decodes an SSHFP record from its attribute mapping. The
// fp field is consumed as consecutive 2-character hex groups; odd
// length or a non-hex digit is an error and drops the record.
func decodeSSHFP(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"alg": 1, "fptype": 1, "fp": "21CC4A7E..."}
	fp := fieldString(data, "fp")
	raw, err := hex.DecodeString(fp)
	if err != nil {
		return nil, fmt.Errorf("invalid SSHFP fingerprint %q: %w", fp, err)
	}
	return domain.SSHFP{
		RRHeader:        h,
		Algorithm:       fieldUint8(data, "alg"),
		FingerprintType: fieldUint8(data, "fptype"),
		Fingerprint:     raw,
	}, nil
}
