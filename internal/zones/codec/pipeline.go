package codec

import (
	"errors"
	"fmt"

	"github.com/zonekit/zoned/internal/zones/common/log"
	"github.com/zonekit/zoned/internal/zones/common/utils"
	"github.com/zonekit/zoned/internal/zones/domain"
)

// Convert transforms one zone document into its unique set of typed
// resource records. Each record is processed independently: a record
// that fails the context filter is dropped silently, a structurally
// defective or invalid record is logged and dropped, and a record of
// an unknown type is offered to the custom parser chain and dropped
// silently if no decoder claims it. One malformed record never
// prevents the rest of the zone from loading.
//
// The caller supplies the policy and chain as snapshots; Convert never
// reads shared mutable state and is safe to run concurrently.
func Convert(doc domain.ZoneDocument, policy *domain.ContextPolicy, chain []domain.RecordDecoder, logger log.Logger) domain.ConversionResult {
	if logger == nil {
		logger = log.GetLogger()
	}

	records := make([]domain.ResourceRecord, 0, len(doc.Records))
	seen := make(map[string]struct{}, len(doc.Records))

	for _, raw := range doc.Records {
		if raw.Data == nil {
			logger.Error(map[string]any{
				"zone": doc.Name,
				"name": raw.Name,
				"type": raw.Type,
			}, "record has null data")
			continue
		}
		if !PassesContext(raw.Context, policy) {
			continue // excluded by deployment context, routine
		}
		rr, err := Decode(raw)
		if errors.Is(err, ErrUnsupportedType) {
			var ok bool
			rr, ok = tryChain(raw, chain)
			if !ok {
				continue // unknown type with no custom decoder, routine
			}
			if rr == nil {
				// A decoder that claims a record must return one.
				logger.Error(map[string]any{
					"zone": doc.Name,
					"name": raw.Name,
					"type": raw.Type,
				}, "custom decoder claimed record without producing one")
				continue
			}
		} else if err != nil {
			logger.Error(map[string]any{
				"zone":  doc.Name,
				"name":  raw.Name,
				"type":  raw.Type,
				"data":  raw.Data,
				"error": err.Error(),
			}, "dropping invalid record")
			continue
		}
		key := identityKey(rr)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, rr)
	}

	return domain.ConversionResult{
		Name:    doc.Name,
		Hash:    doc.Hash,
		Records: records,
	}
}

// tryChain offers a record the built-in decoder did not recognize to
// the custom decoders, strictly in registration order. The first
// decoder to claim the record wins.
func tryChain(raw domain.RawRecord, chain []domain.RecordDecoder) (domain.ResourceRecord, bool) {
	for _, decoder := range chain {
		if rr, ok := decoder.Decode(raw); ok {
			return rr, true
		}
	}
	return nil, false
}

// identityKey derives the structural identity of a record for
// deduplication: concrete type, type code, canonical owner name, ttl,
// and the presentation form of every type-specific field.
func identityKey(rr domain.ResourceRecord) string {
	h := rr.Header()
	return fmt.Sprintf("%T|%d|%s|%d|%s", rr, rr.Type(), utils.CanonicalName(h.Name), h.TTL, rr.RData())
}
