package xmlapi

import "github.com/engagekit/go-engage/xmlmap"

// NewEnvelope wraps body in the Envelope/Body shell every Engage request
// rides in.
func NewEnvelope(body *xmlmap.Value) *xmlmap.Value {
	return xmlmap.NewMap().Set("Envelope", xmlmap.NewMap().Set("Body", body))
}
