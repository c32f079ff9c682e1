package tpmscore

// DefaultRegistry lists every registered TPMS decoder in dispatch order.
// Order is a contract, not cosmetic: more specific decoders (PMV-107J
// ahead of the generic Toyota-EU format) are listed first so they get the
// chance to match before a looser decoder would.
var DefaultRegistry = []*Decoder{
	pmv107jDecoder,
	elantra2012Decoder,
	bmwDecoder,
	bmwGen3Decoder,
	porscheDecoder,
	schraderSMD3MA4Decoder,
	renaultDecoder,
	toyotaEUDecoder,
	schraderGen1Decoder,
	schraderEG53MA4Decoder,
	citroenDecoder,
	fordDecoder,
	hyundaiKiaDecoder,
	gmDecoder,
}
