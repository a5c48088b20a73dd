package icao24

// Range is a closed interval of ICAO addresses, inclusive at both ends.
type Range struct {
	Low  uint32
	High uint32
}

// Contains reports whether v lies within r.
func (r Range) Contains(v Address) bool {
	return uint64(r.Low) <= uint64(v) && uint64(v) <= uint64(r.High)
}

// CountryBlock maps a range to the ISO 3166-1 alpha-2 code of the state of
// registry it is allocated to.
type CountryBlock struct {
	Range
	Code string
}

// ReservedBlock is a range held back by ICAO for future allocation or
// special use.
type ReservedBlock struct {
	Range
	Purpose string
}

const (
	purposeFuture     = "Reserved for future use"
	purposeSafety     = "ICAO (Special use in the interest of flight safety)"
	purposeTemporary  = "ICAO (Temporary assignment)"
	purposeFutureAFI  = purposeFuture + " (AFI region)"
	purposeFutureSAM  = purposeFuture + " (SAM region)"
	purposeFutureEUR  = purposeFuture + " (EUR & NAT regions)"
	purposeFutureMID  = purposeFuture + " (MID region)"
	purposeFutureASIA = purposeFuture + " (ASIA region)"
	purposeFutureNAM  = purposeFuture + " (NAM & PAC regions)"
	purposeFutureCAR  = purposeFuture + " (CAR region)"
)

// Allocations from ICAO Annex 10 Vol III, sorted by low bound.
var countryBlocks = [...]CountryBlock{
	{Range{0x004000, 0x0043ff}, "ZW"},
	{Range{0x006000, 0x006fff}, "MZ"},
	{Range{0x008000, 0x00ffff}, "ZA"},
	{Range{0x010000, 0x017fff}, "EG"},
	{Range{0x018000, 0x01ffff}, "LY"},
	{Range{0x020000, 0x027fff}, "MA"},
	{Range{0x028000, 0x02ffff}, "TN"},
	{Range{0x030000, 0x0303ff}, "BW"},
	{Range{0x032000, 0x032fff}, "BI"},
	{Range{0x034000, 0x034fff}, "CM"},
	{Range{0x035000, 0x0353ff}, "KM"},
	{Range{0x036000, 0x036fff}, "CG"},
	{Range{0x038000, 0x038fff}, "CI"},
	{Range{0x03e000, 0x03efff}, "GA"},
	{Range{0x040000, 0x040fff}, "ET"},
	{Range{0x042000, 0x042fff}, "GQ"},
	{Range{0x044000, 0x044fff}, "GH"},
	{Range{0x046000, 0x046fff}, "GN"},
	{Range{0x048000, 0x0483ff}, "GW"},
	{Range{0x04a000, 0x04a3ff}, "LS"},
	{Range{0x04c000, 0x04cfff}, "KE"},
	{Range{0x050000, 0x050fff}, "LR"},
	{Range{0x054000, 0x054fff}, "MG"},
	{Range{0x058000, 0x058fff}, "MW"},
	{Range{0x05a000, 0x05a3ff}, "MV"},
	{Range{0x05c000, 0x05cfff}, "ML"},
	{Range{0x05e000, 0x05e3ff}, "MR"},
	{Range{0x060000, 0x0603ff}, "MU"},
	{Range{0x062000, 0x062fff}, "NE"},
	{Range{0x064000, 0x064fff}, "NG"},
	{Range{0x068000, 0x068fff}, "UG"},
	{Range{0x06a000, 0x06a3ff}, "QA"},
	{Range{0x06c000, 0x06cfff}, "CF"},
	{Range{0x06e000, 0x06efff}, "RW"},
	{Range{0x070000, 0x070fff}, "SN"},
	{Range{0x074000, 0x0743ff}, "SC"},
	{Range{0x076000, 0x0763ff}, "SL"},
	{Range{0x078000, 0x078fff}, "SO"},
	{Range{0x07a000, 0x07a3ff}, "SZ"},
	{Range{0x07c000, 0x07cfff}, "SD"},
	{Range{0x080000, 0x080fff}, "TZ"},
	{Range{0x084000, 0x084fff}, "TD"},
	{Range{0x088000, 0x088fff}, "TG"},
	{Range{0x08a000, 0x08afff}, "ZM"},
	{Range{0x08c000, 0x08cfff}, "CD"},
	{Range{0x090000, 0x090fff}, "AO"},
	{Range{0x094000, 0x0943ff}, "BJ"},
	{Range{0x096000, 0x0963ff}, "CV"},
	{Range{0x098000, 0x0983ff}, "DJ"},
	{Range{0x09a000, 0x09afff}, "GM"},
	{Range{0x09c000, 0x09cfff}, "BF"},
	{Range{0x09e000, 0x09e3ff}, "ST"},
	{Range{0x0a0000, 0x0a7fff}, "DZ"},
	{Range{0x0a8000, 0x0a8fff}, "BS"},
	{Range{0x0aa000, 0x0aa3ff}, "BB"},
	{Range{0x0ab000, 0x0ab3ff}, "BZ"},
	{Range{0x0ac000, 0x0acfff}, "CO"},
	{Range{0x0ae000, 0x0aefff}, "CR"},
	{Range{0x0b0000, 0x0b0fff}, "CU"},
	{Range{0x0b2000, 0x0b2fff}, "SV"},
	{Range{0x0b4000, 0x0b4fff}, "GT"},
	{Range{0x0b6000, 0x0b6fff}, "GY"},
	{Range{0x0b8000, 0x0b8fff}, "HT"},
	{Range{0x0ba000, 0x0bafff}, "HN"},
	{Range{0x0bc000, 0x0bc3ff}, "VC"},
	{Range{0x0be000, 0x0befff}, "JM"},
	{Range{0x0c0000, 0x0c0fff}, "NI"},
	{Range{0x0c2000, 0x0c2fff}, "PA"},
	{Range{0x0c4000, 0x0c4fff}, "DM"},
	{Range{0x0c6000, 0x0c6fff}, "TT"},
	{Range{0x0c8000, 0x0c8fff}, "SR"},
	{Range{0x0ca000, 0x0ca3ff}, "AG"},
	{Range{0x0cc000, 0x0cc3ff}, "GD"},
	{Range{0x0d0000, 0x0d7fff}, "MX"},
	{Range{0x0d8000, 0x0dffff}, "VE"},
	{Range{0x100000, 0x1fffff}, "RU"},
	{Range{0x201000, 0x2013ff}, "NA"},
	{Range{0x202000, 0x2023ff}, "ER"},
	{Range{0x300000, 0x33ffff}, "IT"},
	{Range{0x340000, 0x37ffff}, "ES"},
	{Range{0x380000, 0x3bffff}, "FR"},
	{Range{0x3c0000, 0x3fffff}, "DE"},
	{Range{0x400000, 0x43ffff}, "GB"},
	{Range{0x440000, 0x447fff}, "AT"},
	{Range{0x448000, 0x44ffff}, "BE"},
	{Range{0x450000, 0x457fff}, "BG"},
	{Range{0x458000, 0x45ffff}, "DK"},
	{Range{0x460000, 0x467fff}, "FI"},
	{Range{0x468000, 0x46ffff}, "GR"},
	{Range{0x470000, 0x477fff}, "HU"},
	{Range{0x478000, 0x47ffff}, "NO"},
	{Range{0x480000, 0x487fff}, "NL"},
	{Range{0x488000, 0x48ffff}, "PL"},
	{Range{0x490000, 0x497fff}, "PT"},
	{Range{0x498000, 0x49ffff}, "CZ"},
	{Range{0x4a8000, 0x4affff}, "SE"},
	{Range{0x4b0000, 0x4b7fff}, "CH"},
	{Range{0x4b8000, 0x4bffff}, "TR"},
	{Range{0x4c8000, 0x4c83ff}, "CY"},
	{Range{0x4ca000, 0x4cafff}, "IE"},
	{Range{0x4cc000, 0x4ccfff}, "IS"},
	{Range{0x4d0000, 0x4d03ff}, "LU"},
	{Range{0x4d2000, 0x4d23ff}, "MT"},
	{Range{0x4d4000, 0x4d43ff}, "MC"},
	{Range{0x500000, 0x5003ff}, "SM"},
	{Range{0x501000, 0x5013ff}, "AL"},
	{Range{0x501c00, 0x501fff}, "HR"},
	{Range{0x502c00, 0x502fff}, "LV"},
	{Range{0x503c00, 0x503fff}, "LT"},
	{Range{0x504c00, 0x504fff}, "MD"},
	{Range{0x505c00, 0x505fff}, "SK"},
	{Range{0x506c00, 0x506fff}, "SI"},
	{Range{0x507c00, 0x507fff}, "UZ"},
	{Range{0x508000, 0x50ffff}, "UA"},
	{Range{0x510000, 0x5103ff}, "BY"},
	{Range{0x511000, 0x5113ff}, "EE"},
	{Range{0x512000, 0x5123ff}, "MK"},
	{Range{0x513000, 0x5133ff}, "BA"},
	{Range{0x514000, 0x5143ff}, "GE"},
	{Range{0x515000, 0x5153ff}, "TJ"},
	{Range{0x600000, 0x6003ff}, "AM"},
	{Range{0x600800, 0x600bff}, "AZ"},
	{Range{0x601000, 0x6013ff}, "KG"},
	{Range{0x601800, 0x601bff}, "TM"},
	{Range{0x680000, 0x6803ff}, "BT"},
	{Range{0x681000, 0x6813ff}, "FM"},
	{Range{0x682000, 0x6823ff}, "MN"},
	{Range{0x683000, 0x6833ff}, "KZ"},
	{Range{0x684000, 0x6843ff}, "PW"},
	{Range{0x700000, 0x700fff}, "AF"},
	{Range{0x702000, 0x702fff}, "BD"},
	{Range{0x704000, 0x704fff}, "MM"},
	{Range{0x706000, 0x706fff}, "KW"},
	{Range{0x708000, 0x708fff}, "LA"},
	{Range{0x70a000, 0x70afff}, "NP"},
	{Range{0x70c000, 0x70c3ff}, "OM"},
	{Range{0x70e000, 0x70efff}, "KH"},
	{Range{0x710000, 0x717fff}, "SA"},
	{Range{0x718000, 0x71ffff}, "KR"},
	{Range{0x720000, 0x727fff}, "KP"},
	{Range{0x730000, 0x737fff}, "IR"},
	{Range{0x738000, 0x73ffff}, "IL"},
	{Range{0x740000, 0x747fff}, "JO"},
	{Range{0x748000, 0x74ffff}, "LB"},
	{Range{0x750000, 0x757fff}, "MY"},
	{Range{0x758000, 0x75ffff}, "PH"},
	{Range{0x760000, 0x767fff}, "PK"},
	{Range{0x768000, 0x76ffff}, "SG"},
	{Range{0x770000, 0x777fff}, "LK"},
	{Range{0x778000, 0x77ffff}, "SY"},
	{Range{0x780000, 0x7bffff}, "CN"},
	{Range{0x7c0000, 0x7fffff}, "AU"},
	{Range{0x800000, 0x83ffff}, "IN"},
	{Range{0x840000, 0x87ffff}, "JP"},
	{Range{0x880000, 0x887fff}, "TH"},
	{Range{0x888000, 0x88ffff}, "VN"},
	{Range{0x890000, 0x890fff}, "YE"},
	{Range{0x894000, 0x894fff}, "BH"},
	{Range{0x895000, 0x8953ff}, "BN"},
	{Range{0x896000, 0x896fff}, "AE"},
	{Range{0x897000, 0x8973ff}, "SB"},
	{Range{0x898000, 0x898fff}, "PG"},
	{Range{0x899000, 0x8993ff}, "TW"},
	{Range{0x8a0000, 0x8a7fff}, "ID"},
	{Range{0x900000, 0x9003ff}, "MH"},
	{Range{0x901000, 0x9013ff}, "CK"},
	{Range{0x902000, 0x9023ff}, "WS"},
	{Range{0xa00000, 0xafffff}, "US"},
	{Range{0xc00000, 0xc3ffff}, "CA"},
	{Range{0xc80000, 0xc87fff}, "NZ"},
	{Range{0xc88000, 0xc88fff}, "FJ"},
	{Range{0xc8a000, 0xc8a3ff}, "NR"},
	{Range{0xc8c000, 0xc8c3ff}, "LC"},
	{Range{0xc8d000, 0xc8d3ff}, "TO"},
	{Range{0xc8e000, 0xc8e3ff}, "KI"},
	{Range{0xc90000, 0xc903ff}, "VU"},
	{Range{0xe00000, 0xe3ffff}, "AR"},
	{Range{0xe40000, 0xe7ffff}, "BR"},
	{Range{0xe80000, 0xe80fff}, "CL"},
	{Range{0xe84000, 0xe84fff}, "EC"},
	{Range{0xe88000, 0xe88fff}, "PY"},
	{Range{0xe8c000, 0xe8cfff}, "PE"},
	{Range{0xe90000, 0xe90fff}, "UY"},
	{Range{0xe94000, 0xe94fff}, "BO"},
}

// Some states are carved out of these blocks (e.g. the EUR & NAT block), so
// an address may be both reserved and allocated.
var reservedBlocks = [...]ReservedBlock{
	{Range{0x200000, 0x27ffff}, purposeFutureAFI},
	{Range{0x280000, 0x2fffff}, purposeFutureSAM},
	{Range{0x500000, 0x5fffff}, purposeFutureEUR},
	{Range{0x600000, 0x67ffff}, purposeFutureMID},
	{Range{0x680000, 0x6fffff}, purposeFutureASIA},
	{Range{0x899000, 0x8993ff}, purposeSafety},
	{Range{0x900000, 0x9fffff}, purposeFutureNAM},
	{Range{0xb00000, 0xbfffff}, purposeFuture},
	{Range{0xd00000, 0xdfffff}, purposeFuture},
	{Range{0xec0000, 0xefffff}, purposeFutureCAR},
	{Range{0xf00000, 0xf07fff}, purposeTemporary},
	{Range{0xf08000, 0xf08fff}, purposeFuture},
	{Range{0xf09000, 0xf093ff}, purposeSafety},
	{Range{0xf09400, 0xffffff}, purposeFuture},
}

// CountryBlocks returns a copy of the allocation table.
func CountryBlocks() []CountryBlock {
	out := make([]CountryBlock, len(countryBlocks))
	copy(out, countryBlocks[:])
	return out
}

// ReservedBlocks returns a copy of the reserved table.
func ReservedBlocks() []ReservedBlock {
	out := make([]ReservedBlock, len(reservedBlocks))
	copy(out, reservedBlocks[:])
	return out
}
