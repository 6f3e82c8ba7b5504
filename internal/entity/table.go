package entity

// names maps an entity name, with its trailing semicolon when the entity
// requires one, to the code points it decodes to. A handful of legacy
// names are valid without a trailing semicolon; those are listed twice,
// once bare and once with ";", since the longest-match walk in decode.go
// needs both forms present to choose correctly between them.
//
// This is a representative subset of the HTML named character reference
// table: the legacy semicolon-less entities (for which omission is
// actually conforming) plus enough of the common Latin-1, Greek, and
// general-punctuation entities to exercise every branch of the decoder.
// It is not the complete WHATWG table.
var names = map[string][]rune{
	"amp;": {'&'}, "amp": {'&'},
	"lt;": {'<'}, "lt": {'<'},
	"gt;": {'>'}, "gt": {'>'},
	"quot;": {'"'}, "quot": {'"'},
	"apos;": {'\''},
	"AMP;":  {'&'}, "AMP": {'&'},
	"LT;": {'<'}, "LT": {'<'},
	"GT;": {'>'}, "GT": {'>'},
	"nbsp;": {0x00A0}, "nbsp": {0x00A0},
	"copy;": {0x00A9}, "copy": {0x00A9},
	"reg;": {0x00AE}, "reg": {0x00AE},
	"deg;": {0x00B0}, "deg": {0x00B0},
	"plusmn;": {0x00B1}, "plusmn": {0x00B1},
	"sup2;": {0x00B2}, "sup2": {0x00B2},
	"sup3;": {0x00B3}, "sup3": {0x00B3},
	"micro;": {0x00B5}, "micro": {0x00B5},
	"para;":  {0x00B6}, "para": {0x00B6},
	"middot;": {0x00B7}, "middot": {0x00B7},
	"sup1;": {0x00B9}, "sup1": {0x00B9},
	"frac12;": {0x00BD}, "frac12": {0x00BD},
	"frac14;": {0x00BC}, "frac14": {0x00BC},
	"frac34;": {0x00BE}, "frac34": {0x00BE},
	"times;": {0x00D7}, "times": {0x00D7},
	"divide;": {0x00F7}, "divide": {0x00F7},
	"szlig;":  {0x00DF}, "szlig": {0x00DF},
	"Aacute;": {0x00C1}, "Aacute": {0x00C1},
	"aacute;": {0x00E1}, "aacute": {0x00E1},
	"Eacute;": {0x00C9}, "Eacute": {0x00C9},
	"eacute;": {0x00E9}, "eacute": {0x00E9},
	"ntilde;": {0x00F1}, "ntilde": {0x00F1},
	"Ntilde;": {0x00D1}, "Ntilde": {0x00D1},
	"uuml;": {0x00FC}, "uuml": {0x00FC},
	"Uuml;": {0x00DC}, "Uuml": {0x00DC},
	"ouml;": {0x00F6}, "ouml": {0x00F6},
	"Ouml;": {0x00D6}, "Ouml": {0x00D6},
	"euro;": {0x20AC},
	"trade;": {0x2122},
	"mdash;": {0x2014},
	"ndash;": {0x2013},
	"hellip;": {0x2026},
	"lsquo;":  {0x2018},
	"rsquo;":  {0x2019},
	"ldquo;":  {0x201C},
	"rdquo;":  {0x201D},
	"bull;":   {0x2022},
	"dagger;": {0x2020},
	"Dagger;": {0x2021},
	"permil;": {0x2030},
	"larr;":   {0x2190},
	"uarr;":   {0x2191},
	"rarr;":   {0x2192},
	"darr;":   {0x2193},
	"harr;":   {0x2194},
	"alpha;":  {0x03B1},
	"beta;":   {0x03B2},
	"gamma;":  {0x03B3},
	"delta;":  {0x03B4},
	"pi;":     {0x03C0},
	"Alpha;":  {0x0391},
	"Beta;":   {0x0392},
	"Gamma;":  {0x0393},
	"Delta;":  {0x0394},
	"Pi;":     {0x03A0},
	"sigma;":  {0x03C3},
	"omega;":  {0x03C9},
	"Omega;":  {0x03A9},
	"infin;":  {0x221E},
	"ne;":     {0x2260},
	"le;":     {0x2264},
	"ge;":     {0x2265},
	"sum;":    {0x2211},
	"prod;":   {0x220F},
	"radic;":  {0x221A},
	"int;":    {0x222B},
	"there4;": {0x2234},
	"sdot;":   {0x22C5},
	"loz;":    {0x25CA},
	"spades;": {0x2660},
	"clubs;":  {0x2663},
	"hearts;": {0x2665},
	"diams;":  {0x2666},
	"NotEqual;": {0x2260},
	"notin;":    {0x2209},
	"CounterClockwiseContourIntegral;": {0x2233},
	// CounterClockwiseContourIntegral demonstrates the decoder choosing the
	// longest matching name even though several of its prefixes ("Counter",
	// "CounterClockwise", ...) are not themselves entity names.
}

// c1Remap maps the Windows-1252 code points HTML numeric references wrongly
// reference via the C1 control range (0x80-0x9F) to the Unicode code point
// browsers actually render, per the long-standing web-compatibility table.
var c1Remap = map[rune]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}
