// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

// The tables below are curated from the IANA Language Subtag Registry
// (https://www.iana.org/assignments/language-subtag-registry). They are a
// representative subset, not a complete mirror; entries exist for the codes
// the canonicalization rules reference plus the languages, scripts and
// regions most commonly seen in document and HTTP traffic.

var languages = map[string]Language{
	"aa":  {Code: "aa", Name: "Afar"},
	"ab":  {Code: "ab", Name: "Abkhazian", SuppressScript: "Cyrl"},
	"af":  {Code: "af", Name: "Afrikaans", SuppressScript: "Latn"},
	"am":  {Code: "am", Name: "Amharic", SuppressScript: "Ethi"},
	"ami": {Code: "ami", Name: "Amis"},
	"ar":  {Code: "ar", Name: "Arabic", SuppressScript: "Arab"},
	"as":  {Code: "as", Name: "Assamese", SuppressScript: "Beng"},
	"ase": {Code: "ase", Name: "American Sign Language"},
	"az":  {Code: "az", Name: "Azerbaijani"},
	"be":  {Code: "be", Name: "Belarusian", SuppressScript: "Cyrl"},
	"bfi": {Code: "bfi", Name: "British Sign Language"},
	"bg":  {Code: "bg", Name: "Bulgarian", SuppressScript: "Cyrl"},
	"bn":  {Code: "bn", Name: "Bengali", SuppressScript: "Beng"},
	"bnn": {Code: "bnn", Name: "Bunun"},
	"bs":  {Code: "bs", Name: "Bosnian", SuppressScript: "Latn"},
	"ca":  {Code: "ca", Name: "Catalan", SuppressScript: "Latn"},
	"cmn": {Code: "cmn", Name: "Mandarin Chinese"},
	"cs":  {Code: "cs", Name: "Czech", SuppressScript: "Latn"},
	"cy":  {Code: "cy", Name: "Welsh", SuppressScript: "Latn"},
	"da":  {Code: "da", Name: "Danish", SuppressScript: "Latn"},
	"de":  {Code: "de", Name: "German", SuppressScript: "Latn"},
	"dv":  {Code: "dv", Name: "Divehi", SuppressScript: "Thaa"},
	"el":  {Code: "el", Name: "Modern Greek", SuppressScript: "Grek"},
	"en":  {Code: "en", Name: "English", SuppressScript: "Latn"},
	"eo":  {Code: "eo", Name: "Esperanto", SuppressScript: "Latn"},
	"es":  {Code: "es", Name: "Spanish", SuppressScript: "Latn"},
	"et":  {Code: "et", Name: "Estonian", SuppressScript: "Latn"},
	"eu":  {Code: "eu", Name: "Basque", SuppressScript: "Latn"},
	"fa":  {Code: "fa", Name: "Persian", SuppressScript: "Arab"},
	"fi":  {Code: "fi", Name: "Finnish", SuppressScript: "Latn"},
	"fil": {Code: "fil", Name: "Filipino", SuppressScript: "Latn"},
	"fj":  {Code: "fj", Name: "Fijian", SuppressScript: "Latn"},
	"fo":  {Code: "fo", Name: "Faroese", SuppressScript: "Latn"},
	"fr":  {Code: "fr", Name: "French", SuppressScript: "Latn"},
	"ga":  {Code: "ga", Name: "Irish", SuppressScript: "Latn"},
	"gan": {Code: "gan", Name: "Gan Chinese"},
	"gl":  {Code: "gl", Name: "Galician", SuppressScript: "Latn"},
	"gsw": {Code: "gsw", Name: "Swiss German", SuppressScript: "Latn"},
	"gu":  {Code: "gu", Name: "Gujarati", SuppressScript: "Gujr"},
	"hak": {Code: "hak", Name: "Hakka Chinese"},
	"he":  {Code: "he", Name: "Hebrew", SuppressScript: "Hebr"},
	"hi":  {Code: "hi", Name: "Hindi", SuppressScript: "Deva"},
	"hr":  {Code: "hr", Name: "Croatian", SuppressScript: "Latn"},
	"hsn": {Code: "hsn", Name: "Xiang Chinese"},
	"ht":  {Code: "ht", Name: "Haitian Creole", SuppressScript: "Latn"},
	"hu":  {Code: "hu", Name: "Hungarian", SuppressScript: "Latn"},
	"hy":  {Code: "hy", Name: "Armenian", SuppressScript: "Armn"},
	"id":  {Code: "id", Name: "Indonesian", SuppressScript: "Latn"},
	"in":  {Code: "in", Name: "Indonesian", Preferred: "id"},
	"is":  {Code: "is", Name: "Icelandic", SuppressScript: "Latn"},
	"it":  {Code: "it", Name: "Italian", SuppressScript: "Latn"},
	"iw":  {Code: "iw", Name: "Hebrew", Preferred: "he"},
	"ja":  {Code: "ja", Name: "Japanese", SuppressScript: "Jpan"},
	"jbo": {Code: "jbo", Name: "Lojban", SuppressScript: "Latn"},
	"ji":  {Code: "ji", Name: "Yiddish", Preferred: "yi"},
	"ka":  {Code: "ka", Name: "Georgian", SuppressScript: "Geor"},
	"kk":  {Code: "kk", Name: "Kazakh"},
	"km":  {Code: "km", Name: "Khmer", SuppressScript: "Khmr"},
	"kn":  {Code: "kn", Name: "Kannada", SuppressScript: "Knda"},
	"ko":  {Code: "ko", Name: "Korean", SuppressScript: "Kore"},
	"lb":  {Code: "lb", Name: "Luxembourgish", SuppressScript: "Latn"},
	"lo":  {Code: "lo", Name: "Lao", SuppressScript: "Laoo"},
	"lt":  {Code: "lt", Name: "Lithuanian", SuppressScript: "Latn"},
	"lv":  {Code: "lv", Name: "Latvian", SuppressScript: "Latn"},
	"mk":  {Code: "mk", Name: "Macedonian", SuppressScript: "Cyrl"},
	"ml":  {Code: "ml", Name: "Malayalam", SuppressScript: "Mlym"},
	"mn":  {Code: "mn", Name: "Mongolian"},
	"mo":  {Code: "mo", Name: "Moldavian", Preferred: "ro"},
	"mr":  {Code: "mr", Name: "Marathi", SuppressScript: "Deva"},
	"ms":  {Code: "ms", Name: "Malay"},
	"mt":  {Code: "mt", Name: "Maltese", SuppressScript: "Latn"},
	"my":  {Code: "my", Name: "Burmese", SuppressScript: "Mymr"},
	"nan": {Code: "nan", Name: "Min Nan Chinese"},
	"nb":  {Code: "nb", Name: "Norwegian Bokmål", SuppressScript: "Latn"},
	"ne":  {Code: "ne", Name: "Nepali", SuppressScript: "Deva"},
	"nl":  {Code: "nl", Name: "Dutch", SuppressScript: "Latn"},
	"nn":  {Code: "nn", Name: "Norwegian Nynorsk", SuppressScript: "Latn"},
	"no":  {Code: "no", Name: "Norwegian", SuppressScript: "Latn"},
	"nv":  {Code: "nv", Name: "Navajo"},
	"pa":  {Code: "pa", Name: "Punjabi"},
	"pl":  {Code: "pl", Name: "Polish", SuppressScript: "Latn"},
	"ps":  {Code: "ps", Name: "Pashto", SuppressScript: "Arab"},
	"pt":  {Code: "pt", Name: "Portuguese", SuppressScript: "Latn"},
	"pwn": {Code: "pwn", Name: "Paiwan"},
	"ro":  {Code: "ro", Name: "Romanian", SuppressScript: "Latn"},
	"ru":  {Code: "ru", Name: "Russian", SuppressScript: "Cyrl"},
	"sfb": {Code: "sfb", Name: "Langue des signes de Belgique Francophone"},
	"sgg": {Code: "sgg", Name: "Swiss-German Sign Language"},
	"sgn": {Code: "sgn", Name: "Sign languages"},
	"si":  {Code: "si", Name: "Sinhala", SuppressScript: "Sinh"},
	"sk":  {Code: "sk", Name: "Slovak", SuppressScript: "Latn"},
	"sl":  {Code: "sl", Name: "Slovenian", SuppressScript: "Latn"},
	"sq":  {Code: "sq", Name: "Albanian", SuppressScript: "Latn"},
	"sr":  {Code: "sr", Name: "Serbian"},
	"sv":  {Code: "sv", Name: "Swedish", SuppressScript: "Latn"},
	"sw":  {Code: "sw", Name: "Swahili", SuppressScript: "Latn"},
	"ta":  {Code: "ta", Name: "Tamil", SuppressScript: "Taml"},
	"tao": {Code: "tao", Name: "Yami"},
	"tay": {Code: "tay", Name: "Atayal"},
	"te":  {Code: "te", Name: "Telugu", SuppressScript: "Telu"},
	"th":  {Code: "th", Name: "Thai", SuppressScript: "Thai"},
	"tlh": {Code: "tlh", Name: "Klingon"},
	"tr":  {Code: "tr", Name: "Turkish", SuppressScript: "Latn"},
	"tsu": {Code: "tsu", Name: "Tsou"},
	"uk":  {Code: "uk", Name: "Ukrainian", SuppressScript: "Cyrl"},
	"mul": {Code: "mul", Name: "Multiple languages"},
	"und": {Code: "und", Name: "Undetermined"},
	"ur":  {Code: "ur", Name: "Urdu", SuppressScript: "Arab"},
	"uz":  {Code: "uz", Name: "Uzbek"},
	"vgt": {Code: "vgt", Name: "Vlaamse Gebarentaal"},
	"vi":  {Code: "vi", Name: "Vietnamese", SuppressScript: "Latn"},
	"wuu": {Code: "wuu", Name: "Wu Chinese"},
	"yi":  {Code: "yi", Name: "Yiddish", SuppressScript: "Hebr"},
	"yue": {Code: "yue", Name: "Cantonese"},
	"zh":  {Code: "zh", Name: "Chinese"},
	"zu":  {Code: "zu", Name: "Zulu", SuppressScript: "Latn"},
}

var extlangs = map[string]Extlang{
	"ase": {Code: "ase", Name: "American Sign Language", Preferred: "ase", Prefix: "sgn"},
	"bfi": {Code: "bfi", Name: "British Sign Language", Preferred: "bfi", Prefix: "sgn"},
	"cmn": {Code: "cmn", Name: "Mandarin Chinese", Preferred: "cmn", Prefix: "zh"},
	"gan": {Code: "gan", Name: "Gan Chinese", Preferred: "gan", Prefix: "zh"},
	"hak": {Code: "hak", Name: "Hakka Chinese", Preferred: "hak", Prefix: "zh"},
	"hsn": {Code: "hsn", Name: "Xiang Chinese", Preferred: "hsn", Prefix: "zh"},
	"nan": {Code: "nan", Name: "Min Nan Chinese", Preferred: "nan", Prefix: "zh"},
	"sfb": {Code: "sfb", Name: "Langue des signes de Belgique Francophone", Preferred: "sfb", Prefix: "sgn"},
	"sgg": {Code: "sgg", Name: "Swiss-German Sign Language", Preferred: "sgg", Prefix: "sgn"},
	"vgt": {Code: "vgt", Name: "Vlaamse Gebarentaal", Preferred: "vgt", Prefix: "sgn"},
	"wuu": {Code: "wuu", Name: "Wu Chinese", Preferred: "wuu", Prefix: "zh"},
	"yue": {Code: "yue", Name: "Cantonese", Preferred: "yue", Prefix: "zh"},
}

var scripts = map[string]Script{
	"arab": {Code: "Arab", Name: "Arabic"},
	"armn": {Code: "Armn", Name: "Armenian"},
	"beng": {Code: "Beng", Name: "Bengali"},
	"brai": {Code: "Brai", Name: "Braille"},
	"cyrl": {Code: "Cyrl", Name: "Cyrillic"},
	"deva": {Code: "Deva", Name: "Devanagari"},
	"ethi": {Code: "Ethi", Name: "Ethiopic"},
	"geor": {Code: "Geor", Name: "Georgian"},
	"grek": {Code: "Grek", Name: "Greek"},
	"gujr": {Code: "Gujr", Name: "Gujarati"},
	"guru": {Code: "Guru", Name: "Gurmukhi"},
	"hang": {Code: "Hang", Name: "Hangul"},
	"hani": {Code: "Hani", Name: "Han"},
	"hans": {Code: "Hans", Name: "Han (Simplified)"},
	"hant": {Code: "Hant", Name: "Han (Traditional)"},
	"hebr": {Code: "Hebr", Name: "Hebrew"},
	"hira": {Code: "Hira", Name: "Hiragana"},
	"jpan": {Code: "Jpan", Name: "Japanese"},
	"kana": {Code: "Kana", Name: "Katakana"},
	"khmr": {Code: "Khmr", Name: "Khmer"},
	"knda": {Code: "Knda", Name: "Kannada"},
	"kore": {Code: "Kore", Name: "Korean"},
	"laoo": {Code: "Laoo", Name: "Lao"},
	"latn": {Code: "Latn", Name: "Latin"},
	"mlym": {Code: "Mlym", Name: "Malayalam"},
	"mong": {Code: "Mong", Name: "Mongolian"},
	"mymr": {Code: "Mymr", Name: "Myanmar"},
	"qaai": {Code: "Qaai", Name: "Inherited", Preferred: "Zinh"},
	"sinh": {Code: "Sinh", Name: "Sinhala"},
	"taml": {Code: "Taml", Name: "Tamil"},
	"telu": {Code: "Telu", Name: "Telugu"},
	"thaa": {Code: "Thaa", Name: "Thaana"},
	"thai": {Code: "Thai", Name: "Thai"},
	"tibt": {Code: "Tibt", Name: "Tibetan"},
	"zinh": {Code: "Zinh", Name: "Inherited"},
	"zsym": {Code: "Zsym", Name: "Symbols"},
	"zyyy": {Code: "Zyyy", Name: "Undetermined script"},
	"zzzz": {Code: "Zzzz", Name: "Uncoded script"},
}

var regions = map[string]Region{
	"001": {Code: "001", Name: "World"},
	"002": {Code: "002", Name: "Africa"},
	"003": {Code: "003", Name: "North America"},
	"005": {Code: "005", Name: "South America"},
	"009": {Code: "009", Name: "Oceania"},
	"019": {Code: "019", Name: "Americas"},
	"142": {Code: "142", Name: "Asia"},
	"150": {Code: "150", Name: "Europe"},
	"155": {Code: "155", Name: "Western Europe"},
	"419": {Code: "419", Name: "Latin America and the Caribbean"},
	"ad":  {Code: "AD", Name: "Andorra"},
	"ae":  {Code: "AE", Name: "United Arab Emirates"},
	"af":  {Code: "AF", Name: "Afghanistan"},
	"ar":  {Code: "AR", Name: "Argentina"},
	"at":  {Code: "AT", Name: "Austria"},
	"au":  {Code: "AU", Name: "Australia"},
	"ba":  {Code: "BA", Name: "Bosnia and Herzegovina"},
	"bd":  {Code: "BD", Name: "Bangladesh"},
	"be":  {Code: "BE", Name: "Belgium"},
	"bg":  {Code: "BG", Name: "Bulgaria"},
	"br":  {Code: "BR", Name: "Brazil"},
	"bu":  {Code: "BU", Name: "Burma", Preferred: "MM"},
	"by":  {Code: "BY", Name: "Belarus"},
	"ca":  {Code: "CA", Name: "Canada"},
	"cd":  {Code: "CD", Name: "The Democratic Republic of the Congo"},
	"ch":  {Code: "CH", Name: "Switzerland"},
	"cl":  {Code: "CL", Name: "Chile"},
	"cn":  {Code: "CN", Name: "China"},
	"co":  {Code: "CO", Name: "Colombia"},
	"cz":  {Code: "CZ", Name: "Czechia"},
	"dd":  {Code: "DD", Name: "German Democratic Republic", Preferred: "DE"},
	"de":  {Code: "DE", Name: "Germany"},
	"dk":  {Code: "DK", Name: "Denmark"},
	"dz":  {Code: "DZ", Name: "Algeria"},
	"ee":  {Code: "EE", Name: "Estonia"},
	"eg":  {Code: "EG", Name: "Egypt"},
	"es":  {Code: "ES", Name: "Spain"},
	"et":  {Code: "ET", Name: "Ethiopia"},
	"fi":  {Code: "FI", Name: "Finland"},
	"fo":  {Code: "FO", Name: "Faroe Islands"},
	"fr":  {Code: "FR", Name: "France"},
	"fx":  {Code: "FX", Name: "Metropolitan France", Preferred: "FR"},
	"gb":  {Code: "GB", Name: "United Kingdom"},
	"ge":  {Code: "GE", Name: "Georgia"},
	"gr":  {Code: "GR", Name: "Greece"},
	"hk":  {Code: "HK", Name: "Hong Kong"},
	"hr":  {Code: "HR", Name: "Croatia"},
	"ht":  {Code: "HT", Name: "Haiti"},
	"hu":  {Code: "HU", Name: "Hungary"},
	"id":  {Code: "ID", Name: "Indonesia"},
	"ie":  {Code: "IE", Name: "Ireland"},
	"il":  {Code: "IL", Name: "Israel"},
	"in":  {Code: "IN", Name: "India"},
	"iq":  {Code: "IQ", Name: "Iraq"},
	"ir":  {Code: "IR", Name: "Islamic Republic of Iran"},
	"is":  {Code: "IS", Name: "Iceland"},
	"it":  {Code: "IT", Name: "Italy"},
	"jo":  {Code: "JO", Name: "Jordan"},
	"jp":  {Code: "JP", Name: "Japan"},
	"ke":  {Code: "KE", Name: "Kenya"},
	"kh":  {Code: "KH", Name: "Cambodia"},
	"kp":  {Code: "KP", Name: "Democratic People's Republic of Korea"},
	"kr":  {Code: "KR", Name: "Republic of Korea"},
	"kz":  {Code: "KZ", Name: "Kazakhstan"},
	"la":  {Code: "LA", Name: "Lao People's Democratic Republic"},
	"lb":  {Code: "LB", Name: "Lebanon"},
	"lk":  {Code: "LK", Name: "Sri Lanka"},
	"lt":  {Code: "LT", Name: "Lithuania"},
	"lu":  {Code: "LU", Name: "Luxembourg"},
	"lv":  {Code: "LV", Name: "Latvia"},
	"ma":  {Code: "MA", Name: "Morocco"},
	"md":  {Code: "MD", Name: "Moldova"},
	"me":  {Code: "ME", Name: "Montenegro"},
	"mk":  {Code: "MK", Name: "North Macedonia"},
	"mm":  {Code: "MM", Name: "Myanmar"},
	"mn":  {Code: "MN", Name: "Mongolia"},
	"mo":  {Code: "MO", Name: "Macao"},
	"mt":  {Code: "MT", Name: "Malta"},
	"mx":  {Code: "MX", Name: "Mexico"},
	"my":  {Code: "MY", Name: "Malaysia"},
	"ng":  {Code: "NG", Name: "Nigeria"},
	"nl":  {Code: "NL", Name: "Netherlands"},
	"no":  {Code: "NO", Name: "Norway"},
	"np":  {Code: "NP", Name: "Nepal"},
	"nz":  {Code: "NZ", Name: "New Zealand"},
	"pe":  {Code: "PE", Name: "Peru"},
	"ph":  {Code: "PH", Name: "Philippines"},
	"pk":  {Code: "PK", Name: "Pakistan"},
	"pl":  {Code: "PL", Name: "Poland"},
	"pt":  {Code: "PT", Name: "Portugal"},
	"ro":  {Code: "RO", Name: "Romania"},
	"rs":  {Code: "RS", Name: "Serbia"},
	"ru":  {Code: "RU", Name: "Russian Federation"},
	"sa":  {Code: "SA", Name: "Saudi Arabia"},
	"se":  {Code: "SE", Name: "Sweden"},
	"sg":  {Code: "SG", Name: "Singapore"},
	"si":  {Code: "SI", Name: "Slovenia"},
	"sk":  {Code: "SK", Name: "Slovakia"},
	"th":  {Code: "TH", Name: "Thailand"},
	"tl":  {Code: "TL", Name: "Timor-Leste"},
	"tn":  {Code: "TN", Name: "Tunisia"},
	"tp":  {Code: "TP", Name: "East Timor", Preferred: "TL"},
	"tr":  {Code: "TR", Name: "Türkiye"},
	"tw":  {Code: "TW", Name: "Taiwan"},
	"ua":  {Code: "UA", Name: "Ukraine"},
	"us":  {Code: "US", Name: "United States"},
	"uz":  {Code: "UZ", Name: "Uzbekistan"},
	"ve":  {Code: "VE", Name: "Venezuela"},
	"vn":  {Code: "VN", Name: "Viet Nam"},
	"yd":  {Code: "YD", Name: "Democratic Yemen", Preferred: "YE"},
	"ye":  {Code: "YE", Name: "Yemen"},
	"za":  {Code: "ZA", Name: "South Africa"},
	"zr":  {Code: "ZR", Name: "Zaire", Preferred: "CD"},
}

// grandfathered holds the closed RFC 5646 list of whole-tag forms that
// predate the subtag grammar. Keys are the lowercase form of the whole tag.
var grandfathered = map[string]Grandfathered{
	"art-lojban":  {Tag: "art-lojban", Name: "Lojban", Preferred: "jbo"},
	"cel-gaulish": {Tag: "cel-gaulish", Name: "Gaulish"},
	"en-gb-oed":   {Tag: "en-GB-oed", Name: "English, Oxford English Dictionary spelling", Preferred: "en-GB-oxendict"},
	"i-ami":       {Tag: "i-ami", Name: "Amis", Preferred: "ami"},
	"i-bnn":       {Tag: "i-bnn", Name: "Bunun", Preferred: "bnn"},
	"i-default":   {Tag: "i-default", Name: "Default Language"},
	"i-enochian":  {Tag: "i-enochian", Name: "Enochian"},
	"i-hak":       {Tag: "i-hak", Name: "Hakka", Preferred: "hak"},
	"i-klingon":   {Tag: "i-klingon", Name: "Klingon", Preferred: "tlh"},
	"i-lux":       {Tag: "i-lux", Name: "Luxembourgish", Preferred: "lb"},
	"i-mingo":     {Tag: "i-mingo", Name: "Mingo"},
	"i-navajo":    {Tag: "i-navajo", Name: "Navajo", Preferred: "nv"},
	"i-pwn":       {Tag: "i-pwn", Name: "Paiwan", Preferred: "pwn"},
	"i-tao":       {Tag: "i-tao", Name: "Tao", Preferred: "tao"},
	"i-tay":       {Tag: "i-tay", Name: "Tayal", Preferred: "tay"},
	"i-tsu":       {Tag: "i-tsu", Name: "Tsou", Preferred: "tsu"},
	"no-bok":      {Tag: "no-bok", Name: "Norwegian Bokmål", Preferred: "nb"},
	"no-nyn":      {Tag: "no-nyn", Name: "Norwegian Nynorsk", Preferred: "nn"},
	"sgn-be-fr":   {Tag: "sgn-BE-FR", Name: "Belgian-French Sign Language", Preferred: "sfb"},
	"sgn-be-nl":   {Tag: "sgn-BE-NL", Name: "Belgian-Flemish Sign Language", Preferred: "vgt"},
	"sgn-ch-de":   {Tag: "sgn-CH-DE", Name: "Swiss German Sign Language", Preferred: "sgg"},
	"zh-guoyu":    {Tag: "zh-guoyu", Name: "Mandarin or Standard Chinese", Preferred: "cmn"},
	"zh-hakka":    {Tag: "zh-hakka", Name: "Hakka", Preferred: "hak"},
	"zh-min":      {Tag: "zh-min", Name: "Min, Fuzhou, Hokkien, Amoy, or Taiwanese"},
	"zh-min-nan":  {Tag: "zh-min-nan", Name: "Minnan, Hokkien, Amoy, Taiwanese", Preferred: "nan"},
	"zh-xiang":    {Tag: "zh-xiang", Name: "Xiang or Hunanese", Preferred: "hsn"},
}

// languageSuggestions maps strings commonly but wrongly used as a primary
// language subtag (mostly country codes) to the language most likely meant.
var languageSuggestions = map[string]string{
	"by": "be",
	"ch": "zh",
	"cn": "zh",
	"cz": "cs",
	"dk": "da",
	"gr": "el",
	"il": "he",
	"ir": "fa",
	"jp": "ja",
	"kr": "ko",
	"ua": "uk",
	"vn": "vi",
}

// regionSuggestions maps unregistered but commonly supplied region codes to
// their current registered replacements.
var regionSuggestions = map[string]string{
	"uk": "GB",
	"su": "RU",
	"yu": "RS",
}
