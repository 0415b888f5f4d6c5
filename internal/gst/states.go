package gst

import (
	"sort"
	"strings"
)

// stateCodeByName maps state/UT names to the 2-digit codes used by the GST
// portal. Keys are uppercase for case-insensitive lookup.
var stateCodeByName = map[string]string{
	"JAMMU AND KASHMIR":                        "01",
	"HIMACHAL PRADESH":                         "02",
	"PUNJAB":                                   "03",
	"CHANDIGARH":                               "04",
	"UTTARAKHAND":                              "05",
	"HARYANA":                                  "06",
	"DELHI":                                    "07",
	"RAJASTHAN":                                "08",
	"UTTAR PRADESH":                            "09",
	"BIHAR":                                    "10",
	"SIKKIM":                                   "11",
	"ARUNACHAL PRADESH":                        "12",
	"NAGALAND":                                 "13",
	"MANIPUR":                                  "14",
	"MIZORAM":                                  "15",
	"TRIPURA":                                  "16",
	"MEGHALAYA":                                "17",
	"ASSAM":                                    "18",
	"WEST BENGAL":                              "19",
	"JHARKHAND":                                "20",
	"ODISHA":                                   "21",
	"CHHATTISGARH":                             "22",
	"MADHYA PRADESH":                           "23",
	"GUJARAT":                                  "24",
	"DADRA AND NAGAR HAVELI AND DAMAN AND DIU": "26",
	"MAHARASHTRA":                              "27",
	"ANDHRA PRADESH":                           "37",
	"KARNATAKA":                                "29",
	"GOA":                                      "30",
	"LAKSHADWEEP":                              "31",
	"KERALA":                                   "32",
	"TAMIL NADU":                               "33",
	"PUDUCHERRY":                               "34",
	"ANDAMAN AND NICOBAR ISLANDS":              "35",
	"TELANGANA":                                "36",
	"LADAKH":                                   "38",
	"OTHER TERRITORY":                          "97",
	"FOREIGN COUNTRY":                          "96",
	"CENTRE JURISDICTION":                      "99",
}

// stateNameByCode is the reverse lookup, used to resolve the state encoded
// in a GSTIN prefix.
var stateNameByCode = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"25": "Daman and Diu",
	"26": "Dadra and Nagar Haveli",
	"27": "Maharashtra",
	"28": "Andhra Pradesh (before split)",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}

// stateNamesByLength orders the lookup keys longest-first so the substring
// fallback resolves the same way every time when an input mentions more than
// one state.
var stateNamesByLength = func() []string {
	names := make([]string, 0, len(stateCodeByName))
	for name := range stateCodeByName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// StateCode resolves a state name to its 2-digit GST code. Falls back to a
// substring match for partial names ("Delhi NCR", "State of Goa"), preferring
// the longest matching name. The second return is false when nothing matches;
// callers apply their own default.
func StateCode(stateName string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(stateName))
	if normalized == "" {
		return "", false
	}
	if code, ok := stateCodeByName[normalized]; ok {
		return code, true
	}
	for _, name := range stateNamesByLength {
		if strings.Contains(normalized, name) || strings.Contains(name, normalized) {
			return stateCodeByName[name], true
		}
	}
	return "", false
}

// StateName resolves a 2-digit GST code back to a state name.
func StateName(code string) (string, bool) {
	name, ok := stateNameByCode[code]
	return name, ok
}
